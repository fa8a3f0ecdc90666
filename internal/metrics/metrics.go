// Package metrics exposes underwriting outcomes as Prometheus series.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"underwriting-risk/internal/domain"
)

const namespace = "underwriting"

// Collector records scored accounts and raised alerts on its own registry.
// It satisfies usecase.Recorder.
type Collector struct {
	registry *prometheus.Registry

	riskScore    *prometheus.GaugeVec
	veritasScore *prometheus.GaugeVec
	nsfCount     *prometheus.GaugeVec
	accounts     *prometheus.CounterVec
	alerts       *prometheus.CounterVec
}

// NewCollector creates a Collector with every series registered.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		riskScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "account_risk_score",
				Help:      "Composite risk score of an account (0-100)",
			},
			[]string{"account_id"},
		),
		veritasScore: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "account_veritas_score",
				Help:      "Veritas creditworthiness score of an account (0-100)",
			},
			[]string{"account_id", "grade"},
		),
		nsfCount: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "account_nsf_count",
				Help:      "NSF incidents detected on an account",
			},
			[]string{"account_id"},
		),
		accounts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "accounts_scored_total",
				Help:      "Accounts scored, by risk level",
			},
			[]string{"risk_level"},
		),
		alerts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "alerts_total",
				Help:      "Alerts raised, by code and severity",
			},
			[]string{"code", "severity"},
		),
	}

	c.registry.MustRegister(c.riskScore, c.veritasScore, c.nsfCount, c.accounts, c.alerts)
	return c
}

// RecordAccount stores the scores of one analysed account.
func (c *Collector) RecordAccount(analysis domain.AccountAnalysis) {
	profile := analysis.RiskProfile
	c.riskScore.WithLabelValues(analysis.AccountID).Set(float64(profile.RiskScore))
	c.nsfCount.WithLabelValues(analysis.AccountID).Set(float64(profile.NSFCount))
	c.veritasScore.WithLabelValues(analysis.AccountID, string(analysis.Veritas.Grade)).Set(float64(analysis.Veritas.Score))
	c.accounts.WithLabelValues(string(profile.RiskLevel)).Inc()
}

// RecordAlerts counts every alert of a run.
func (c *Collector) RecordAlerts(alerts []domain.Alert) {
	for _, a := range alerts {
		c.alerts.WithLabelValues(string(a.Code), string(a.Severity)).Inc()
	}
}

// WriteTextfile dumps the current series in the text exposition format, for
// pickup by a node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
