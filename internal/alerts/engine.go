// Package alerts cross-checks what an applicant declared against the
// financials computed from their bank statements and the business-registry
// record, and reports every discrepancy as a severity-tagged alert.
package alerts

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"underwriting-risk/internal/domain"
)

// Engine evaluates the alert rules. It keeps no state between calls.
type Engine struct {
	th     Thresholds
	active map[string]struct{}
	now    func() time.Time
	logger *zap.Logger
	rules  []rule
}

// rule inspects one report and returns an alert, or nil when it does not fire.
type rule func(ec EvaluationContext) *domain.Alert

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the clock that registry age is measured against.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// NewEngine creates an Engine bound to th. A nil logger discards logs.
func NewEngine(th Thresholds, logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	active := make(map[string]struct{}, len(th.ActiveStatuses))
	for _, s := range th.ActiveStatuses {
		active[normalizeStatus(s)] = struct{}{}
	}

	e := &Engine{
		th:     th,
		active: active,
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(e)
	}

	// Evaluation order is part of the output contract.
	e.rules = []rule{
		e.revenueMismatch,
		e.highNSFCount,
		e.negativeBalanceDays,
		e.nsfCountUnderreported,
		e.averageBalanceMismatch,
		e.requestedAmountExceedsCapacity,
		e.timeInBusinessDiscrepancy,
		e.sosStatusInactive,
		e.businessNameMismatch,
	}
	return e
}

// GenerateAlerts runs every single-report rule over each report in order,
// then the cross-report rules when more than one report is given. sos is the
// application-level registry result; a report's own SOSData takes precedence.
//
// The result follows rule evaluation order, not severity; use
// domain.SortBySeverity when a ranked list is needed. No reports yields an
// empty slice.
func (e *Engine) GenerateAlerts(app domain.ApplicationData, reports []domain.FinsightReport, sos *domain.SOSVerificationResult) []domain.Alert {
	alerts := make([]domain.Alert, 0)
	if len(reports) == 0 {
		e.logger.Debug("no finsight reports supplied, skipping alert generation")
		return alerts
	}

	asOf := e.now()
	for i, report := range reports {
		ec := EvaluationContext{
			ReportIndex: i,
			AccountID:   report.AccountID,
			Report:      report,
			Application: app,
			SOS:         resolveSOS(report.SOSData, sos),
			AsOf:        asOf,
		}

		for _, r := range e.rules {
			if a := r(ec); a != nil {
				alerts = append(alerts, *a)
			}
		}
	}

	alerts = append(alerts, e.AnalyzeCrossReport(reports)...)

	e.logger.Debug("alerts generated",
		zap.Int("reports", len(reports)),
		zap.Int("alerts", len(alerts)),
		zap.String("highest_severity", string(domain.HighestSeverity(alerts))))

	return alerts
}

// resolveSOS picks the registry result a report is checked against, or nil
// when neither source produced anything usable.
func resolveSOS(own, shared *domain.SOSVerificationResult) *domain.SOSVerificationResult {
	if own.Known() {
		return own
	}
	if shared.Known() {
		return shared
	}
	return nil
}

func normalizeStatus(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
