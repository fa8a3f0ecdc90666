package risk

import (
	"underwriting-risk/internal/domain"
)

// Signals emitted by CompositeScore.
const (
	SignalNSFIncidents           = "nsf_incidents"
	SignalLowAverageBalance      = "low_average_balance"
	SignalHighWithdrawalRatio    = "high_withdrawal_ratio"
	SignalNegativeAverageBalance = "negative_average_balance"
)

// ScoreRisk builds the risk profile of one account from its transactions and
// the balance it opened the period with.
func (a *Analyzer) ScoreRisk(transactions []domain.Transaction, openingBalance float64) (domain.RiskProfile, error) {
	projection, err := a.ProjectAverageBalance(transactions, openingBalance)
	if err != nil {
		return domain.RiskProfile{}, err
	}

	nsfCount := a.DetectNSF(transactions)
	totals := a.Totalize(transactions)
	ratio := WithdrawalRatio(totals)

	score, signals := a.CompositeScore(nsfCount, projection.AverageDailyBalance, ratio)

	return domain.RiskProfile{
		NSFCount:            nsfCount,
		TotalDeposits:       totals.TotalDeposits,
		TotalWithdrawals:    totals.TotalWithdrawals,
		AverageDailyBalance: projection.AverageDailyBalance,
		PeriodDays:          projection.PeriodDays,
		NegativeDays:        projection.NegativeDays,
		MinimumBalance:      projection.MinimumBalance,
		WithdrawalRatio:     ratio,
		RiskScore:           score,
		RiskLevel:           a.cfg.Bands.Level(score),
		Signals:             signals,
	}, nil
}

// WithdrawalRatio is withdrawals over deposits; an account with no deposits
// is treated as burning everything (1.0).
func WithdrawalRatio(t domain.Totals) float64 {
	if t.TotalDeposits == 0 {
		return 1
	}
	return t.TotalWithdrawals / t.TotalDeposits
}

// CompositeScore adds the configured points for each rule that fires and
// caps the sum at MaxScore.
func (a *Analyzer) CompositeScore(nsfCount int, averageDailyBalance, withdrawalRatio float64) (int, []string) {
	s := a.cfg.Scoring
	score := 0
	signals := make([]string, 0, 4)

	if nsfCount > 0 {
		score += nsfCount * s.NSFIncidentPoints
		signals = append(signals, SignalNSFIncidents)
	}

	if averageDailyBalance < s.LowBalanceThreshold {
		score += s.LowBalancePoints
		signals = append(signals, SignalLowAverageBalance)
	}

	if withdrawalRatio > s.HighWithdrawalRatio {
		score += s.HighWithdrawalPoints
		signals = append(signals, SignalHighWithdrawalRatio)
	}

	if averageDailyBalance < 0 {
		score += s.NegativeBalancePoints
		signals = append(signals, SignalNegativeAverageBalance)
	}

	if score > s.MaxScore {
		score = s.MaxScore
	}

	return score, signals
}
