package risk

import (
	"errors"
	"math"
	"time"

	"underwriting-risk/internal/domain"
)

// ErrInsufficientHistory is returned by an estimator that cannot derive a
// ratio from the transactions it was given.
var ErrInsufficientHistory = errors.New("insufficient history for stability estimate")

// StabilityEstimator derives an income-stability ratio in [0,1] from a
// statement. Implementations live outside the scoring core; the analyzer
// treats the result as an opaque input.
//
//go:generate mockgen -destination=mocks/mock_stability.go -source=stability.go StabilityEstimator
type StabilityEstimator interface {
	EstimateStability(transactions []domain.Transaction) (float64, error)
}

// MonthlyDepositStability scores how evenly deposits arrive month to month:
// 1 minus the coefficient of variation of monthly deposit totals, clamped
// to [0,1]. Months inside the statement span with no deposits count as zero.
type MonthlyDepositStability struct {
	// MinMonths is the minimum number of calendar months the statement must span.
	MinMonths int
}

// NewMonthlyDepositStability returns an estimator requiring two months of history.
func NewMonthlyDepositStability() *MonthlyDepositStability {
	return &MonthlyDepositStability{MinMonths: 2}
}

// EstimateStability implements StabilityEstimator.
func (m *MonthlyDepositStability) EstimateStability(transactions []domain.Transaction) (float64, error) {
	var first, last time.Time
	totals := make(map[time.Time]float64)
	for _, tx := range transactions {
		if tx.Date.IsZero() || !tx.HasValidAmount() {
			continue
		}
		month := monthOf(tx.Date)
		if first.IsZero() || month.Before(first) {
			first = month
		}
		if last.IsZero() || month.After(last) {
			last = month
		}
		if tx.Amount > 0 {
			totals[month] += tx.Amount
		}
	}
	if first.IsZero() {
		return 0, ErrInsufficientHistory
	}

	var series []float64
	for month := first; !month.After(last); month = month.AddDate(0, 1, 0) {
		series = append(series, totals[month])
	}
	if len(series) < m.MinMonths {
		return 0, ErrInsufficientHistory
	}

	mean := 0.0
	for _, v := range series {
		mean += v
	}
	mean /= float64(len(series))
	if mean == 0 {
		return 0, nil
	}

	variance := 0.0
	for _, v := range series {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(series))

	cv := math.Sqrt(variance) / mean
	return clamp(1-cv, 0, 1), nil
}

func monthOf(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
