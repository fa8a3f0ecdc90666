package risk

import (
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"underwriting-risk/internal/domain"
)

// ProjectAverageBalance walks every calendar day between the first and last
// transaction, applying each day's net movement to the running balance and
// averaging the end-of-day balances. Days without transactions still count,
// so a balance is weighted by how long it was held.
//
// The input slice is not reordered. Rows with a zero date or non-finite
// amount are skipped and counted in SkippedRecords.
func (a *Analyzer) ProjectAverageBalance(transactions []domain.Transaction, openingBalance float64) (domain.BalanceProjection, error) {
	if err := a.validator.Var(openingBalance, "finite", "openingBalance"); err != nil {
		return domain.BalanceProjection{}, err
	}

	empty := domain.BalanceProjection{
		AverageDailyBalance: openingBalance,
		MinimumBalance:      openingBalance,
	}
	if len(transactions) == 0 {
		return empty, nil
	}

	// Bucket net movement per calendar day; amounts within a day commute.
	buckets := make(map[time.Time]decimal.Decimal)
	var start, end time.Time
	skipped := 0
	for i, tx := range transactions {
		if tx.Date.IsZero() || !tx.HasValidAmount() {
			skipped++
			a.logger.Warn("skipping malformed transaction in balance projection",
				zap.Int("index", i),
				zap.Time("date", tx.Date),
				zap.String("description", tx.Description))
			continue
		}

		day := calendarDay(tx.Date)
		buckets[day] = buckets[day].Add(decimal.NewFromFloat(tx.Amount))
		if start.IsZero() || day.Before(start) {
			start = day
		}
		if end.IsZero() || day.After(end) {
			end = day
		}
	}

	if len(buckets) == 0 {
		empty.SkippedRecords = skipped
		return empty, nil
	}

	balance := decimal.NewFromFloat(openingBalance)
	minimum := balance
	total := decimal.Zero
	days, negativeDays := 0, 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		balance = balance.Add(buckets[day])
		total = total.Add(balance)
		days++

		if balance.IsNegative() {
			negativeDays++
		}
		if days == 1 || balance.LessThan(minimum) {
			minimum = balance
		}
	}

	return domain.BalanceProjection{
		AverageDailyBalance: roundCents(total.Div(decimal.NewFromInt(int64(days)))),
		PeriodDays:          days,
		NegativeDays:        negativeDays,
		MinimumBalance:      roundCents(minimum),
		StartDate:           &start,
		EndDate:             &end,
		SkippedRecords:      skipped,
	}, nil
}

// calendarDay drops the time of day and zone, keeping the date as printed.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
