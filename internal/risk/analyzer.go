// Package risk turns a bank statement into a quantitative risk profile and a
// Veritas creditworthiness score. Everything here is a pure computation over
// the caller's transactions: an Analyzer holds only its tuning table and
// collaborators, so one instance can serve concurrent requests.
package risk

import (
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"underwriting-risk/internal/domain"
	"underwriting-risk/internal/validation"
)

// Analyzer scores bank statements.
type Analyzer struct {
	cfg       Config
	keywords  []string
	stability StabilityEstimator
	validator *validation.Validator
	logger    *zap.Logger
}

// NewAnalyzer creates an Analyzer bound to cfg. A nil estimator makes the
// Veritas engine fall back to cfg.Veritas.NeutralStability whenever the
// caller does not pass a stability ratio; a nil logger discards logs.
func NewAnalyzer(cfg Config, stability StabilityEstimator, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}

	keywords := make([]string, 0, len(cfg.NSFKeywords))
	for _, k := range cfg.NSFKeywords {
		if k = strings.ToLower(strings.TrimSpace(k)); k != "" {
			keywords = append(keywords, k)
		}
	}

	return &Analyzer{
		cfg:       cfg,
		keywords:  keywords,
		stability: stability,
		validator: validation.New(),
		logger:    logger,
	}
}

// DetectNSF counts transactions whose description contains an NSF keyword.
// Each transaction counts at most once.
func (a *Analyzer) DetectNSF(transactions []domain.Transaction) int {
	count := 0
	for _, tx := range transactions {
		if a.MatchNSFKeyword(tx.Description) != "" {
			count++
		}
	}
	return count
}

// MatchNSFKeyword returns the first configured keyword found in description,
// or "" when none matches.
func (a *Analyzer) MatchNSFKeyword(description string) string {
	if description == "" {
		return ""
	}
	lower := strings.ToLower(description)
	for _, k := range a.keywords {
		if strings.Contains(lower, k) {
			return k
		}
	}
	return ""
}

// Totalize partitions transactions into deposits (amount > 0) and
// withdrawals (amount <= 0, summed as absolute values). Rows with a
// non-finite amount are skipped.
func (a *Analyzer) Totalize(transactions []domain.Transaction) domain.Totals {
	deposits := decimal.Zero
	withdrawals := decimal.Zero

	for i, tx := range transactions {
		if !tx.HasValidAmount() {
			a.logger.Warn("skipping transaction with non-finite amount",
				zap.Int("index", i),
				zap.String("description", tx.Description))
			continue
		}

		amount := decimal.NewFromFloat(tx.Amount)
		if amount.IsPositive() {
			deposits = deposits.Add(amount)
		} else {
			withdrawals = withdrawals.Add(amount.Abs())
		}
	}

	return domain.Totals{
		TotalDeposits:    roundCents(deposits),
		TotalWithdrawals: roundCents(withdrawals),
	}
}

// roundCents rounds half away from zero to 2 places.
func roundCents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
