package alerts

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"underwriting-risk/internal/domain"
)

// AnalyzeCrossReport compares the accounts of one application with each
// other. It returns nothing for fewer than two reports. The alerts describe
// the whole set, so they carry no AccountIndex.
func (e *Engine) AnalyzeCrossReport(reports []domain.FinsightReport) []domain.Alert {
	if len(reports) < 2 {
		return nil
	}

	ids := accountIDs(reports)
	var alerts []domain.Alert
	for _, check := range []func([]domain.FinsightReport, []string) *domain.Alert{
		e.inconsistentNSFPattern,
		e.balanceVariance,
		e.riskConcentration,
	} {
		if a := check(reports, ids); a != nil {
			alerts = append(alerts, *a)
		}
	}
	return alerts
}

func (e *Engine) inconsistentNSFPattern(reports []domain.FinsightReport, ids []string) *domain.Alert {
	counts := make([]int, len(reports))
	minCount, maxCount := math.MaxInt, 0
	for i, r := range reports {
		n := r.RiskAnalysis.NSFCount
		counts[i] = n
		minCount = min(minCount, n)
		maxCount = max(maxCount, n)
	}

	if minCount > 0 || maxCount < e.th.CrossNSFSpread {
		return nil
	}
	return &domain.Alert{
		Code:     domain.AlertInconsistentNSFPattern,
		Severity: domain.SeverityMedium,
		Message:  fmt.Sprintf("NSF activity is uneven across accounts: between %d and %d incidents", minCount, maxCount),
		Data: map[string]any{
			"accountIds": ids,
			"nsfCounts":  counts,
		},
	}
}

func (e *Engine) balanceVariance(reports []domain.FinsightReport, ids []string) *domain.Alert {
	balances := make([]float64, 0, len(reports))
	lowest, highest := math.Inf(1), math.Inf(-1)
	for _, r := range reports {
		b := r.Analysis.FinancialSummary.AverageDailyBalance
		if !isFinite(b) {
			continue
		}
		balances = append(balances, b)
		lowest = math.Min(lowest, b)
		highest = math.Max(highest, b)
	}
	if len(balances) < 2 || highest <= 0 {
		return nil
	}

	multiple := decimal.NewFromFloat(highest).
		Div(decimal.NewFromFloat(math.Max(lowest, e.th.BalanceFloor))).
		Round(2).
		InexactFloat64()
	if multiple <= e.th.BalanceVarianceMultiple {
		return nil
	}
	return &domain.Alert{
		Code:     domain.AlertBalanceVariance,
		Severity: domain.SeverityMedium,
		Message:  fmt.Sprintf("Average balances differ by %.2fx across accounts ($%.2f to $%.2f)", multiple, lowest, highest),
		Data: map[string]any{
			"accountIds":       ids,
			"averageBalances":  balances,
			"varianceMultiple": multiple,
		},
	}
}

func (e *Engine) riskConcentration(reports []domain.FinsightReport, ids []string) *domain.Alert {
	high := 0
	for _, r := range reports {
		if r.RiskAnalysis.RiskLevel == domain.RiskLevelHigh {
			high++
		}
	}

	share := float64(high) / float64(len(reports))
	if share <= e.th.ConcentrationShare {
		return nil
	}

	sev := domain.SeverityHigh
	if high == len(reports) {
		sev = domain.SeverityCritical
	}
	return &domain.Alert{
		Code:     domain.AlertRiskConcentration,
		Severity: sev,
		Message:  fmt.Sprintf("%d of %d accounts are HIGH risk", high, len(reports)),
		Data: map[string]any{
			"accountIds":       ids,
			"highRiskAccounts": high,
			"totalAccounts":    len(reports),
			"highRiskShare":    roundTo2(share),
		},
	}
}

// accountIDs names each report by its AccountID, or by position when unset.
func accountIDs(reports []domain.FinsightReport) []string {
	ids := make([]string, len(reports))
	for i, r := range reports {
		ids[i] = r.AccountID
		if ids[i] == "" {
			ids[i] = fmt.Sprintf("account-%d", i)
		}
	}
	return ids
}
