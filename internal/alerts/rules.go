package alerts

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"underwriting-risk/internal/domain"
)

const daysPerYear = 365

// EvaluationContext is everything a single-report rule may look at.
type EvaluationContext struct {
	ReportIndex int
	AccountID   string
	Report      domain.FinsightReport
	Application domain.ApplicationData
	// SOS is nil when no registry result is known for this report.
	SOS  *domain.SOSVerificationResult
	AsOf time.Time
}

func (ec EvaluationContext) alert(code domain.AlertCode, sev domain.Severity, msg string, data map[string]any) *domain.Alert {
	index := ec.ReportIndex
	return &domain.Alert{
		Code:         code,
		Severity:     sev,
		Message:      msg,
		Data:         data,
		AccountIndex: &index,
		AccountID:    ec.AccountID,
	}
}

// revenueMismatch compares stated annual revenue with the report's deposits
// scaled to a year.
func (e *Engine) revenueMismatch(ec EvaluationContext) *domain.Alert {
	stated := ec.Application.StatedAnnualRevenue
	if stated <= 0 || !isFinite(stated) {
		return nil
	}

	annualized, periodDays, ok := e.annualizedDeposits(ec.Report)
	if !ok {
		return nil
	}

	if annualized.IsZero() {
		return ec.alert(domain.AlertGrossAnnualRevenueMismatch, domain.SeverityCritical,
			fmt.Sprintf("Stated annual revenue of $%.2f but no deposits were observed over %d days", stated, periodDays),
			map[string]any{
				"statedAnnualRevenue": stated,
				"annualizedDeposits":  0.0,
				"periodDays":          periodDays,
			})
	}

	discrepancy := decimal.NewFromFloat(stated).Sub(annualized).Abs().
		Div(annualized).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
	if discrepancy <= e.th.RevenueHighPct {
		return nil
	}

	sev := domain.SeverityHigh
	if discrepancy > e.th.RevenueCriticalPct {
		sev = domain.SeverityCritical
	}

	annual := annualized.Round(2).InexactFloat64()
	return ec.alert(domain.AlertGrossAnnualRevenueMismatch, sev,
		fmt.Sprintf("Stated annual revenue $%.2f differs from annualized deposits $%.2f by %.2f%%", stated, annual, discrepancy),
		map[string]any{
			"discrepancyPercentage": discrepancy,
			"statedAnnualRevenue":   stated,
			"annualizedDeposits":    annual,
			"periodDays":            periodDays,
		})
}

func (e *Engine) highNSFCount(ec EvaluationContext) *domain.Alert {
	count := ec.Report.RiskAnalysis.NSFCount
	if count <= e.th.HighNSFCount {
		return nil
	}
	return ec.alert(domain.AlertHighNSFCount, domain.SeverityHigh,
		fmt.Sprintf("%d NSF incidents found on the statement (threshold %d)", count, e.th.HighNSFCount),
		map[string]any{"nsfCount": count})
}

// negativeBalanceDays checks the applicant's negative-day count and falls back
// to the count computed from the statement when the applicant gave none.
func (e *Engine) negativeBalanceDays(ec EvaluationContext) *domain.Alert {
	source := "application"
	days := ec.Application.BalanceAnalysis.NegativeDayCount
	if days == nil {
		source = "report"
		days = ec.Report.Analysis.FinancialSummary.NegativeDayCount
	}
	if days == nil || *days <= e.th.NegativeDaysMedium {
		return nil
	}

	sev := domain.SeverityMedium
	if *days > e.th.NegativeDaysHigh {
		sev = domain.SeverityHigh
	}
	return ec.alert(domain.AlertNegativeBalanceDays, sev,
		fmt.Sprintf("Account closed %d days with a negative balance", *days),
		map[string]any{"negativeDayCount": *days, "source": source})
}

func (e *Engine) nsfCountUnderreported(ec EvaluationContext) *domain.Alert {
	stated := ec.Application.NSFAnalysis.NSFCount
	if stated == nil {
		return nil
	}
	computed := ec.Report.RiskAnalysis.NSFCount
	if computed <= *stated {
		return nil
	}
	return ec.alert(domain.AlertNSFCountUnderreported, domain.SeverityMedium,
		fmt.Sprintf("Application reports %d NSF incidents but the statement shows %d", *stated, computed),
		map[string]any{"statedNsfCount": *stated, "nsfCount": computed})
}

func (e *Engine) averageBalanceMismatch(ec EvaluationContext) *domain.Alert {
	stated := ec.Application.BalanceAnalysis.AverageBalance
	if stated == nil || !isFinite(*stated) {
		return nil
	}
	computed := ec.Report.Analysis.FinancialSummary.AverageDailyBalance
	if !isFinite(computed) {
		return nil
	}

	base := math.Max(math.Abs(computed), e.th.BalanceFloor)
	discrepancy := decimal.NewFromFloat(*stated - computed).Abs().
		Div(decimal.NewFromFloat(base)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		InexactFloat64()
	if discrepancy <= e.th.AverageBalanceTolerancePct {
		return nil
	}
	return ec.alert(domain.AlertAverageBalanceMismatch, domain.SeverityMedium,
		fmt.Sprintf("Stated average balance $%.2f differs from computed average daily balance $%.2f by %.2f%%", *stated, computed, discrepancy),
		map[string]any{
			"statedAverageBalance":  *stated,
			"averageDailyBalance":   computed,
			"discrepancyPercentage": discrepancy,
		})
}

func (e *Engine) requestedAmountExceedsCapacity(ec EvaluationContext) *domain.Alert {
	requested := ec.Application.RequestedAmount
	if requested <= 0 || !isFinite(requested) {
		return nil
	}
	annualized, _, ok := e.annualizedDeposits(ec.Report)
	if !ok {
		return nil
	}

	capacity := annualized.Mul(decimal.NewFromFloat(e.th.CapacityRatio)).Round(2).InexactFloat64()
	if requested <= capacity {
		return nil
	}
	return ec.alert(domain.AlertRequestedAmountExceedsCapacity, domain.SeverityMedium,
		fmt.Sprintf("Requested amount $%.2f exceeds %.0f%% of annualized deposits ($%.2f)", requested, e.th.CapacityRatio*100, capacity),
		map[string]any{
			"requestedAmount":    requested,
			"annualizedDeposits": annualized.Round(2).InexactFloat64(),
			"maxSupportedAmount": capacity,
		})
}

func (e *Engine) timeInBusinessDiscrepancy(ec EvaluationContext) *domain.Alert {
	if ec.SOS == nil || ec.SOS.RegistrationDate.IsZero() {
		return nil
	}

	app := ec.Application
	var stated int
	switch {
	case app.StatedTimeInBusinessMonths > 0:
		stated = app.StatedTimeInBusinessMonths
	case !app.BusinessStartDate.IsZero():
		stated = monthsBetween(app.BusinessStartDate.Time, ec.AsOf)
	default:
		return nil
	}

	registered := monthsBetween(ec.SOS.RegistrationDate.Time, ec.AsOf)
	gap := stated - registered
	if gap < 0 {
		gap = -gap
	}
	if gap <= e.th.TimeInBusinessMediumMonths {
		return nil
	}

	sev := domain.SeverityMedium
	if gap > e.th.TimeInBusinessHighMonths {
		sev = domain.SeverityHigh
	}
	return ec.alert(domain.AlertTimeInBusinessDiscrepancy, sev,
		fmt.Sprintf("Stated time in business of %d months differs from registry age of %d months", stated, registered),
		map[string]any{
			"statedMonths":      stated,
			"registeredMonths":  registered,
			"discrepancyMonths": gap,
			"registrationDate":  ec.SOS.RegistrationDate.Format(time.DateOnly),
		})
}

func (e *Engine) sosStatusInactive(ec EvaluationContext) *domain.Alert {
	if ec.SOS == nil || ec.SOS.Status == "" {
		return nil
	}
	if _, ok := e.active[normalizeStatus(ec.SOS.Status)]; ok {
		return nil
	}
	return ec.alert(domain.AlertSOSStatusInactive, domain.SeverityHigh,
		fmt.Sprintf("Business registry status is %q", ec.SOS.Status),
		map[string]any{"status": ec.SOS.Status, "businessType": ec.SOS.BusinessType})
}

func (e *Engine) businessNameMismatch(ec EvaluationContext) *domain.Alert {
	if ec.SOS == nil || ec.SOS.MatchedBusinessName == "" || ec.Application.BusinessName == "" {
		return nil
	}

	similarity := roundTo2(NameSimilarity(ec.Application.BusinessName, ec.SOS.MatchedBusinessName))
	if similarity >= e.th.NameSimilarityMedium {
		return nil
	}

	sev := domain.SeverityMedium
	if similarity < e.th.NameSimilarityHigh {
		sev = domain.SeverityHigh
	}
	return ec.alert(domain.AlertBusinessNameMismatch, sev,
		fmt.Sprintf("Registry name %q does not match application name %q", ec.SOS.MatchedBusinessName, ec.Application.BusinessName),
		map[string]any{
			"businessName":        ec.Application.BusinessName,
			"matchedBusinessName": ec.SOS.MatchedBusinessName,
			"similarity":          similarity,
		})
}

// annualizedDeposits scales a report's deposits to 365 days. ok is false when
// the deposits are unusable.
func (e *Engine) annualizedDeposits(r domain.FinsightReport) (decimal.Decimal, int, bool) {
	deposits := r.Analysis.TotalDeposits
	if !isFinite(deposits) || deposits < 0 {
		return decimal.Zero, 0, false
	}

	periodDays := r.Analysis.FinancialSummary.PeriodDays
	if periodDays <= 0 {
		periodDays = e.th.DefaultPeriodDays
	}

	annualized := decimal.NewFromFloat(deposits).
		Mul(decimal.NewFromInt(daysPerYear)).
		Div(decimal.NewFromInt(int64(periodDays)))
	return annualized, periodDays, true
}

// monthsBetween counts whole calendar months from from to to.
func monthsBetween(from, to time.Time) int {
	fy, fm, fd := from.Date()
	ty, tm, td := to.Date()
	months := (ty-fy)*12 + int(tm-fm)
	if td < fd {
		months--
	}
	return months
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func roundTo2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
