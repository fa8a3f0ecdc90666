package domain

// NSFAnalysis is the applicant's own summary of bounced payments.
type NSFAnalysis struct {
	NSFCount *int `json:"nsfCount,omitempty"`
}

// BalanceAnalysis is the applicant's own summary of account balances.
type BalanceAnalysis struct {
	AverageBalance   *float64 `json:"averageBalance,omitempty"`
	NegativeDayCount *int     `json:"negativeDayCount,omitempty"`
}

// ApplicationData holds the self-reported fields of a business funding
// application. Zero values mean "not stated".
type ApplicationData struct {
	BusinessName               string          `json:"businessName"`
	Industry                   string          `json:"industry"`
	StatedAnnualRevenue        float64         `json:"statedAnnualRevenue"`
	StatedTimeInBusinessMonths int             `json:"statedTimeInBusinessMonths"`
	BusinessStartDate          CalendarDate    `json:"businessStartDate"`
	RequestedAmount            float64         `json:"requestedAmount"`
	NSFAnalysis                NSFAnalysis     `json:"nsfAnalysis"`
	BalanceAnalysis            BalanceAnalysis `json:"balanceAnalysis"`
}

// SOSVerificationResult is what the business-registry verifier found.
// An empty Status means the verification did not complete.
type SOSVerificationResult struct {
	MatchedBusinessName string       `json:"matchedBusinessName"`
	RegistrationDate    CalendarDate `json:"registrationDate"`
	Status              string       `json:"status"`
	BusinessType        string       `json:"businessType"`
}

// Known reports whether the verification produced anything usable.
func (s *SOSVerificationResult) Known() bool {
	return s != nil && (s.Status != "" || s.MatchedBusinessName != "" || !s.RegistrationDate.IsZero())
}

// FinancialSummary is the computed balance view of one account.
type FinancialSummary struct {
	AverageDailyBalance float64 `json:"averageDailyBalance"`
	TotalWithdrawals    float64 `json:"totalWithdrawals"`
	PeriodDays          int     `json:"periodDays"`
	NegativeDayCount    *int    `json:"negativeDayCount,omitempty"`
}

// ReportAnalysis carries the deposit totals and balance summary of a report.
type ReportAnalysis struct {
	TotalDeposits    float64          `json:"totalDeposits"`
	FinancialSummary FinancialSummary `json:"financialSummary"`
}

// RiskAnalysis carries the risk scoring outputs of a report.
type RiskAnalysis struct {
	NSFCount  int       `json:"nsfCount"`
	RiskScore int       `json:"riskScore"`
	RiskLevel RiskLevel `json:"riskLevel"`
}

// FinsightReport is the computed view of one bank account belonging to an
// application. An application may carry several of them.
type FinsightReport struct {
	AccountID    string                 `json:"accountId,omitempty"`
	Analysis     ReportAnalysis         `json:"analysis"`
	RiskAnalysis RiskAnalysis           `json:"riskAnalysis"`
	SOSData      *SOSVerificationResult `json:"sosData,omitempty"`
}

// NewFinsightReport assembles a report from a scored account.
func NewFinsightReport(accountID string, profile RiskProfile) FinsightReport {
	negativeDays := profile.NegativeDays
	return FinsightReport{
		AccountID: accountID,
		Analysis: ReportAnalysis{
			TotalDeposits: profile.TotalDeposits,
			FinancialSummary: FinancialSummary{
				AverageDailyBalance: profile.AverageDailyBalance,
				TotalWithdrawals:    profile.TotalWithdrawals,
				PeriodDays:          profile.PeriodDays,
				NegativeDayCount:    &negativeDays,
			},
		},
		RiskAnalysis: RiskAnalysis{
			NSFCount:  profile.NSFCount,
			RiskScore: profile.RiskScore,
			RiskLevel: profile.RiskLevel,
		},
	}
}
