package domain

import (
	"fmt"
	"time"
)

// RiskLevel is the band a risk score falls into.
type RiskLevel string

const (
	RiskLevelVeryLow RiskLevel = "VERY_LOW"
	RiskLevelLow     RiskLevel = "LOW"
	RiskLevelMedium  RiskLevel = "MEDIUM"
	RiskLevelHigh    RiskLevel = "HIGH"
)

// RiskLevelFromString reconstructs a RiskLevel from its string representation.
func RiskLevelFromString(s string) (RiskLevel, error) {
	switch RiskLevel(s) {
	case RiskLevelVeryLow, RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return RiskLevel(s), nil
	default:
		return "", fmt.Errorf("%w: unknown risk level %q", ErrInvalidArgument, s)
	}
}

// BalanceProjection is the result of walking an account day by day from its
// opening balance.
type BalanceProjection struct {
	AverageDailyBalance float64    `json:"averageDailyBalance"`
	PeriodDays          int        `json:"periodDays"`
	NegativeDays        int        `json:"negativeDays"`
	MinimumBalance      float64    `json:"minimumBalance"`
	StartDate           *time.Time `json:"startDate,omitempty"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	SkippedRecords      int        `json:"skippedRecords"`
}

// Totals partitions an account's money movement.
type Totals struct {
	TotalDeposits    float64 `json:"totalDeposits"`
	TotalWithdrawals float64 `json:"totalWithdrawals"`
}

// RiskProfile is the quantitative risk view of a single account.
// RiskScore and RiskLevel are derived from the other numeric fields only.
type RiskProfile struct {
	NSFCount            int       `json:"nsfCount"`
	TotalDeposits       float64   `json:"totalDeposits"`
	TotalWithdrawals    float64   `json:"totalWithdrawals"`
	AverageDailyBalance float64   `json:"averageDailyBalance"`
	PeriodDays          int       `json:"periodDays"`
	NegativeDays        int       `json:"negativeDays"`
	MinimumBalance      float64   `json:"minimumBalance"`
	WithdrawalRatio     float64   `json:"withdrawalRatio"`
	RiskScore           int       `json:"riskScore"`
	RiskLevel           RiskLevel `json:"riskLevel"`
	Signals             []string  `json:"signals"`
}

// Grade is a Veritas letter grade.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// ComponentScores are the normalised (0-100) inputs of a Veritas score.
type ComponentScores struct {
	NSFScore       float64 `json:"nsfScore"`
	BalanceScore   float64 `json:"balanceScore"`
	StabilityScore float64 `json:"stabilityScore"`
}

// ScoreWeights are the weights applied to ComponentScores. They sum to 1.0.
type ScoreWeights struct {
	NSF       float64 `json:"nsf" yaml:"nsf" mapstructure:"nsf" validate:"gte=0,lte=1"`
	Balance   float64 `json:"balance" yaml:"balance" mapstructure:"balance" validate:"gte=0,lte=1"`
	Stability float64 `json:"stability" yaml:"stability" mapstructure:"stability" validate:"gte=0,lte=1"`
}

// Sum returns the total of all weights.
func (w ScoreWeights) Sum() float64 {
	return w.NSF + w.Balance + w.Stability
}

// Interpretation is the human-facing reading of a grade.
type Interpretation struct {
	Level          string `json:"level" yaml:"level" mapstructure:"level"`
	Description    string `json:"description" yaml:"description" mapstructure:"description"`
	Recommendation string `json:"recommendation" yaml:"recommendation" mapstructure:"recommendation"`
}

// VeritasScore is the composite creditworthiness score on the 0-100 scale.
// BureauScore carries the same value mapped onto 300-850.
type VeritasScore struct {
	Score           int             `json:"score"`
	BureauScore     int             `json:"bureauScore"`
	Grade           Grade           `json:"grade"`
	ComponentScores ComponentScores `json:"componentScores"`
	Weights         ScoreWeights    `json:"weights"`
	StabilityRatio  float64         `json:"stabilityRatio"`
	Interpretation  Interpretation  `json:"interpretation"`
}
