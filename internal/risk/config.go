package risk

import (
	"fmt"
	"math"

	"underwriting-risk/internal/domain"
)

// DefaultNSFKeywords are the description fragments that mark a bounced or
// returned payment.
var DefaultNSFKeywords = []string{
	"nsf",
	"insufficient funds",
	"overdraft",
	"returned check",
	"returned item",
	"bounce",
	"non-sufficient",
	"overdraw",
	"insufficient",
	"returned deposit",
	"reject",
	"decline",
	"unavailable funds",
	"return fee",
	"chargeback",
	"reversal",
	"dishonored",
	"unpaid",
	"refer to maker",
	"od fee",
	"overdraft charge",
	"return item",
}

// Default scoring constants.
const (
	DefaultNSFIncidentPoints     = 30
	DefaultLowBalanceThreshold   = 1000.0
	DefaultLowBalancePoints      = 20
	DefaultHighWithdrawalRatio   = 0.8
	DefaultHighWithdrawalPoints  = 25
	DefaultNegativeBalancePoints = 40
	DefaultMaxScore              = 100

	DefaultHighBand   = 80
	DefaultMediumBand = 40
	DefaultLowBand    = 20
)

// Default Veritas constants. The component weights sum to 1.0.
const (
	DefaultVeritasNSFWeight       = 0.4
	DefaultVeritasBalanceWeight   = 0.3
	DefaultVeritasStabilityWeight = 0.3
	DefaultNSFPenaltyPerIncident  = 25.0
	DefaultBalanceTarget          = 10000.0
	DefaultNeutralStability       = 0.5

	DefaultGradeA = 80
	DefaultGradeB = 65
	DefaultGradeC = 50
)

// ScoringConfig holds the additive risk-score weights.
type ScoringConfig struct {
	NSFIncidentPoints     int     `yaml:"nsf_incident_points" mapstructure:"nsf_incident_points" validate:"gte=0"`
	LowBalanceThreshold   float64 `yaml:"low_balance_threshold" mapstructure:"low_balance_threshold" validate:"finite"`
	LowBalancePoints      int     `yaml:"low_balance_points" mapstructure:"low_balance_points" validate:"gte=0"`
	HighWithdrawalRatio   float64 `yaml:"high_withdrawal_ratio" mapstructure:"high_withdrawal_ratio" validate:"gt=0"`
	HighWithdrawalPoints  int     `yaml:"high_withdrawal_points" mapstructure:"high_withdrawal_points" validate:"gte=0"`
	NegativeBalancePoints int     `yaml:"negative_balance_points" mapstructure:"negative_balance_points" validate:"gte=0"`
	MaxScore              int     `yaml:"max_score" mapstructure:"max_score" validate:"gt=0"`
}

// RiskBands are the lower bounds (inclusive) of each risk level.
type RiskBands struct {
	High   int `yaml:"high" mapstructure:"high" validate:"gtfield=Medium"`
	Medium int `yaml:"medium" mapstructure:"medium" validate:"gtfield=Low"`
	Low    int `yaml:"low" mapstructure:"low" validate:"gt=0"`
}

// Level maps a score onto its band.
func (b RiskBands) Level(score int) domain.RiskLevel {
	switch {
	case score >= b.High:
		return domain.RiskLevelHigh
	case score >= b.Medium:
		return domain.RiskLevelMedium
	case score >= b.Low:
		return domain.RiskLevelLow
	default:
		return domain.RiskLevelVeryLow
	}
}

// GradeBands are the lower bounds (inclusive) of the A, B and C grades;
// anything below C is a D.
type GradeBands struct {
	A int `yaml:"a" mapstructure:"a" validate:"gtfield=B,lte=100"`
	B int `yaml:"b" mapstructure:"b" validate:"gtfield=C"`
	C int `yaml:"c" mapstructure:"c" validate:"gt=0"`
}

// Grade maps a 0-100 score onto a letter.
func (g GradeBands) Grade(score int) domain.Grade {
	switch {
	case score >= g.A:
		return domain.GradeA
	case score >= g.B:
		return domain.GradeB
	case score >= g.C:
		return domain.GradeC
	default:
		return domain.GradeD
	}
}

// VeritasConfig holds the composite score weights and normalisation constants.
type VeritasConfig struct {
	Weights               domain.ScoreWeights `yaml:"weights" mapstructure:"weights"`
	NSFPenaltyPerIncident float64             `yaml:"nsf_penalty_per_incident" mapstructure:"nsf_penalty_per_incident" validate:"gte=0"`
	BalanceTarget         float64             `yaml:"balance_target" mapstructure:"balance_target" validate:"gt=0"`
	NeutralStability      float64             `yaml:"neutral_stability" mapstructure:"neutral_stability" validate:"gte=0,lte=1"`
	Grades                GradeBands          `yaml:"grades" mapstructure:"grades"`
}

// Config is the full tuning table of the risk and Veritas engines.
type Config struct {
	NSFKeywords []string      `yaml:"nsf_keywords" mapstructure:"nsf_keywords" validate:"min=1,dive,required"`
	Scoring     ScoringConfig `yaml:"scoring" mapstructure:"scoring"`
	Bands       RiskBands     `yaml:"bands" mapstructure:"bands"`
	Veritas     VeritasConfig `yaml:"veritas" mapstructure:"veritas"`
}

// DefaultConfig returns the production tuning.
func DefaultConfig() Config {
	keywords := make([]string, len(DefaultNSFKeywords))
	copy(keywords, DefaultNSFKeywords)

	return Config{
		NSFKeywords: keywords,
		Scoring: ScoringConfig{
			NSFIncidentPoints:     DefaultNSFIncidentPoints,
			LowBalanceThreshold:   DefaultLowBalanceThreshold,
			LowBalancePoints:      DefaultLowBalancePoints,
			HighWithdrawalRatio:   DefaultHighWithdrawalRatio,
			HighWithdrawalPoints:  DefaultHighWithdrawalPoints,
			NegativeBalancePoints: DefaultNegativeBalancePoints,
			MaxScore:              DefaultMaxScore,
		},
		Bands: RiskBands{
			High:   DefaultHighBand,
			Medium: DefaultMediumBand,
			Low:    DefaultLowBand,
		},
		Veritas: VeritasConfig{
			Weights: domain.ScoreWeights{
				NSF:       DefaultVeritasNSFWeight,
				Balance:   DefaultVeritasBalanceWeight,
				Stability: DefaultVeritasStabilityWeight,
			},
			NSFPenaltyPerIncident: DefaultNSFPenaltyPerIncident,
			BalanceTarget:         DefaultBalanceTarget,
			NeutralStability:      DefaultNeutralStability,
			Grades: GradeBands{
				A: DefaultGradeA,
				B: DefaultGradeB,
				C: DefaultGradeC,
			},
		},
	}
}

// weightTolerance absorbs float noise when checking the weights sum.
const weightTolerance = 1e-6

// CheckWeights reports an error when the Veritas weights do not sum to 1.0.
func (c Config) CheckWeights() error {
	if sum := c.Veritas.Weights.Sum(); math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("%w: veritas weights sum to %.6f, want 1.0", domain.ErrInvalidArgument, sum)
	}
	return nil
}
