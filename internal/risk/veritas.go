package risk

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"underwriting-risk/internal/domain"
)

// VeritasInputs are the risk signals fed into the Veritas score.
// StabilityRatio, when set, overrides the configured estimator.
type VeritasInputs struct {
	NSFCount       int      `validate:"gte=0"`
	AverageBalance float64  `validate:"finite"`
	StabilityRatio *float64 `validate:"omitempty,gte=0,lte=1"`
}

// interpretations is the fixed reading of each grade.
var interpretations = map[domain.Grade]domain.Interpretation{
	domain.GradeA: {
		Level:          "EXCELLENT",
		Description:    "Healthy balances, no material NSF history and steady deposits.",
		Recommendation: "Approve at standard terms.",
	},
	domain.GradeB: {
		Level:          "GOOD",
		Description:    "Adequate balances with minor irregularities.",
		Recommendation: "Approve with routine monitoring.",
	},
	domain.GradeC: {
		Level:          "FAIR",
		Description:    "Thin balances, some NSF activity or uneven deposits.",
		Recommendation: "Manual review; consider a reduced amount or shorter term.",
	},
	domain.GradeD: {
		Level:          "POOR",
		Description:    "Repeated NSF events, low or negative balances, or erratic income.",
		Recommendation: "Decline or request additional documentation.",
	},
}

// InterpretationFor returns the reading of a grade.
func InterpretationFor(g domain.Grade) domain.Interpretation {
	return interpretations[g]
}

// CalculateVeritasScore combines NSF history, average balance and income
// stability into a 0-100 creditworthiness score:
//
//	score = nsfScore*w.NSF + balanceScore*w.Balance + stabilityScore*w.Stability
//
// where each component is normalised to [0,100] first.
func (a *Analyzer) CalculateVeritasScore(inputs VeritasInputs, transactions []domain.Transaction) (domain.VeritasScore, error) {
	if err := a.validator.Struct(inputs); err != nil {
		return domain.VeritasScore{}, err
	}

	vc := a.cfg.Veritas
	ratio := a.stabilityRatio(inputs, transactions)

	components := domain.ComponentScores{
		NSFScore:       clamp(100-vc.NSFPenaltyPerIncident*float64(inputs.NSFCount), 0, 100),
		BalanceScore:   clamp(inputs.AverageBalance/vc.BalanceTarget*100, 0, 100),
		StabilityScore: clamp(ratio, 0, 1) * 100,
	}

	weighted := decimal.NewFromFloat(components.NSFScore).Mul(decimal.NewFromFloat(vc.Weights.NSF)).
		Add(decimal.NewFromFloat(components.BalanceScore).Mul(decimal.NewFromFloat(vc.Weights.Balance))).
		Add(decimal.NewFromFloat(components.StabilityScore).Mul(decimal.NewFromFloat(vc.Weights.Stability)))

	score := int(weighted.Round(0).IntPart())
	score = clampInt(score, 0, 100)
	grade := vc.Grades.Grade(score)

	return domain.VeritasScore{
		Score:           score,
		BureauScore:     ToBureauScale(score),
		Grade:           grade,
		ComponentScores: components,
		Weights:         vc.Weights,
		StabilityRatio:  ratio,
		Interpretation:  InterpretationFor(grade),
	}, nil
}

// stabilityRatio resolves the stability input: explicit ratio, then the
// estimator, then the neutral default.
func (a *Analyzer) stabilityRatio(inputs VeritasInputs, transactions []domain.Transaction) float64 {
	if inputs.StabilityRatio != nil {
		return *inputs.StabilityRatio
	}
	if a.stability == nil {
		return a.cfg.Veritas.NeutralStability
	}

	ratio, err := a.stability.EstimateStability(transactions)
	if err != nil {
		a.logger.Warn("stability estimate unavailable, using neutral ratio",
			zap.Error(err),
			zap.Float64("neutral", a.cfg.Veritas.NeutralStability))
		return a.cfg.Veritas.NeutralStability
	}
	return clamp(ratio, 0, 1)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
