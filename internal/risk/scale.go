package risk

import "math"

// Bureau-style range the 0-100 Veritas score is published on.
const (
	BureauScoreMin = 300
	BureauScoreMax = 850
)

// bureauStep is the width of one Veritas point on the bureau scale.
const bureauStep = float64(BureauScoreMax-BureauScoreMin) / 100

// ToBureauScale maps a 0-100 Veritas score linearly onto 300-850.
func ToBureauScale(score int) int {
	score = clampInt(score, 0, 100)
	return int(math.Round(BureauScoreMin + float64(score)*bureauStep))
}

// FromBureauScale is the inverse of ToBureauScale, clamped to the range.
func FromBureauScale(bureau int) int {
	bureau = clampInt(bureau, BureauScoreMin, BureauScoreMax)
	return int(math.Round(float64(bureau-BureauScoreMin) / bureauStep))
}
