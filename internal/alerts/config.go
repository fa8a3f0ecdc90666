package alerts

// Default alert thresholds.
const (
	DefaultPeriodDays = 30

	DefaultRevenueHighPct     = 50.0
	DefaultRevenueCriticalPct = 100.0

	DefaultHighNSFCount = 3

	DefaultNegativeDaysMedium = 5
	DefaultNegativeDaysHigh   = 10

	DefaultAverageBalanceTolerancePct = 25.0
	DefaultCapacityRatio              = 0.5

	DefaultTimeInBusinessMediumMonths = 12
	DefaultTimeInBusinessHighMonths   = 24

	DefaultNameSimilarityMedium = 0.80
	DefaultNameSimilarityHigh   = 0.50

	DefaultCrossNSFSpread          = 3
	DefaultBalanceVarianceMultiple = 5.0
	DefaultBalanceFloor            = 1.0
	DefaultConcentrationShare      = 0.5
)

// DefaultActiveStatuses are the registry statuses treated as "active".
var DefaultActiveStatuses = []string{
	"active",
	"good standing",
	"in good standing",
	"current",
	"in existence",
}

// Thresholds is the tuning table of the alerts engine. Percentages are on a
// 0-100 scale; similarity and share values on 0-1.
type Thresholds struct {
	// DefaultPeriodDays is the statement length assumed when a report
	// does not carry one.
	DefaultPeriodDays int `yaml:"default_period_days" mapstructure:"default_period_days" validate:"gt=0"`

	RevenueHighPct     float64 `yaml:"revenue_high_pct" mapstructure:"revenue_high_pct" validate:"gt=0"`
	RevenueCriticalPct float64 `yaml:"revenue_critical_pct" mapstructure:"revenue_critical_pct" validate:"gtfield=RevenueHighPct"`

	HighNSFCount int `yaml:"high_nsf_count" mapstructure:"high_nsf_count" validate:"gte=0"`

	NegativeDaysMedium int `yaml:"negative_days_medium" mapstructure:"negative_days_medium" validate:"gte=0"`
	NegativeDaysHigh   int `yaml:"negative_days_high" mapstructure:"negative_days_high" validate:"gtfield=NegativeDaysMedium"`

	AverageBalanceTolerancePct float64 `yaml:"average_balance_tolerance_pct" mapstructure:"average_balance_tolerance_pct" validate:"gt=0"`
	// CapacityRatio is the largest share of annualised deposits a request may ask for.
	CapacityRatio float64 `yaml:"capacity_ratio" mapstructure:"capacity_ratio" validate:"gt=0"`

	TimeInBusinessMediumMonths int `yaml:"time_in_business_medium_months" mapstructure:"time_in_business_medium_months" validate:"gte=0"`
	TimeInBusinessHighMonths   int `yaml:"time_in_business_high_months" mapstructure:"time_in_business_high_months" validate:"gtfield=TimeInBusinessMediumMonths"`

	ActiveStatuses []string `yaml:"active_statuses" mapstructure:"active_statuses" validate:"min=1,dive,required"`

	// Names scoring below NameSimilarityMedium raise MEDIUM, below
	// NameSimilarityHigh raise HIGH.
	NameSimilarityMedium float64 `yaml:"name_similarity_medium" mapstructure:"name_similarity_medium" validate:"gt=0,lte=1"`
	NameSimilarityHigh   float64 `yaml:"name_similarity_high" mapstructure:"name_similarity_high" validate:"gt=0,ltfield=NameSimilarityMedium"`

	CrossNSFSpread          int     `yaml:"cross_nsf_spread" mapstructure:"cross_nsf_spread" validate:"gt=0"`
	BalanceVarianceMultiple float64 `yaml:"balance_variance_multiple" mapstructure:"balance_variance_multiple" validate:"gt=1"`
	BalanceFloor            float64 `yaml:"balance_floor" mapstructure:"balance_floor" validate:"gt=0"`
	ConcentrationShare      float64 `yaml:"concentration_share" mapstructure:"concentration_share" validate:"gt=0,lt=1"`
}

// DefaultThresholds returns the production tuning.
func DefaultThresholds() Thresholds {
	statuses := make([]string, len(DefaultActiveStatuses))
	copy(statuses, DefaultActiveStatuses)

	return Thresholds{
		DefaultPeriodDays:          DefaultPeriodDays,
		RevenueHighPct:             DefaultRevenueHighPct,
		RevenueCriticalPct:         DefaultRevenueCriticalPct,
		HighNSFCount:               DefaultHighNSFCount,
		NegativeDaysMedium:         DefaultNegativeDaysMedium,
		NegativeDaysHigh:           DefaultNegativeDaysHigh,
		AverageBalanceTolerancePct: DefaultAverageBalanceTolerancePct,
		CapacityRatio:              DefaultCapacityRatio,
		TimeInBusinessMediumMonths: DefaultTimeInBusinessMediumMonths,
		TimeInBusinessHighMonths:   DefaultTimeInBusinessHighMonths,
		ActiveStatuses:             statuses,
		NameSimilarityMedium:       DefaultNameSimilarityMedium,
		NameSimilarityHigh:         DefaultNameSimilarityHigh,
		CrossNSFSpread:             DefaultCrossNSFSpread,
		BalanceVarianceMultiple:    DefaultBalanceVarianceMultiple,
		BalanceFloor:               DefaultBalanceFloor,
		ConcentrationShare:         DefaultConcentrationShare,
	}
}
