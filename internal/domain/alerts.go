package domain

import (
	"fmt"
	"slices"
)

// Severity grades an alert. The set is closed and totally ordered:
// CRITICAL > HIGH > MEDIUM > LOW.
type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// SeverityFromString reconstructs a Severity from its string representation.
func SeverityFromString(s string) (Severity, error) {
	sev := Severity(s)
	if sev.Rank() == 0 {
		return "", fmt.Errorf("%w: unknown severity %q", ErrInvalidArgument, s)
	}
	return sev, nil
}

// Rank returns the position of s in the total order; unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

// Compare returns -1, 0 or +1 as s ranks below, equal to or above other.
func (s Severity) Compare(other Severity) int {
	switch a, b := s.Rank(), other.Rank(); {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether s ranks at or above other.
func (s Severity) AtLeast(other Severity) bool {
	return s.Compare(other) >= 0
}

// AlertCode identifies the rule that produced an alert.
type AlertCode string

const (
	AlertGrossAnnualRevenueMismatch     AlertCode = "GROSS_ANNUAL_REVENUE_MISMATCH"
	AlertHighNSFCount                   AlertCode = "HIGH_NSF_COUNT"
	AlertNegativeBalanceDays            AlertCode = "NEGATIVE_BALANCE_DAYS"
	AlertNSFCountUnderreported          AlertCode = "NSF_COUNT_UNDERREPORTED"
	AlertAverageBalanceMismatch         AlertCode = "AVERAGE_BALANCE_MISMATCH"
	AlertRequestedAmountExceedsCapacity AlertCode = "REQUESTED_AMOUNT_EXCEEDS_CAPACITY"
	AlertTimeInBusinessDiscrepancy      AlertCode = "TIME_IN_BUSINESS_DISCREPANCY"
	AlertSOSStatusInactive              AlertCode = "SOS_STATUS_INACTIVE"
	AlertBusinessNameMismatch           AlertCode = "BUSINESS_NAME_MISMATCH"
	AlertInconsistentNSFPattern         AlertCode = "INCONSISTENT_NSF_PATTERN"
	AlertBalanceVariance                AlertCode = "BALANCE_VARIANCE"
	AlertRiskConcentration              AlertCode = "RISK_CONCENTRATION"
)

// Alert is a severity-tagged finding. AccountIndex is nil for alerts that
// describe the whole set of accounts.
type Alert struct {
	Code         AlertCode      `json:"code"`
	Severity     Severity       `json:"severity"`
	Message      string         `json:"message"`
	Data         map[string]any `json:"data,omitempty"`
	AccountIndex *int           `json:"accountIndex,omitempty"`
	AccountID    string         `json:"accountId,omitempty"`
}

// SortBySeverity returns a copy of alerts ordered from most to least severe.
// Alerts of equal severity keep their evaluation order.
func SortBySeverity(alerts []Alert) []Alert {
	sorted := slices.Clone(alerts)
	slices.SortStableFunc(sorted, func(a, b Alert) int {
		return b.Severity.Compare(a.Severity)
	})
	return sorted
}

// HighestSeverity returns the most severe level present, or "" for no alerts.
func HighestSeverity(alerts []Alert) Severity {
	var highest Severity
	for _, a := range alerts {
		if a.Severity.Compare(highest) > 0 {
			highest = a.Severity
		}
	}
	return highest
}
