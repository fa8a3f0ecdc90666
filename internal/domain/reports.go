package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountAnalysis is the scored view of one statement.
type AccountAnalysis struct {
	AccountIndex int          `json:"accountIndex"`
	AccountID    string       `json:"accountId"`
	Transactions int          `json:"transactionsProcessed"`
	RiskProfile  RiskProfile  `json:"riskProfile"`
	Veritas      VeritasScore `json:"veritas"`
}

// UnderwritingReport is the top-level structure for the final JSON output.
type UnderwritingReport struct {
	RunID           uuid.UUID         `json:"runId"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	BusinessName    string            `json:"businessName"`
	Accounts        []AccountAnalysis `json:"accounts"`
	Alerts          []Alert           `json:"alerts"`
	HighestSeverity Severity          `json:"highestSeverity,omitempty"`
}

// AlertCount returns how many alerts carry the given severity.
func (r *UnderwritingReport) AlertCount(sev Severity) int {
	count := 0
	for _, a := range r.Alerts {
		if a.Severity == sev {
			count++
		}
	}
	return count
}
