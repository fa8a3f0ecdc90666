package domain

import (
	"math"
	"time"
)

// TransactionType defines the nature of the transaction (DEBIT or CREDIT).
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

// Transaction is one parsed bank-statement line. It is owned by the caller and
// never mutated by the scoring or alerting code.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      float64         `json:"amount"` // IN = positive, OUT = negative
	Type        TransactionType `json:"type"`
	Balance     *float64        `json:"balance,omitempty"` // running balance printed on the statement, if any
}

// TransactionTypeOf derives the type from the sign of the amount.
func TransactionTypeOf(amount float64) TransactionType {
	if amount > 0 {
		return TransactionTypeCredit
	}
	return TransactionTypeDebit
}

// HasValidAmount reports whether the amount is a finite number.
func (t Transaction) HasValidAmount() bool {
	return !math.IsNaN(t.Amount) && !math.IsInf(t.Amount, 0)
}
