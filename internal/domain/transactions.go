package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one posted accounting line for the account under reconciliation.
// A zero Date or an invalid Amount marks a value that was missing or could not be parsed.
type LedgerEntry struct {
	ID          string              `json:"id"`
	AccountCode string              `json:"accountCode"`
	Date        time.Time           `json:"date"`
	Amount      decimal.NullDecimal `json:"amount"`
	Description string              `json:"description"`
	Reference   string              `json:"reference,omitempty"`
}

// ExternalEntry is one record from an outside source, typically a bank statement line.
type ExternalEntry struct {
	TransactionID string              `json:"transactionId"`
	Date          time.Time           `json:"date"`
	Amount        decimal.NullDecimal `json:"amount"`
	Description   string              `json:"description"`
	Reference     string              `json:"reference,omitempty"`
	Source        string              `json:"source,omitempty"` // e.g. "statement_bank_A.csv"
}

// HasDate reports whether the entry carries a usable date.
func (e LedgerEntry) HasDate() bool { return !e.Date.IsZero() }

// HasAmount reports whether the entry carries a usable amount.
func (e LedgerEntry) HasAmount() bool { return e.Amount.Valid }

// HasDate reports whether the entry carries a usable date.
func (e ExternalEntry) HasDate() bool { return !e.Date.IsZero() }

// HasAmount reports whether the entry carries a usable amount.
func (e ExternalEntry) HasAmount() bool { return e.Amount.Valid }

// NewAmount wraps a float amount as a valid nullable decimal.
func NewAmount(v float64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromFloat(v))
}

// InvalidAmount is the placeholder for a missing or non-numeric amount.
func InvalidAmount() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// DateOf truncates t to its calendar day in UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
