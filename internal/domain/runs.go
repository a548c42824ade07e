package domain

import "time"

// ReconciliationRun is one persisted invocation of the matcher.
type ReconciliationRun struct {
	ID                   string               `json:"id"`
	AccountCode          string               `json:"accountCode"`
	PeriodStart          time.Time            `json:"periodStart"`
	PeriodEnd            time.Time            `json:"periodEnd"`
	MatchingMode         string               `json:"matchingMode"`
	Strategy             string               `json:"strategy"`
	CurrentLedgerBalance float64              `json:"currentLedgerBalance"`
	CreatedAt            time.Time            `json:"createdAt"`
	Result               ReconciliationResult `json:"result"`
}
