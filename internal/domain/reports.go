package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MatchType classifies a match by confidence tier.
type MatchType string

const (
	MatchTypeExact   MatchType = "exact"
	MatchTypeFuzzy   MatchType = "fuzzy"
	MatchTypePartial MatchType = "partial"

	// MatchTypeSplit and MatchTypeComposite are reserved for many-to-one and many-to-many
	// matches. The matcher only produces 1:1 matches and never emits them.
	MatchTypeSplit     MatchType = "split"
	MatchTypeComposite MatchType = "composite"
)

// DiscrepancyType names the side an unmatched entry came from.
type DiscrepancyType string

const (
	DiscrepancyUnmatchedBank DiscrepancyType = "unmatched_bank"
	DiscrepancyUnmatchedGL   DiscrepancyType = "unmatched_gl"
)

// Severity is the review priority of a discrepancy.
type Severity string

const (
	SeverityCritical Severity = "critical" // declared, not produced by the matcher
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low" // declared, not produced by the matcher
)

// MatchCriteria is the reporting-only breakdown of a pair. It is computed with continuous
// formulas and is never used to accept or reject a match.
type MatchCriteria struct {
	AmountMatch      float64 `json:"amountMatch"`
	DateMatch        float64 `json:"dateMatch"`
	DescriptionMatch float64 `json:"descriptionMatch"`
	ReferenceMatch   float64 `json:"referenceMatch"`
	PatternMatch     float64 `json:"patternMatch"`
}

// MatchResult pairs one ledger entry with one external entry.
type MatchResult struct {
	MatchID       string        `json:"matchId"`
	MatchType     MatchType     `json:"matchType"`
	Confidence    float64       `json:"confidence"`
	LedgerEntry   LedgerEntry   `json:"ledgerEntry"`
	ExternalEntry ExternalEntry `json:"externalEntry"`
	Criteria      MatchCriteria `json:"criteria"`
}

// Discrepancy is an entry left without a counterpart after matching and mode filtering.
// Exactly one of LedgerEntry and ExternalEntry is set.
type Discrepancy struct {
	Type             DiscrepancyType `json:"type"`
	Severity         Severity        `json:"severity"`
	Amount           decimal.Decimal `json:"amount"`
	Description      string          `json:"description"`
	LedgerEntry      *LedgerEntry    `json:"ledgerEntry,omitempty"`
	ExternalEntry    *ExternalEntry  `json:"externalEntry,omitempty"`
	SuggestedActions []string        `json:"suggestedActions"`
}

// ReconciliationSummary aggregates one run.
type ReconciliationSummary struct {
	TotalLedgerEntries      int             `json:"totalLedgerEntries"`
	TotalExternalEntries    int             `json:"totalExternalEntries"`
	MatchedCount            int             `json:"matchedCount"`
	UnmatchedLedgerCount    int             `json:"unmatchedLedgerCount"`
	UnmatchedExternalCount  int             `json:"unmatchedExternalCount"`
	ExactMatches            int             `json:"exactMatches"`
	FuzzyMatches            int             `json:"fuzzyMatches"`
	PartialMatches          int             `json:"partialMatches"`
	MatchRate               float64         `json:"matchRate"`
	AverageConfidence       float64         `json:"averageConfidence"`
	ExternalBalance         decimal.Decimal `json:"externalBalance"`
	LedgerBalance           decimal.Decimal `json:"ledgerBalance"`
	Difference              decimal.Decimal `json:"difference"`
	IsBalanced              bool            `json:"isBalanced"`
	UnmatchedLedgerAmount   decimal.Decimal `json:"unmatchedLedgerAmount"`
	UnmatchedExternalAmount decimal.Decimal `json:"unmatchedExternalAmount"`
}

// ReconciliationResult is the matcher output.
type ReconciliationResult struct {
	Matches           []MatchResult         `json:"matches"`
	UnmatchedLedger   []LedgerEntry         `json:"unmatchedLedger"`
	UnmatchedExternal []ExternalEntry       `json:"unmatchedExternal"`
	Discrepancies     []Discrepancy         `json:"discrepancies"`
	Summary           ReconciliationSummary `json:"summary"`
	Recommendations   []string              `json:"recommendations"`
}

// ReportMode selects how much of a result is returned to callers.
type ReportMode string

const (
	ReportModeSummary  ReportMode = "summary"
	ReportModeDetailed ReportMode = "detailed"
)

// ReconciliationReport is the top-level structure returned to API and CLI callers.
// Result is nil in summary mode.
type ReconciliationReport struct {
	RunID           string                `json:"runId"`
	AccountCode     string                `json:"accountCode"`
	PeriodStart     string                `json:"periodStart,omitempty"`
	PeriodEnd       string                `json:"periodEnd,omitempty"`
	MatchingMode    string                `json:"matchingMode"`
	ReportMode      ReportMode            `json:"reportMode"`
	CreatedAt       time.Time             `json:"createdAt"`
	Summary         ReconciliationSummary `json:"summary"`
	Recommendations []string              `json:"recommendations"`
	Result          *ReconciliationResult `json:"result,omitempty"`
}
