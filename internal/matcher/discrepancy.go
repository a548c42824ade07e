package matcher

import (
	"fmt"

	"github.com/shopspring/decimal"

	"gl-reconciliation/internal/domain"
)

var (
	highSeverityAmount = decimal.NewFromInt(1000)
	balanceTolerance   = decimal.RequireFromString("0.01")
)

var (
	unmatchedBankActions = []string{
		"Verify timing difference against the ledger posting date",
		"Check for missing ledger entries",
		"Record a journal entry if the transaction is legitimate",
	}
	unmatchedLedgerActions = []string{
		"Verify timing difference against the bank posting date",
		"Check for outstanding checks or deposits in transit",
		"Confirm the entry was not posted twice",
	}
)

// severityFor is high above 1000 in absolute value and medium otherwise, including for
// missing amounts.
func severityFor(amount decimal.NullDecimal) domain.Severity {
	if amount.Valid && amount.Decimal.Abs().GreaterThan(highSeverityAmount) {
		return domain.SeverityHigh
	}
	return domain.SeverityMedium
}

func amountOrZero(amount decimal.NullDecimal) decimal.Decimal {
	if amount.Valid {
		return amount.Decimal
	}
	return decimal.Zero
}

func buildDiscrepancies(ledger []domain.LedgerEntry, external []domain.ExternalEntry) []domain.Discrepancy {
	discrepancies := make([]domain.Discrepancy, 0, len(ledger)+len(external))

	for i := range external {
		e := external[i]
		discrepancies = append(discrepancies, domain.Discrepancy{
			Type:             domain.DiscrepancyUnmatchedBank,
			Severity:         severityFor(e.Amount),
			Amount:           amountOrZero(e.Amount),
			Description:      fmt.Sprintf("external entry %q has no ledger counterpart", e.TransactionID),
			ExternalEntry:    &e,
			SuggestedActions: append([]string(nil), unmatchedBankActions...),
		})
	}
	for i := range ledger {
		e := ledger[i]
		discrepancies = append(discrepancies, domain.Discrepancy{
			Type:             domain.DiscrepancyUnmatchedGL,
			Severity:         severityFor(e.Amount),
			Amount:           amountOrZero(e.Amount),
			Description:      fmt.Sprintf("ledger entry %q has no external counterpart", e.ID),
			LedgerEntry:      &e,
			SuggestedActions: append([]string(nil), unmatchedLedgerActions...),
		})
	}

	return discrepancies
}

func summarize(ledgerCount int, external []domain.ExternalEntry, result *domain.ReconciliationResult, currentLedgerBalance float64) domain.ReconciliationSummary {
	s := domain.ReconciliationSummary{
		TotalLedgerEntries:     ledgerCount,
		TotalExternalEntries:   len(external),
		MatchedCount:           len(result.Matches),
		UnmatchedLedgerCount:   len(result.UnmatchedLedger),
		UnmatchedExternalCount: len(result.UnmatchedExternal),
		LedgerBalance:          decimal.NewFromFloat(currentLedgerBalance),
	}

	var confidence float64
	for _, match := range result.Matches {
		confidence += match.Confidence
		switch match.MatchType {
		case domain.MatchTypeExact:
			s.ExactMatches++
		case domain.MatchTypeFuzzy:
			s.FuzzyMatches++
		default:
			s.PartialMatches++
		}
	}
	if s.MatchedCount > 0 {
		s.AverageConfidence = confidence / float64(s.MatchedCount)
	}
	if denominator := max(ledgerCount, len(external)); denominator > 0 {
		s.MatchRate = float64(s.MatchedCount) / float64(denominator)
	}

	for _, e := range external {
		s.ExternalBalance = s.ExternalBalance.Add(amountOrZero(e.Amount))
	}
	s.Difference = s.ExternalBalance.Sub(s.LedgerBalance)
	s.IsBalanced = s.Difference.Abs().LessThanOrEqual(balanceTolerance)

	for _, e := range result.UnmatchedLedger {
		s.UnmatchedLedgerAmount = s.UnmatchedLedgerAmount.Add(amountOrZero(e.Amount))
	}
	for _, e := range result.UnmatchedExternal {
		s.UnmatchedExternalAmount = s.UnmatchedExternalAmount.Add(amountOrZero(e.Amount))
	}

	return s
}

func recommend(result *domain.ReconciliationResult, opts Options) []string {
	s := result.Summary
	recs := make([]string, 0)

	if s.UnmatchedExternalCount > 0 {
		recs = append(recs, fmt.Sprintf("Review %d unmatched external entries for missing ledger postings", s.UnmatchedExternalCount))
	}
	if s.UnmatchedLedgerCount > 0 {
		recs = append(recs, fmt.Sprintf("Review %d unmatched ledger entries for outstanding items", s.UnmatchedLedgerCount))
	}
	if s.UnmatchedExternalCount > 0 || s.UnmatchedLedgerCount > 0 {
		recs = append(recs, fmt.Sprintf("Check postings within %d days of the period boundary for timing differences", opts.DateTolerance()))
	}
	if s.PartialMatches > 0 {
		recs = append(recs, fmt.Sprintf("Manually confirm %d partial matches with confidence at or below 0.85", s.PartialMatches))
	}
	if !s.IsBalanced {
		recs = append(recs, fmt.Sprintf("Investigate balance difference of %s between external records and the ledger", s.Difference.StringFixed(2)))
	}
	if len(recs) == 0 {
		recs = append(recs, "All entries reconciled; no action required")
	}

	return recs
}
