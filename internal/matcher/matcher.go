// Package matcher reconciles ledger entries against external (bank-side) entries.
//
// Every ledger entry is scored against every remaining external entry with a weighted
// composite of amount, date, description and reference similarity. Pairs are accepted in two
// stages:
//   - at selection time a pair must exceed MinCandidateScore (0.7 by default)
//   - after assignment a match must reach the MatchingMode threshold or it is demoted back
//     to the unmatched pools
//
// Entries left unmatched become discrepancies. The package performs no I/O and keeps no
// state between calls, so a Matcher may be shared by concurrent callers.
//
// Example usage:
//
//	m, err := matcher.New(matcher.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	result, err := m.Reconcile(ledger, external, currentBalance)
package matcher

import (
	"math"

	"github.com/google/uuid"

	"gl-reconciliation/internal/domain"
)

// Matcher runs reconciliations with a fixed set of options.
type Matcher struct {
	opts Options
}

// New validates opts and returns a Matcher. Zero-valued option fields take their defaults.
func New(opts Options) (*Matcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{opts: opts.withDefaults()}, nil
}

// Options returns the effective options, with defaults applied.
func (m *Matcher) Options() Options {
	return m.opts
}

// Reconcile is a convenience for New(opts) followed by Matcher.Reconcile.
func Reconcile(ledger []domain.LedgerEntry, external []domain.ExternalEntry, currentLedgerBalance float64, opts Options) (*domain.ReconciliationResult, error) {
	m, err := New(opts)
	if err != nil {
		return nil, err
	}
	return m.Reconcile(ledger, external, currentLedgerBalance)
}

// pair is a proposed assignment by input index.
type pair struct {
	ledger   int
	external int
	score    float64
}

// Reconcile matches ledger against external and reports discrepancies and a summary.
// Nil slices are treated as empty. Inputs are never modified.
func (m *Matcher) Reconcile(ledger []domain.LedgerEntry, external []domain.ExternalEntry, currentLedgerBalance float64) (*domain.ReconciliationResult, error) {
	if math.IsNaN(currentLedgerBalance) || math.IsInf(currentLedgerBalance, 0) {
		return nil, domain.NewInvalidInputError("currentLedgerBalance", "must be finite, got %v", currentLedgerBalance)
	}

	ledgerRecords := make([]record, len(ledger))
	for i, e := range ledger {
		ledgerRecords[i] = ledgerRecord(e)
	}
	externalRecords := make([]record, len(external))
	for i, e := range external {
		externalRecords[i] = externalRecord(e)
	}

	var pairs []pair
	switch m.opts.Strategy {
	case StrategyOptimal:
		pairs = assignOptimal(ledgerRecords, externalRecords, m.opts.CandidateFloor())
	default:
		pairs = assignGreedy(ledgerRecords, externalRecords, m.opts.CandidateFloor())
	}

	threshold, _ := m.opts.MatchingMode.Threshold()

	matchedLedger := make([]bool, len(ledger))
	matchedExternal := make([]bool, len(external))
	matches := make([]domain.MatchResult, 0, len(pairs))

	for _, p := range pairs {
		if p.score < threshold {
			// Passed the floor but not the mode threshold; both sides stay unmatched.
			continue
		}
		matchedLedger[p.ledger] = true
		matchedExternal[p.external] = true
		matches = append(matches, domain.MatchResult{
			MatchID:       uuid.NewString(),
			MatchType:     Classify(p.score),
			Confidence:    p.score,
			LedgerEntry:   ledger[p.ledger],
			ExternalEntry: external[p.external],
			Criteria:      criteria(ledgerRecords[p.ledger], externalRecords[p.external]),
		})
	}

	unmatchedLedger := make([]domain.LedgerEntry, 0)
	for i, e := range ledger {
		if !matchedLedger[i] {
			unmatchedLedger = append(unmatchedLedger, e)
		}
	}
	unmatchedExternal := make([]domain.ExternalEntry, 0)
	for i, e := range external {
		if !matchedExternal[i] {
			unmatchedExternal = append(unmatchedExternal, e)
		}
	}

	result := &domain.ReconciliationResult{
		Matches:           matches,
		UnmatchedLedger:   unmatchedLedger,
		UnmatchedExternal: unmatchedExternal,
		Discrepancies:     buildDiscrepancies(unmatchedLedger, unmatchedExternal),
	}
	result.Summary = summarize(len(ledger), external, result, currentLedgerBalance)
	result.Recommendations = recommend(result, m.opts)

	return result, nil
}

// assignGreedy walks ledger entries in input order and takes the highest-scoring remaining
// external entry above floor. On an exact tie the first external entry scanned wins.
func assignGreedy(ledger, external []record, floor float64) []pair {
	taken := make([]bool, len(external))
	var pairs []pair

	for i := range ledger {
		best := -1
		var bestScore float64

		for j := range external {
			if taken[j] {
				continue
			}
			score := compositeScore(ledger[i], external[j])
			if score <= floor {
				continue
			}
			if best < 0 || score > bestScore {
				best = j
				bestScore = score
			}
		}

		if best >= 0 {
			taken[best] = true
			pairs = append(pairs, pair{ledger: i, external: best, score: bestScore})
		}
	}

	return pairs
}
