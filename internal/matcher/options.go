package matcher

import (
	"math"

	"gl-reconciliation/internal/domain"
)

// MatchingMode selects the confidence a match needs to survive into the final result.
type MatchingMode string

const (
	ModeStrict     MatchingMode = "strict"
	ModeStandard   MatchingMode = "standard"
	ModeFuzzy      MatchingMode = "fuzzy"
	ModeAggressive MatchingMode = "aggressive"
)

// Threshold returns the mode threshold applied after matching, and false for an unknown mode.
func (m MatchingMode) Threshold() (float64, bool) {
	switch m {
	case ModeStrict:
		return 0.9, true
	case ModeStandard:
		return 0.7, true
	case ModeFuzzy:
		return 0.6, true
	case ModeAggressive:
		return 0.5, true
	}
	return 0, false
}

// Strategy selects how candidate pairs are assigned.
type Strategy string

const (
	// StrategyGreedy takes, for each ledger entry in input order, the best remaining
	// external entry. Earlier ledger entries may consume a partner a later entry would
	// have scored higher with; there is no backtracking.
	StrategyGreedy Strategy = "greedy"
	// StrategyOptimal maximizes the summed composite score over all eligible pairs.
	StrategyOptimal Strategy = "optimal"
)

const (
	// DefaultMinCandidateScore is the hard floor a pair must exceed to be proposed at all.
	// It is independent of the mode threshold.
	DefaultMinCandidateScore = 0.7
	DefaultDateToleranceDays = 3
	DefaultMatchingMode      = ModeStandard
	DefaultStrategy          = StrategyGreedy
)

// Options tunes one reconciliation run. Empty strings and nil pointers fall back to the
// defaults; a pointer to zero is an explicit zero.
type Options struct {
	MatchingMode      MatchingMode `json:"matchingMode,omitempty" yaml:"matching_mode"`
	DateToleranceDays *int         `json:"dateToleranceDays,omitempty" yaml:"date_tolerance_days"`
	MinCandidateScore *float64     `json:"minCandidateScore,omitempty" yaml:"min_candidate_score"`
	Strategy          Strategy     `json:"strategy,omitempty" yaml:"strategy"`
}

// Days returns a pointer to n, for Options.DateToleranceDays.
func Days(n int) *int { return &n }

// Score returns a pointer to v, for Options.MinCandidateScore.
func Score(v float64) *float64 { return &v }

// DefaultOptions returns the standard-mode greedy configuration.
func DefaultOptions() Options {
	return Options{
		MatchingMode:      DefaultMatchingMode,
		DateToleranceDays: Days(DefaultDateToleranceDays),
		MinCandidateScore: Score(DefaultMinCandidateScore),
		Strategy:          DefaultStrategy,
	}
}

// DateTolerance returns the date tolerance in days, or the default when unset.
func (o Options) DateTolerance() int {
	if o.DateToleranceDays == nil {
		return DefaultDateToleranceDays
	}
	return *o.DateToleranceDays
}

// CandidateFloor returns the score a pair must exceed, or the default when unset.
func (o Options) CandidateFloor() float64 {
	if o.MinCandidateScore == nil {
		return DefaultMinCandidateScore
	}
	return *o.MinCandidateScore
}

func (o Options) withDefaults() Options {
	if o.MatchingMode == "" {
		o.MatchingMode = DefaultMatchingMode
	}
	if o.DateToleranceDays == nil {
		o.DateToleranceDays = Days(DefaultDateToleranceDays)
	}
	if o.MinCandidateScore == nil {
		o.MinCandidateScore = Score(DefaultMinCandidateScore)
	}
	if o.Strategy == "" {
		o.Strategy = DefaultStrategy
	}
	return o
}

// Validate checks the options after defaults have been applied.
func (o Options) Validate() error {
	o = o.withDefaults()
	if _, ok := o.MatchingMode.Threshold(); !ok {
		return domain.NewInvalidInputError("matchingMode", "unknown mode %q", o.MatchingMode)
	}
	if o.Strategy != StrategyGreedy && o.Strategy != StrategyOptimal {
		return domain.NewInvalidInputError("strategy", "unknown strategy %q", o.Strategy)
	}
	if days := o.DateTolerance(); days < 0 {
		return domain.NewInvalidInputError("dateToleranceDays", "must not be negative, got %d", days)
	}
	if floor := o.CandidateFloor(); math.IsNaN(floor) || floor < 0 || floor > 1 {
		return domain.NewInvalidInputError("minCandidateScore", "must be within [0, 1], got %v", floor)
	}
	return nil
}
