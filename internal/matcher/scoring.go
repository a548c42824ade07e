package matcher

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"gl-reconciliation/internal/domain"
)

// Composite weights; they sum to 1.
const (
	WeightAmount      = 0.4
	WeightDate        = 0.3
	WeightDescription = 0.2
	WeightReference   = 0.1
)

// neutralReferenceScore is used when either side has no reference.
const neutralReferenceScore = 0.5

var (
	weightAmount      = decimal.NewFromFloat(WeightAmount)
	weightDate        = decimal.NewFromFloat(WeightDate)
	weightDescription = decimal.NewFromFloat(WeightDescription)
	weightReference   = decimal.NewFromFloat(WeightReference)
)

var (
	one          = decimal.NewFromInt(1)
	pctExact     = decimal.RequireFromString("0.01")
	pctClose     = decimal.RequireFromString("0.05")
	pctNear      = decimal.RequireFromString("0.10")
	day          = 24 * time.Hour
	criteriaDays = 7.0
)

// record is the shape both entry kinds share for scoring.
type record struct {
	date        time.Time
	amount      decimal.NullDecimal
	description string
	reference   string
}

func ledgerRecord(e domain.LedgerEntry) record {
	return record{date: e.Date, amount: e.Amount, description: e.Description, reference: e.Reference}
}

func externalRecord(e domain.ExternalEntry) record {
	return record{date: e.Date, amount: e.Amount, description: e.Description, reference: e.Reference}
}

// pctDiff is |a - b| / max(|a|, 1), where a is the ledger amount.
func pctDiff(ledger, external decimal.NullDecimal) (decimal.Decimal, bool) {
	if !ledger.Valid || !external.Valid {
		return decimal.Zero, false
	}
	base := decimal.Max(ledger.Decimal.Abs(), one)
	return ledger.Decimal.Sub(external.Decimal).Abs().Div(base), true
}

// daysBetween is the whole-day distance between the calendar dates of a and b.
func daysBetween(a, b time.Time) (int, bool) {
	if a.IsZero() || b.IsZero() {
		return 0, false
	}
	d := domain.DateOf(a).Sub(domain.DateOf(b))
	if d < 0 {
		d = -d
	}
	return int(d / day), true
}

// AmountScore is the step sub-score for the amount dimension.
func AmountScore(ledger, external decimal.NullDecimal) float64 {
	pct, ok := pctDiff(ledger, external)
	if !ok {
		return 0
	}
	switch {
	case pct.LessThan(pctExact):
		return 1.0
	case pct.LessThan(pctClose):
		return 0.8
	case pct.LessThan(pctNear):
		return 0.5
	}
	return 0
}

// DateScore is the step sub-score for the date dimension.
func DateScore(ledger, external time.Time) float64 {
	days, ok := daysBetween(ledger, external)
	if !ok {
		return 0
	}
	switch {
	case days == 0:
		return 1.0
	case days <= 1:
		return 0.8
	case days <= 3:
		return 0.6
	case days <= 7:
		return 0.3
	}
	return 0
}

// ReferenceScore compares references, or returns the neutral score when either is missing.
func ReferenceScore(ledger, external string) float64 {
	if ledger == "" || external == "" {
		return neutralReferenceScore
	}
	return Similarity(ledger, external)
}

// CompositeScore is the weighted score used to accept or reject a pair. Always within [0, 1].
func CompositeScore(l domain.LedgerEntry, e domain.ExternalEntry) float64 {
	return compositeScore(ledgerRecord(l), externalRecord(e))
}

// compositeScore sums in decimal so that boundary scores such as 0.7 and 1.0 come out exact.
func compositeScore(l, e record) float64 {
	score := weightAmount.Mul(decimal.NewFromFloat(AmountScore(l.amount, e.amount))).
		Add(weightDate.Mul(decimal.NewFromFloat(DateScore(l.date, e.date)))).
		Add(weightDescription.Mul(decimal.NewFromFloat(Similarity(l.description, e.description)))).
		Add(weightReference.Mul(decimal.NewFromFloat(ReferenceScore(l.reference, e.reference))))
	return clamp01(score.InexactFloat64())
}

// Criteria is the reporting breakdown of a pair. It uses continuous formulas for amount and
// date and must not be used for acceptance.
func Criteria(l domain.LedgerEntry, e domain.ExternalEntry) domain.MatchCriteria {
	return criteria(ledgerRecord(l), externalRecord(e))
}

func criteria(l, e record) domain.MatchCriteria {
	var c domain.MatchCriteria

	if pct, ok := pctDiff(l.amount, e.amount); ok {
		c.AmountMatch = 1 - decimal.Min(pct, one).InexactFloat64()
	}
	if days, ok := daysBetween(l.date, e.date); ok {
		c.DateMatch = math.Max(0, 1-float64(days)/criteriaDays)
	}
	c.DescriptionMatch = Similarity(l.description, e.description)
	c.ReferenceMatch = ReferenceScore(l.reference, e.reference)
	c.PatternMatch = (c.AmountMatch + c.DateMatch + c.DescriptionMatch) / 3
	return c
}

// Classify maps a composite score to its match type.
func Classify(score float64) domain.MatchType {
	switch {
	case score > 0.95:
		return domain.MatchTypeExact
	case score > 0.85:
		return domain.MatchTypeFuzzy
	}
	return domain.MatchTypePartial
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
