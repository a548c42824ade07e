package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayouts are the accepted textual date forms, tried in order.
var DateLayouts = []string{time.DateOnly, time.RFC3339, time.RFC3339Nano}

// ParseDate parses s with DateLayouts. It returns the zero time and false when s is empty
// or matches no layout.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// ParseAmount parses a decimal amount. Thousands separators are not accepted.
func ParseAmount(s string) (decimal.NullDecimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return InvalidAmount(), false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return InvalidAmount(), false
	}
	return decimal.NewNullDecimal(d), true
}
