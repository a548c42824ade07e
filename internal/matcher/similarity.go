package matcher

import (
	"strings"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// editOptions is classic Levenshtein: unit cost for insert, delete and substitute.
var editOptions = levenshtein.Options{
	InsCost: 1,
	DelCost: 1,
	SubCost: 1,
	Matches: levenshtein.IdenticalRunes,
}

// Similarity returns (maxLen - distance) / maxLen over the lowercased strings, measured in runes.
// It returns 0 when either string is empty.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	distance := levenshtein.DistanceForStrings(ra, rb, editOptions)
	return float64(maxLen-distance) / float64(maxLen)
}
