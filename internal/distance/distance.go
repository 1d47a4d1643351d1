// Package distance implements a diacritic-aware edit distance for Romanian
// text.
//
// The metric is the classic Levenshtein dynamic program with a non-uniform
// substitution cost: replacing a letter with a diacritic variant of the same
// base letter (s/ș, t/ț, a/ă/â, i/î) costs DiacriticCost (0.25 by default)
// instead of a full substitution. Insertions and deletions cost IndelCost.
//
// Inputs are NFC-normalised first so a decomposed "s"+U+0326 compares as the
// single letter ș. All functions are pure and safe for concurrent use.
package distance

import (
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
	"golang.org/x/text/unicode/norm"

	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// Default costs
const (
	DefaultSubstitutionCost = 1.0
	DefaultDiacriticCost    = 0.25
	DefaultIndelCost        = 1.0
)

// Metric holds the cost model of the edit distance.
type Metric struct {
	SubstitutionCost float64
	DiacriticCost    float64
	IndelCost        float64
}

// Default is the metric used by the package-level Distance.
var Default = Metric{
	SubstitutionCost: DefaultSubstitutionCost,
	DiacriticCost:    DefaultDiacriticCost,
	IndelCost:        DefaultIndelCost,
}

// Distance computes the diacritic-aware edit distance with the default costs.
func Distance(a, b string) (float64, error) {
	return Default.Distance(a, b)
}

// Distance computes the diacritic-aware edit distance between a and b.
// Both arguments must be valid UTF-8.
func (m Metric) Distance(a, b string) (float64, error) {
	if !utf8.ValidString(a) {
		return 0, rolexerrors.NewInvalidArgumentError("distance", "a", "not valid UTF-8 text")
	}
	if !utf8.ValidString(b) {
		return 0, rolexerrors.NewInvalidArgumentError("distance", "b", "not valid UTF-8 text")
	}
	return m.DistanceRunes(Runes(a), Runes(b)), nil
}

// Runes NFC-normalises s and returns its runes, ready for DistanceRunes.
func Runes(s string) []rune {
	return []rune(norm.NFC.String(s))
}

// DistanceRunes is the allocation-light core used by callers that already
// hold normalised rune slices. Memory is two rows over the shorter input.
func (m Metric) DistanceRunes(a, b []rune) float64 {
	// the cost model is symmetric, so keep b as the shorter side
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return float64(len(a)) * m.IndelCost
	}

	prev := make([]float64, len(b)+1)
	curr := make([]float64, len(b)+1)
	for j := range prev {
		prev[j] = float64(j) * m.IndelCost
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = float64(i) * m.IndelCost
		for j := 1; j <= len(b); j++ {
			best := prev[j-1] + m.substitution(a[i-1], b[j-1])
			if del := prev[j] + m.IndelCost; del < best {
				best = del
			}
			if ins := curr[j-1] + m.IndelCost; ins < best {
				best = ins
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func (m Metric) substitution(x, y rune) float64 {
	switch {
	case x == y:
		return 0
	case IsDiacriticVariant(x, y):
		return m.DiacriticCost
	default:
		return m.SubstitutionCost
	}
}

// Levenshtein returns the plain integer edit distance (every edit costs 1),
// counted in runes of the NFC forms of a and b.
func Levenshtein(a, b string) int {
	return edlib.LevenshteinDistance(norm.NFC.String(a), norm.NFC.String(b))
}
