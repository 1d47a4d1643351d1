package distance

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// baseTableSize covers Latin-1, Latin Extended-A and Latin Extended-B,
// which holds every Romanian letter including ș (U+0219) and ț (U+021B).
const baseTableSize = 0x250

// baseTable caches baseLetter for the Latin ranges. Zero means "no single
// base letter". Written once in init, read-only afterwards.
var baseTable [baseTableSize]rune

var stripMarks = runes.Remove(runes.In(unicode.Mn))

func init() {
	for r := rune(0); r < baseTableSize; r++ {
		if b, ok := decomposeBase(r); ok {
			baseTable[r] = b
		}
	}
}

// decomposeBase applies canonical decomposition to r and strips nonspacing
// marks. It reports the remaining rune when exactly one letter is left.
func decomposeBase(r rune) (rune, bool) {
	stripped, _, err := transform.String(stripMarks, norm.NFD.String(string(r)))
	if err != nil || utf8.RuneCountInString(stripped) != 1 {
		return 0, false
	}
	base, _ := utf8.DecodeRuneInString(stripped)
	if !unicode.IsLetter(base) {
		return 0, false
	}
	return base, true
}

// BaseLetter returns the single base letter r reduces to once its combining
// marks are removed, e.g. 'ș' -> 's', 'â' -> 'a', 'x' -> 'x'.
func BaseLetter(r rune) (rune, bool) {
	if r >= 0 && r < baseTableSize {
		b := baseTable[r]
		return b, b != 0
	}
	return decomposeBase(r)
}

// IsDiacriticVariant reports whether a and b are different characters that
// share the same base letter (s/ș, a/ă, a/â, ă/â, ş/ș).
func IsDiacriticVariant(a, b rune) bool {
	if a == b {
		return false
	}
	// two plain ASCII letters never share a base
	if a < utf8.RuneSelf && b < utf8.RuneSelf {
		return false
	}
	ba, ok := BaseLetter(a)
	if !ok {
		return false
	}
	bb, ok := BaseLetter(b)
	return ok && ba == bb
}
