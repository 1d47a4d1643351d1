// Package dictionary provides approximate lookup of known Romanian word forms.
//
// A Dictionary is built once from a deduplicated vocabulary. Lookup runs in
// two stages:
//
//  1. Coarse filter - a symmetric-delete index enumerates every vocabulary
//     entry within the requested plain (integer) edit distance. The largest
//     distance the index can answer is fixed when it is built
//     (Options.MaxEditDistance).
//  2. Re-ranking - each candidate is re-scored with the diacritic-aware
//     metric from package distance and dropped when it exceeds the
//     diacritic threshold. Survivors are ordered by that score, ties broken
//     lexicographically.
//
// A Dictionary is immutable once built and safe for concurrent lookups.
package dictionary

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/standardbeagle/rolex/internal/debug"
	"github.com/standardbeagle/rolex/internal/distance"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// Defaults match the settings the correction service has always run with.
const (
	DefaultMaxEditDistance    = 2
	DefaultPrefixLength       = 7
	DefaultDiacriticThreshold = 1.0
	DefaultMaxResults         = 5
)

// Options configures dictionary construction and re-ranking.
type Options struct {
	// MaxEditDistance is the largest plain edit distance the coarse index
	// supports. Lookups may ask for less, never for more.
	MaxEditDistance int

	// PrefixLength limits how many leading runes of each word are indexed.
	// It must exceed MaxEditDistance.
	PrefixLength int

	// DiacriticThreshold discards candidates whose diacritic-aware distance
	// is above it.
	DiacriticThreshold float64

	// Metric scores candidates in the re-ranking stage.
	Metric distance.Metric
}

// DefaultOptions returns the standard construction options
func DefaultOptions() Options {
	return Options{
		MaxEditDistance:    DefaultMaxEditDistance,
		PrefixLength:       DefaultPrefixLength,
		DiacriticThreshold: DefaultDiacriticThreshold,
		Metric:             distance.Default,
	}
}

// Validate checks that the options describe a buildable index
func (o Options) Validate() error {
	if o.MaxEditDistance < 0 {
		return fmt.Errorf("max edit distance must not be negative, got %d", o.MaxEditDistance)
	}
	if o.PrefixLength <= o.MaxEditDistance {
		return fmt.Errorf("prefix length (%d) must exceed max edit distance (%d)", o.PrefixLength, o.MaxEditDistance)
	}
	if o.DiacriticThreshold < 0 {
		return fmt.Errorf("diacritic threshold must not be negative, got %v", o.DiacriticThreshold)
	}
	return nil
}

// Suggestion is one ranked lookup result
type Suggestion struct {
	Term          string  `json:"term"`
	Distance      float64 `json:"distance"`
	PlainDistance int     `json:"plain_distance"`
}

// Lookuper is satisfied by Dictionary and CachedDictionary
type Lookuper interface {
	Lookup(word string, maxEditDistance, maxResults int) ([]Suggestion, error)
}

// Dictionary is an immutable fuzzy index over a vocabulary.
type Dictionary struct {
	opts   Options
	words  []string
	runes  [][]rune
	byTerm map[string]int32
	index  *deleteIndex
}

// New builds a dictionary from words. Words are NFC-normalised and
// deduplicated; blank and invalid UTF-8 entries are ignored.
func New(words []string, opts Options) (*Dictionary, error) {
	if err := opts.Validate(); err != nil {
		return nil, rolexerrors.NewConfigError("dictionary", "", err)
	}

	d := &Dictionary{
		opts:   opts,
		byTerm: make(map[string]int32, len(words)),
		index:  newDeleteIndex(opts.MaxEditDistance, opts.PrefixLength),
	}
	for _, w := range words {
		if w == "" || !utf8.ValidString(w) {
			continue
		}
		w = norm.NFC.String(w)
		if _, dup := d.byTerm[w]; dup {
			continue
		}
		id := int32(len(d.words))
		r := []rune(w)
		d.words = append(d.words, w)
		d.runes = append(d.runes, r)
		d.byTerm[w] = id
		d.index.add(id, r)
	}
	if len(d.words) == 0 {
		return nil, rolexerrors.NewCorpusError("vocabulary", "", rolexerrors.ErrEmptyCorpus)
	}

	debug.LogLoad("dictionary built: %d words, %d delete keys", len(d.words), d.index.size())
	return d, nil
}

// Lookup returns vocabulary entries close to word, best first. Candidates
// come from the coarse index within maxEditDistance plain edits and are kept
// when their diacritic-aware distance is within the configured threshold.
// If word itself is known it is returned first with distance 0.
//
// No match yields an empty slice. maxEditDistance beyond the index bound,
// a negative distance or invalid UTF-8 input are invalid arguments.
func (d *Dictionary) Lookup(word string, maxEditDistance, maxResults int) ([]Suggestion, error) {
	if maxEditDistance < 0 || maxEditDistance > d.opts.MaxEditDistance {
		return nil, rolexerrors.NewInvalidArgumentError("lookup", "maxEditDistance",
			fmt.Sprintf("%d is outside the index bound 0..%d", maxEditDistance, d.opts.MaxEditDistance))
	}
	if !utf8.ValidString(word) {
		return nil, rolexerrors.NewInvalidArgumentError("lookup", "word", "not valid UTF-8 text")
	}
	if maxResults <= 0 || word == "" {
		return []Suggestion{}, nil
	}

	word = norm.NFC.String(word)
	query := []rune(word)

	results := make([]Suggestion, 0, maxResults)
	for _, id := range d.index.candidates(query, maxEditDistance) {
		cand := d.runes[id]
		if abs(len(cand)-len(query)) > maxEditDistance {
			continue
		}
		plain := distance.Levenshtein(word, d.words[id])
		if plain > maxEditDistance {
			continue
		}
		score := d.opts.Metric.DistanceRunes(query, cand)
		if score > d.opts.DiacriticThreshold {
			continue
		}
		results = append(results, Suggestion{Term: d.words[id], Distance: score, PlainDistance: plain})
	}

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Term == word) != (b.Term == word) {
			return a.Term == word
		}
		if a.Distance != b.Distance {
			return a.Distance < b.Distance
		}
		return a.Term < b.Term
	})

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	debug.LogLookup("lookup %q (max %d): %d suggestions", word, maxEditDistance, len(results))
	return results, nil
}

// Contains reports whether word is in the vocabulary
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.byTerm[norm.NFC.String(word)]
	return ok
}

// Size returns the number of distinct vocabulary entries
func (d *Dictionary) Size() int {
	return len(d.words)
}

// DeleteKeys returns the number of distinct keys in the coarse index
func (d *Dictionary) DeleteKeys() int {
	return d.index.size()
}

// Options returns the construction options
func (d *Dictionary) Options() Options {
	return d.opts
}

// Terms projects suggestions onto their terms
func Terms(suggestions []Suggestion) []string {
	out := make([]string, len(suggestions))
	for i, s := range suggestions {
		out[i] = s.Term
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
