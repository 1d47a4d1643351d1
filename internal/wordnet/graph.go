// Package wordnet holds the lexical graph: synsets, their literals and the
// hypernym edges between them, built once from a static synset corpus.
//
// All relations are one hop. Synonyms are the other literals of every
// synset containing a word; hypernyms are the literals of the synsets those
// synsets point to; hyponyms are the literals of the synsets that point at
// them. Lookups of unknown words return empty slices.
//
// A Graph is immutable after Build and safe for concurrent use.
package wordnet

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/standardbeagle/rolex/internal/corpus"
	"github.com/standardbeagle/rolex/internal/debug"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// Synset is one sense: an identifier, its literals in corpus order and the
// identifiers of its direct hypernyms.
type Synset struct {
	ID        string
	Literals  []string
	Hypernyms []string
}

// Graph is the immutable synonym/hypernym/hyponym index.
type Graph struct {
	synsets   map[string]*Synset
	ids       []string            // corpus order
	byLiteral map[string][]string // literal -> synset ids
	hyponyms  map[string][]string // hypernym id -> ids of synsets pointing at it
	edges     int
}

// Build validates records and assembles the graph. Records without an
// identifier or without a usable literal, duplicate identifiers and
// hypernym edges to unknown synsets are skipped and reported. Build fails
// only when no synset survives.
func Build(records []Synset, report *corpus.Report) (*Graph, error) {
	if report == nil {
		report = corpus.NewReport(corpus.Synsets)
	}
	source := strings.Join(report.Paths, ", ")

	g := &Graph{
		synsets:   make(map[string]*Synset, len(records)),
		byLiteral: make(map[string][]string),
		hyponyms:  make(map[string][]string),
	}

	for i, rec := range records {
		report.Records++
		id := strings.TrimSpace(rec.ID)
		if id == "" {
			report.Skip(rolexerrors.NewRecordError(corpus.Synsets, source, 0, fmt.Sprintf("#%d", i+1),
				errors.New("missing identifier")))
			continue
		}
		if _, dup := g.synsets[id]; dup {
			report.Duplicates++
			report.Skip(rolexerrors.NewRecordError(corpus.Synsets, source, 0, id, errors.New("duplicate identifier")))
			continue
		}
		literals := cleanLiterals(rec.Literals)
		if len(literals) == 0 {
			report.Skip(rolexerrors.NewRecordError(corpus.Synsets, source, 0, id, errors.New("missing literal")))
			continue
		}

		s := &Synset{ID: id, Literals: literals}
		for _, h := range rec.Hypernyms {
			if h = strings.TrimSpace(h); h != "" {
				s.Hypernyms = append(s.Hypernyms, h)
			}
		}
		g.synsets[id] = s
		g.ids = append(g.ids, id)
		for _, lit := range literals {
			g.byLiteral[lit] = append(g.byLiteral[lit], id)
		}
		report.Accepted++
	}

	if len(g.synsets) == 0 {
		return nil, rolexerrors.NewCorpusError(corpus.Synsets, source, rolexerrors.ErrEmptyCorpus)
	}

	// Edges are resolved once every identifier is known.
	for _, id := range g.ids {
		s := g.synsets[id]
		kept := s.Hypernyms[:0]
		seen := make(map[string]bool, len(s.Hypernyms))
		for _, target := range s.Hypernyms {
			switch {
			case seen[target]:
				continue
			case target == id:
				report.Skip(rolexerrors.NewRecordError(corpus.Synsets, source, 0, id,
					errors.New("hypernym edge to itself dropped")))
				continue
			case g.synsets[target] == nil:
				report.Skip(rolexerrors.NewRecordError(corpus.Synsets, source, 0, id,
					fmt.Errorf("dangling hypernym edge to %s dropped", target)))
				continue
			}
			seen[target] = true
			kept = append(kept, target)
			g.hyponyms[target] = append(g.hyponyms[target], id)
			g.edges++
		}
		s.Hypernyms = kept
	}

	debug.LogLoad("lexical graph built: %d synsets, %d literals, %d hypernym edges",
		len(g.synsets), len(g.byLiteral), g.edges)
	return g, nil
}

func cleanLiterals(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]bool, len(in))
	for _, lit := range in {
		lit = norm.NFC.String(strings.TrimSpace(lit))
		if lit == "" || seen[lit] {
			continue
		}
		seen[lit] = true
		out = append(out, lit)
	}
	return out
}

// Synonyms returns the other literals of every synset containing word,
// deduplicated and sorted.
func (g *Graph) Synonyms(word string) []string {
	word = norm.NFC.String(word)
	out := newLiteralSet()
	for _, id := range g.byLiteral[word] {
		out.addExcept(g.synsets[id].Literals, word)
	}
	return out.sorted()
}

// Hypernyms returns the literals of every synset one hypernym edge above a
// synset containing word, deduplicated and sorted.
func (g *Graph) Hypernyms(word string) []string {
	word = norm.NFC.String(word)
	out := newLiteralSet()
	for _, id := range g.byLiteral[word] {
		for _, target := range g.synsets[id].Hypernyms {
			out.addExcept(g.synsets[target].Literals, "")
		}
	}
	return out.sorted()
}

// Hyponyms returns the literals of every synset whose hypernym edges point
// at a synset containing word, deduplicated and sorted.
func (g *Graph) Hyponyms(word string) []string {
	word = norm.NFC.String(word)
	out := newLiteralSet()
	for _, id := range g.HyponymSynsets(word) {
		out.addExcept(g.synsets[id].Literals, "")
	}
	return out.sorted()
}

// SynsetsOf returns the identifiers of the synsets containing word
func (g *Graph) SynsetsOf(word string) []string {
	ids := g.byLiteral[norm.NFC.String(word)]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// HyponymSynsets returns the identifiers of the synsets that name a synset
// containing word as a direct hypernym, sorted.
func (g *Graph) HyponymSynsets(word string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, target := range g.byLiteral[norm.NFC.String(word)] {
		for _, id := range g.hyponyms[target] {
			if !seen[id] {
				seen[id] = true
				out = append(out, id)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Synset returns a copy of the synset with the given identifier
func (g *Graph) Synset(id string) (Synset, bool) {
	s, ok := g.synsets[id]
	if !ok {
		return Synset{}, false
	}
	return Synset{
		ID:        s.ID,
		Literals:  append([]string(nil), s.Literals...),
		Hypernyms: append([]string(nil), s.Hypernyms...),
	}, true
}

// Len returns the number of synsets
func (g *Graph) Len() int {
	return len(g.synsets)
}

// LiteralCount returns the number of distinct literals
func (g *Graph) LiteralCount() int {
	return len(g.byLiteral)
}

// EdgeCount returns the number of hypernym edges
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Verify re-checks the construction invariants: every literal of every
// synset is indexed to it, every edge targets a known synset, and the
// hyponym index is exactly the inverse of the hypernym edges.
func (g *Graph) Verify() error {
	var errs []error
	inverse := 0
	for _, id := range g.ids {
		s := g.synsets[id]
		for _, lit := range s.Literals {
			if !containsString(g.byLiteral[lit], id) {
				errs = append(errs, fmt.Errorf("literal %q of %s is not indexed", lit, id))
			}
		}
		for _, target := range s.Hypernyms {
			if g.synsets[target] == nil {
				errs = append(errs, fmt.Errorf("%s has an edge to unknown synset %s", id, target))
				continue
			}
			if !containsString(g.hyponyms[target], id) {
				errs = append(errs, fmt.Errorf("edge %s -> %s missing from the hyponym index", id, target))
			}
		}
	}
	for target, sources := range g.hyponyms {
		for _, id := range sources {
			inverse++
			s := g.synsets[id]
			if s == nil || !containsString(s.Hypernyms, target) {
				errs = append(errs, fmt.Errorf("hyponym entry %s <- %s has no matching hypernym edge", target, id))
			}
		}
	}
	if inverse != g.edges {
		errs = append(errs, fmt.Errorf("hyponym index holds %d entries for %d edges", inverse, g.edges))
	}
	return rolexerrors.NewMultiError(errs).ErrorOrNil()
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// literalSet accumulates literals for one query
type literalSet map[string]struct{}

func newLiteralSet() literalSet {
	return make(literalSet)
}

func (s literalSet) addExcept(literals []string, except string) {
	for _, lit := range literals {
		if lit != except {
			s[lit] = struct{}{}
		}
	}
}

func (s literalSet) sorted() []string {
	out := make([]string, 0, len(s))
	for lit := range s {
		out = append(out, lit)
	}
	sort.Strings(out)
	return out
}
