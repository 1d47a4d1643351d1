// Package related answers "which correctly inflected words are related to
// this word form": it looks the lemma up in the lexical graph and reinflects
// every related lemma to the features of the original form.
package related

import (
	"golang.org/x/text/unicode/norm"

	"github.com/standardbeagle/rolex/internal/debug"
	"github.com/standardbeagle/rolex/internal/morph"
)

// Graph is the part of the lexical graph the resolver reads
type Graph interface {
	Synonyms(word string) []string
	Hypernyms(word string) []string
	Hyponyms(word string) []string
}

// Forms is the structured result for one input word.
type Forms struct {
	Input     string   `json:"input"`
	Lemma     string   `json:"lemma"`
	Synonyms  []string `json:"synonyms"`
	Hypernyms []string `json:"hypernyms"`
	Hyponyms  []string `json:"hyponyms"`

	// Reinflected is false when no analysis was available and the lists
	// hold raw lemmas.
	Reinflected bool `json:"reinflected"`
}

// Limits caps each relation in the compact projection
type Limits struct {
	Synonyms  int
	Hypernyms int
	Hyponyms  int
}

// DefaultLimits keeps three synonyms, one hypernym and one hyponym.
var DefaultLimits = Limits{Synonyms: 3, Hypernyms: 1, Hyponyms: 1}

// Resolver combines the graph and the reinflector. It holds no mutable
// state and is safe for concurrent use.
type Resolver struct {
	graph       Graph
	reinflector *morph.Reinflector
	limits      Limits
}

// NewResolver creates a resolver. A nil reinflector reinflects by rules only.
func NewResolver(graph Graph, reinflector *morph.Reinflector, limits Limits) *Resolver {
	if reinflector == nil {
		reinflector = morph.NewReinflector(nil)
	}
	return &Resolver{graph: graph, reinflector: reinflector, limits: limits}
}

// Resolve returns the related forms of word. Without an analysis the word
// is its own lemma and the graph lists come back as they are. With one,
// the graph is queried by the analysed lemma and every candidate is
// reinflected to the analysed features and part of speech.
func (r *Resolver) Resolve(word string, analysis *morph.Analysis) Forms {
	word = norm.NFC.String(word)
	if analysis == nil {
		return Forms{
			Input:     word,
			Lemma:     word,
			Synonyms:  r.graph.Synonyms(word),
			Hypernyms: r.graph.Hypernyms(word),
			Hyponyms:  r.graph.Hyponyms(word),
		}
	}

	lemma := analysis.Lemma
	if lemma == "" {
		lemma = word
	}
	out := Forms{
		Input:       word,
		Lemma:       lemma,
		Synonyms:    r.reinflect(r.graph.Synonyms(lemma), analysis),
		Hypernyms:   r.reinflect(r.graph.Hypernyms(lemma), analysis),
		Hyponyms:    r.reinflect(r.graph.Hyponyms(lemma), analysis),
		Reinflected: true,
	}
	debug.LogLookup("related %q (lemma %q, %s): %d/%d/%d", word, lemma, analysis.Feats,
		len(out.Synonyms), len(out.Hypernyms), len(out.Hyponyms))
	return out
}

// reinflect maps candidates to surface forms, keeping the first of any
// forms that collide.
func (r *Resolver) reinflect(candidates []string, analysis *morph.Analysis) []string {
	out := make([]string, 0, len(candidates))
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		form := r.reinflector.Reinflect(c, analysis.Feats, analysis.POS)
		if !seen[form] {
			seen[form] = true
			out = append(out, form)
		}
	}
	return out
}

// Compact is the resolver's projection of f using its configured limits
func (r *Resolver) Compact(f Forms) []string {
	return f.Compact(r.limits)
}

// Compact concatenates the leading synonyms, hypernyms and hyponyms of f,
// in that order, dropping repeats.
func (f Forms) Compact(limits Limits) []string {
	out := make([]string, 0, limits.Synonyms+limits.Hypernyms+limits.Hyponyms)
	seen := make(map[string]bool)
	add := func(list []string, n int) {
		for _, s := range head(list, n) {
			if !seen[s] {
				seen[s] = true
				out = append(out, s)
			}
		}
	}
	add(f.Synonyms, limits.Synonyms)
	add(f.Hypernyms, limits.Hypernyms)
	add(f.Hyponyms, limits.Hyponyms)
	return out
}

func head(list []string, n int) []string {
	if n <= 0 {
		return nil
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
