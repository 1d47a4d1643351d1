// Package lexicon owns the loaded corpora. Load builds every index once,
// sequentially; the resulting Engine is immutable and is shared by
// reference with every request handler.
package lexicon

import (
	"errors"
	"fmt"
	"os"

	"github.com/standardbeagle/rolex/internal/config"
	"github.com/standardbeagle/rolex/internal/corpus"
	"github.com/standardbeagle/rolex/internal/debug"
	"github.com/standardbeagle/rolex/internal/dictionary"
	"github.com/standardbeagle/rolex/internal/distance"
	"github.com/standardbeagle/rolex/internal/morph"
	"github.com/standardbeagle/rolex/internal/related"
	"github.com/standardbeagle/rolex/internal/wordnet"
)

// Engine answers correction and related-form queries over static corpora.
type Engine struct {
	dict     *dictionary.Dictionary
	lookup   dictionary.Lookuper
	graph    *wordnet.Graph
	forms    *morph.FormsIndex
	tagger   morph.Tagger
	resolver *related.Resolver
	metric   distance.Metric

	maxEditDistance int
	maxResults      int
	reports         []*corpus.Report
}

// Option customises an Engine at load time
type Option func(*Engine)

// WithTagger replaces the index-backed tagger. A nil tagger means no word
// ever has an analysis.
func WithTagger(t morph.Tagger) Option {
	return func(e *Engine) {
		e.tagger = t
	}
}

// Load reads the vocabulary, the synset corpus and the optional inflected
// forms index named by cfg. Skipped records are kept in the reports.
// A missing inflected index leaves reinflection to the rules.
func Load(cfg *config.Config, opts ...Option) (*Engine, error) {
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}

	words, vocabReport, err := dictionary.LoadVocabulary(cfg.Corpus.Vocabulary...)
	if err != nil {
		return nil, err
	}
	dict, err := dictionary.New(words, cfg.DictionaryOptions())
	if err != nil {
		return nil, err
	}

	graph, synsetReport, err := wordnet.LoadRoWN(cfg.Corpus.Synsets)
	if err != nil {
		return nil, err
	}

	reports := []*corpus.Report{vocabReport, synsetReport}
	forms := morph.NewFormsIndex(nil)
	if cfg.Corpus.Inflected != "" {
		ix, report, err := morph.LoadFormsIndex(cfg.Corpus.Inflected)
		switch {
		case err == nil:
			forms = ix
			reports = append(reports, report)
		case errors.Is(err, os.ErrNotExist):
			debug.LogLoad("no inflected index at %s, reinflecting by rules only", cfg.Corpus.Inflected)
		default:
			return nil, err
		}
	}

	return newEngine(dict, graph, forms, cfg, reports, opts...), nil
}

// New assembles an engine from already built parts
func New(dict *dictionary.Dictionary, graph *wordnet.Graph, forms *morph.FormsIndex, cfg *config.Config, opts ...Option) (*Engine, error) {
	if dict == nil || graph == nil {
		return nil, errors.New("lexicon: dictionary and graph are required")
	}
	if cfg == nil {
		cfg = config.Default()
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return newEngine(dict, graph, forms, cfg, nil, opts...), nil
}

func newEngine(dict *dictionary.Dictionary, graph *wordnet.Graph, forms *morph.FormsIndex, cfg *config.Config, reports []*corpus.Report, opts ...Option) *Engine {
	e := &Engine{
		dict:            dict,
		lookup:          dict,
		graph:           graph,
		forms:           forms,
		tagger:          morph.NewIndexTagger(forms),
		metric:          cfg.Metric(),
		maxEditDistance: dict.Options().MaxEditDistance,
		maxResults:      cfg.Dictionary.MaxResults,
		reports:         reports,
	}
	if cfg.Dictionary.CacheSize > 0 {
		e.lookup = dictionary.NewCachedDictionary(dict, cfg.Dictionary.CacheSize)
	}
	e.resolver = related.NewResolver(graph, morph.NewReinflector(forms), cfg.CompactLimits())
	for _, opt := range opts {
		opt(e)
	}
	for _, r := range reports {
		debug.LogLoad("%s", r)
	}
	return e
}

// Suggest returns ranked suggestions for word, at most k of them, using
// the full index bound.
func (e *Engine) Suggest(word string, k int) ([]dictionary.Suggestion, error) {
	return e.lookup.Lookup(word, e.maxEditDistance, k)
}

// RecommendCorrectedWord returns up to k correction candidates, best
// first. A known word comes back first; no candidate gives an empty slice.
func (e *Engine) RecommendCorrectedWord(word string, k int) []string {
	suggestions, err := e.Suggest(word, k)
	if err != nil {
		// only invalid UTF-8 gets here; it has no candidates
		debug.LogLookup("correction of %q failed: %v", word, err)
		return []string{}
	}
	return dictionary.Terms(suggestions)
}

// Analyze runs the configured tagger; ok is false without an analysis
func (e *Engine) Analyze(word string) (morph.Analysis, bool) {
	if e.tagger == nil {
		return morph.Analysis{}, false
	}
	return e.tagger.Analyze(word)
}

// Relations returns the full related-forms result for word
func (e *Engine) Relations(word string) related.Forms {
	if a, ok := e.Analyze(word); ok {
		return e.resolver.Resolve(word, &a)
	}
	return e.resolver.Resolve(word, nil)
}

// GetRelatedForms is the compact projection of Relations
func (e *Engine) GetRelatedForms(word string) []string {
	return e.Compact(e.Relations(word))
}

// Compact projects a Relations result with the configured limits
func (e *Engine) Compact(f related.Forms) []string {
	return e.resolver.Compact(f)
}

// RawRelations returns the graph's one-hop relations of word without any
// analysis or reinflection
func (e *Engine) RawRelations(word string) related.Forms {
	return e.resolver.Resolve(word, nil)
}

// Distance scores a and b with the configured metric
func (e *Engine) Distance(a, b string) (float64, error) {
	return e.metric.Distance(a, b)
}

// Stats summarises what was loaded
type Stats struct {
	Words          int `json:"words"`
	DeleteKeys     int `json:"delete_keys"`
	Synsets        int `json:"synsets"`
	Literals       int `json:"literals"`
	HypernymEdges  int `json:"hypernym_edges"`
	InflectedForms int `json:"inflected_forms"`
	Lemmas         int `json:"lemmas"`
	Skipped        int `json:"skipped"`
}

// Stats returns load statistics
func (e *Engine) Stats() Stats {
	s := Stats{
		Words:          e.dict.Size(),
		DeleteKeys:     e.dict.DeleteKeys(),
		Synsets:        e.graph.Len(),
		Literals:       e.graph.LiteralCount(),
		HypernymEdges:  e.graph.EdgeCount(),
		InflectedForms: e.forms.Len(),
		Lemmas:         e.forms.Lemmas(),
	}
	for _, r := range e.reports {
		s.Skipped += r.Skipped()
	}
	return s
}

// Reports returns the per-corpus load reports
func (e *Engine) Reports() []*corpus.Report {
	return e.reports
}

// MaxResults is the configured default number of corrections
func (e *Engine) MaxResults() int {
	return e.maxResults
}

// Verify re-checks the lexical graph invariants
func (e *Engine) Verify() error {
	if err := e.graph.Verify(); err != nil {
		return fmt.Errorf("lexical graph: %w", err)
	}
	return nil
}
