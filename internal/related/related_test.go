package related

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/rolex/internal/morph"
	"github.com/standardbeagle/rolex/internal/wordnet"
)

func newTestGraph(t *testing.T) *wordnet.Graph {
	t.Helper()
	g, err := wordnet.Build([]wordnet.Synset{
		{ID: "car", Literals: []string{"mașină", "automobil", "autoturism"}, Hypernyms: []string{"vehicle"}},
		{ID: "vehicle", Literals: []string{"vehicul"}},
		{ID: "taxi", Literals: []string{"taxi"}, Hypernyms: []string{"car"}},
		{ID: "limo", Literals: []string{"limuzină"}, Hypernyms: []string{"car"}},
	}, nil)
	require.NoError(t, err)
	return g
}

func mașinaAnalysis() *morph.Analysis {
	return &morph.Analysis{
		Lemma: "mașină",
		Feats: morph.ParseFeatures("Definite=Def|Gender=Fem|Number=Sing"),
		POS:   morph.Noun,
	}
}

func TestResolve_NoAnalysisIsRaw(t *testing.T) {
	r := NewResolver(newTestGraph(t), nil, DefaultLimits)

	got := r.Resolve("mașină", nil)
	assert.Equal(t, "mașină", got.Input)
	assert.Equal(t, "mașină", got.Lemma)
	assert.False(t, got.Reinflected)
	assert.Equal(t, []string{"automobil", "autoturism"}, got.Synonyms)
	assert.Equal(t, []string{"vehicul"}, got.Hypernyms)
	assert.Equal(t, []string{"limuzină", "taxi"}, got.Hyponyms)
}

func TestResolve_UnknownWord(t *testing.T) {
	r := NewResolver(newTestGraph(t), nil, DefaultLimits)

	got := r.Resolve("mașina", nil)
	assert.Empty(t, got.Synonyms)
	assert.Empty(t, got.Hypernyms)
	assert.Empty(t, got.Hyponyms)
	assert.Empty(t, r.Compact(got))
}

func TestResolve_ReinflectsToSourceFeatures(t *testing.T) {
	r := NewResolver(newTestGraph(t), morph.NewReinflector(nil), DefaultLimits)

	got := r.Resolve("mașina", mașinaAnalysis())
	assert.True(t, got.Reinflected)
	assert.Equal(t, "mașina", got.Input)
	assert.Equal(t, "mașină", got.Lemma)
	assert.Equal(t, []string{"automobilul", "autoturismul"}, got.Synonyms)
	assert.Equal(t, []string{"vehiculul"}, got.Hypernyms)
	// the branch follows the Gender of mașina, not of each candidate
	assert.Equal(t, []string{"limuzina", "taxile"}, got.Hyponyms)
}

func TestResolve_IndexFormsWin(t *testing.T) {
	index, _, err := morph.ReadFormsIndex(strings.NewReader(
		`{"lemma":"autoturism","form":"autoturismul","feats":{"Definite":"Def","Gender":"Fem","Number":"Sing"}}
{"lemma":"taxi","form":"taxiul","feats":{"Definite":"Def","Gender":"Neut","Number":"Sing"}}
`), "index.ndjson")
	require.NoError(t, err)
	r := NewResolver(newTestGraph(t), morph.NewReinflector(index), DefaultLimits)

	got := r.Resolve("mașina", mașinaAnalysis())
	assert.Equal(t, []string{"limuzina", "taxiul"}, got.Hyponyms)
}

func TestResolve_NonNounPassesThrough(t *testing.T) {
	r := NewResolver(newTestGraph(t), nil, DefaultLimits)

	got := r.Resolve("mașina", &morph.Analysis{Lemma: "mașină", Feats: morph.ParseFeatures("Number=Plur"), POS: morph.Propn})
	assert.Equal(t, []string{"automobil", "autoturism"}, got.Synonyms)
}

func TestResolve_EmptyLemmaFallsBackToInput(t *testing.T) {
	r := NewResolver(newTestGraph(t), nil, DefaultLimits)

	got := r.Resolve("vehicul", &morph.Analysis{Feats: morph.ParseFeatures("Number=Plur"), POS: morph.Noun})
	assert.Equal(t, "vehicul", got.Lemma)
	assert.Equal(t, []string{"automobile", "autoturisme", "mașine"}, got.Hyponyms)
}

func TestCompact(t *testing.T) {
	f := Forms{
		Synonyms:  []string{"a", "b", "c", "d"},
		Hypernyms: []string{"e", "f"},
		Hyponyms:  []string{"a", "g"},
	}
	assert.Equal(t, []string{"a", "b", "c", "e"}, f.Compact(DefaultLimits))
	assert.Equal(t, []string{"a", "e", "f"}, f.Compact(Limits{Synonyms: 1, Hypernyms: 5}))
	assert.Empty(t, Forms{}.Compact(DefaultLimits))
}

func TestResolve_EndToEnd(t *testing.T) {
	index, _, err := morph.ReadFormsIndex(strings.NewReader(
		`{"lemma":"mașină","form":"mașina","feats":{"Definite":"Def","Gender":"Fem","Number":"Sing"},"upos":"NOUN"}
`), "index.ndjson")
	require.NoError(t, err)
	tagger := morph.NewIndexTagger(index)
	r := NewResolver(newTestGraph(t), morph.NewReinflector(index), DefaultLimits)

	analysis, ok := tagger.Analyze("mașina")
	require.True(t, ok)
	got := r.Resolve("mașina", &analysis)

	assert.Contains(t, got.Synonyms, "automobilul")
	assert.Equal(t, []string{"automobilul", "autoturismul", "vehiculul", "limuzina"}, r.Compact(got))
}
