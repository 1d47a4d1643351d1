package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/standardbeagle/rolex/internal/config"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
	"github.com/standardbeagle/rolex/internal/morph"
)

const testVocabulary = `mașina
mașină
mașini
casa
casă
automobil
automobilul
vehicul
taxi
`

const testSynsets = `<ROWN>
<SYNSET><ID>car</ID><SYNONYM><LITERAL>mașină<SENSE>1</SENSE></LITERAL><LITERAL>automobil<SENSE>1</SENSE></LITERAL></SYNONYM><ILR>vehicle<TYPE>hypernym</TYPE></ILR></SYNSET>
<SYNSET><ID>vehicle</ID><SYNONYM><LITERAL>vehicul<SENSE>1</SENSE></LITERAL></SYNONYM></SYNSET>
<SYNSET><ID>taxi</ID><SYNONYM><LITERAL>taxi<SENSE>1</SENSE></LITERAL></SYNONYM><ILR>car<TYPE>hypernym</TYPE></ILR></SYNSET>
<SYNSET><ID>broken</ID><SYNONYM><LITERAL>rupt</LITERAL></SYNONYM><ILR>missing<TYPE>hypernym</TYPE></ILR></SYNSET>
</ROWN>
`

const testInflected = `{"lemma":"mașină","form":"mașina","feats":{"Definite":"Def","Gender":"Fem","Number":"Sing"},"upos":"NOUN"}
{"lemma":"mașină","form":"mașini","feats":{"Definite":"Ind","Gender":"Fem","Number":"Plur"},"upos":"NOUN"}
{"lemma":"taxi","form":"taxiul","feats":{"Definite":"Def","Gender":"Neut","Number":"Sing"},"upos":"NOUN"}
`

// writeCorpora lays out a config directory and returns its loaded config
func writeCorpora(t *testing.T, inflected bool) *config.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultVocabulary), []byte(testVocabulary), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultSynsets), []byte(testSynsets), 0644))
	if inflected {
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultInflected), []byte(testInflected), 0644))
	}

	cfg, err := config.Load(dir)
	require.NoError(t, err)
	return cfg
}

func loadTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := Load(writeCorpora(t, true), opts...)
	require.NoError(t, err)
	return e
}

func TestLoad(t *testing.T) {
	e := loadTestEngine(t)

	stats := e.Stats()
	assert.Equal(t, 9, stats.Words)
	assert.Equal(t, 4, stats.Synsets)
	assert.Equal(t, 2, stats.HypernymEdges)
	assert.Equal(t, 3, stats.InflectedForms)
	assert.Equal(t, 1, stats.Skipped, "the dangling hypernym edge")
	assert.Len(t, e.Reports(), 3)
	assert.NoError(t, e.Verify())
}

func TestLoad_WithoutInflectedIndex(t *testing.T) {
	e, err := Load(writeCorpora(t, false))
	require.NoError(t, err)

	assert.Equal(t, 0, e.Stats().InflectedForms)
	assert.Len(t, e.Reports(), 2)
	// no analysis for anything: raw lemmas
	assert.Equal(t, []string{"automobil", "vehicul", "taxi"}, e.GetRelatedForms("mașină"))
}

func TestLoad_EmptyVocabularyIsFatal(t *testing.T) {
	cfg := writeCorpora(t, true)
	require.NoError(t, os.WriteFile(cfg.Corpus.Vocabulary[0], []byte("\n\n"), 0644))

	_, err := Load(cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, rolexerrors.ErrEmptyCorpus))
}

func TestLoad_MissingSynsetsIsFatal(t *testing.T) {
	cfg := writeCorpora(t, true)
	require.NoError(t, os.Remove(cfg.Corpus.Synsets))

	_, err := Load(cfg)
	assert.Error(t, err)
}

func TestLoad_InvalidConfig(t *testing.T) {
	cfg := writeCorpora(t, true)
	cfg.Dictionary.PrefixLength = 1

	_, err := Load(cfg)
	var configErr *rolexerrors.ConfigError
	assert.True(t, errors.As(err, &configErr))
}

func TestRecommendCorrectedWord(t *testing.T) {
	e := loadTestEngine(t)

	got := e.RecommendCorrectedWord("masina", 5)
	require.NotEmpty(t, got)
	assert.Equal(t, "mașina", got[0])
	// mașini needs a plain substitution on top of the diacritic and is over the threshold
	assert.Equal(t, []string{"mașina", "mașină"}, got)

	assert.Equal(t, []string{"casa", "casă"}, e.RecommendCorrectedWord("casa", 2))
	assert.Empty(t, e.RecommendCorrectedWord("zzzzzzz", 5))
	assert.Empty(t, e.RecommendCorrectedWord("casa", 0))
	assert.Empty(t, e.RecommendCorrectedWord("ca\xffsa", 5))
}

func TestRelations(t *testing.T) {
	e := loadTestEngine(t)

	got := e.Relations("mașina")
	assert.Equal(t, "mașina", got.Input)
	assert.Equal(t, "mașină", got.Lemma)
	assert.True(t, got.Reinflected)
	assert.Equal(t, []string{"automobilul"}, got.Synonyms)
	assert.Equal(t, []string{"vehiculul"}, got.Hypernyms)
	assert.Equal(t, []string{"taxiul"}, got.Hyponyms)

	assert.Equal(t, []string{"automobilul", "vehiculul", "taxiul"}, e.GetRelatedForms("mașina"))
}

// Inflected-index records without a upos tag still reach the noun rules
func TestRelations_UntaggedIndex(t *testing.T) {
	cfg := writeCorpora(t, false)
	untagged := `{"lemma":"mașină","form":"mașina","feats":{"Definite":"Def","Gender":"Fem","Number":"Sing"}}
{"lemma":"taxi","form":"taxiul","feats":{"Definite":"Def","Gender":"Neut","Number":"Sing"}}
`
	require.NoError(t, os.WriteFile(cfg.Corpus.Inflected, []byte(untagged), 0644))

	e, err := Load(cfg)
	require.NoError(t, err)

	a, ok := e.Analyze("mașina")
	require.True(t, ok)
	assert.Equal(t, morph.Noun, a.POS)

	got := e.Relations("mașina")
	assert.True(t, got.Reinflected)
	assert.Equal(t, []string{"automobilul"}, got.Synonyms)
	assert.Equal(t, []string{"vehiculul"}, got.Hypernyms)
	assert.Equal(t, []string{"taxiul"}, got.Hyponyms)
}

func TestRelations_UnknownWordHasNoAnalysis(t *testing.T) {
	e := loadTestEngine(t)

	// mașină is a lemma but not an indexed surface form
	got := e.Relations("mașină")
	assert.False(t, got.Reinflected)
	assert.Equal(t, []string{"automobil"}, got.Synonyms)

	assert.Empty(t, e.GetRelatedForms("necunoscut"))
}

func TestRawRelations(t *testing.T) {
	e := loadTestEngine(t)

	got := e.RawRelations("vehicul")
	assert.Equal(t, []string{"automobil", "mașină"}, got.Hyponyms)
	assert.Empty(t, got.Hypernyms)
}

func TestWithTagger(t *testing.T) {
	tagger := morph.TaggerFunc(func(word string) (morph.Analysis, bool) {
		if word != "mașinile" {
			return morph.Analysis{}, false
		}
		return morph.Analysis{Lemma: "mașină", Feats: morph.ParseFeatures("Definite=Def|Gender=Fem|Number=Plur"), POS: morph.Noun}, true
	})
	e := loadTestEngine(t, WithTagger(tagger))

	got := e.Relations("mașinile")
	assert.Equal(t, []string{"automobilele"}, got.Synonyms)
	assert.Equal(t, []string{"vehiculele"}, got.Hypernyms)

	e = loadTestEngine(t, WithTagger(nil))
	assert.False(t, e.Relations("mașina").Reinflected)
}

func TestDistance(t *testing.T) {
	e := loadTestEngine(t)

	d, err := e.Distance("mama", "mamă")
	require.NoError(t, err)
	assert.Equal(t, 0.25, d)

	_, err = e.Distance("ma\xff", "mamă")
	assert.True(t, errors.Is(err, rolexerrors.ErrInvalidArgument))
}

// Readers share one engine without locking.
func TestConcurrentReaders(t *testing.T) {
	e := loadTestEngine(t)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				assert.Equal(t, "mașina", e.RecommendCorrectedWord("masina", 3)[0])
				assert.Equal(t, []string{"automobilul", "vehiculul", "taxiul"}, e.GetRelatedForms("mașina"))
			}
		}()
	}
	wg.Wait()
}
