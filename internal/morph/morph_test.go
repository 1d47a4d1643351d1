package morph

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feats(s string) Features {
	return ParseFeatures(s)
}

func TestParseFeatures(t *testing.T) {
	f := ParseFeatures("Number=Sing| Gender=Fem |bad||Definite=")
	assert.Equal(t, Features{Number: Sing, Gender: Fem}, f)
	assert.Equal(t, "Gender=Fem|Number=Sing", f.String())
	assert.Equal(t, "", f.Get(Definite))
}

func TestFeatures_Equal(t *testing.T) {
	assert.True(t, feats("Number=Sing|Gender=Fem").Equal(feats("Gender=Fem|Number=Sing")))
	assert.False(t, feats("Number=Sing").Equal(feats("Number=Sing|Gender=Fem")))
	assert.False(t, feats("Number=Sing").Equal(feats("Number=Plur")))
	assert.True(t, Features(nil).Equal(Features{}))
}

func TestFeatures_UnmarshalJSON(t *testing.T) {
	var f Features
	require.NoError(t, json.Unmarshal([]byte(`{"Number":"Plur","Definite":"Def"}`), &f))
	assert.Equal(t, Features{Number: Plur, Definite: Def}, f)

	require.NoError(t, json.Unmarshal([]byte(`"Number=Sing|Gender=Masc"`), &f))
	assert.Equal(t, Features{Number: Sing, Gender: Masc}, f)

	assert.Error(t, json.Unmarshal([]byte(`{"Number":1}`), &f))
}

func TestParsePartOfSpeech(t *testing.T) {
	assert.Equal(t, Noun, ParsePartOfSpeech("NOUN"))
	assert.Equal(t, Verb, ParsePartOfSpeech(" verb "))
	assert.Equal(t, POSUnknown, ParsePartOfSpeech("nonsense"))
	assert.Equal(t, POSUnknown, ParsePartOfSpeech(""))
	assert.Equal(t, "PROPN", Propn.String())

	for p := POSUnknown; p <= X; p++ {
		assert.Equal(t, p, ParsePartOfSpeech(p.String()))
	}
}

func TestInflectNoun(t *testing.T) {
	tests := []struct {
		lemma string
		feats string
		want  string
	}{
		{"mașină", "Number=Sing|Definite=Ind|Gender=Fem", "mașină"},
		{"mașină", "Number=Plur|Definite=Ind|Gender=Fem", "mașini"},
		{"mașină", "Number=Sing|Definite=Def|Gender=Fem", "mașina"},
		{"mașină", "Number=Plur|Definite=Def|Gender=Fem", "mașinile"},
		{"automobil", "Number=Sing|Definite=Def|Gender=Fem", "automobilul"},
		{"automobil", "Number=Sing|Definite=Def", "automobilul"},
		{"automobil", "Number=Plur|Gender=Neut", "automobile"},
		{"automobil", "Number=Plur|Definite=Def|Gender=Neut", "automobilele"},
		{"taxi", "Number=Sing|Definite=Def|Gender=Neut", "taxile"},
		{"taxi", "Number=Plur|Gender=Neut", "taxe"},
		// without Gender=Fem the -ă lemma takes the generic vowel branch
		{"mașină", "Number=Sing|Definite=Def", "mașinăle"},
		{"mașină", "Definite=Def|Gender=Fem", "mașină"},
		{"", "Number=Plur", ""},
	}
	for _, tt := range tests {
		t.Run(tt.lemma+"/"+tt.feats, func(t *testing.T) {
			assert.Equal(t, tt.want, InflectNoun(tt.lemma, feats(tt.feats)))
		})
	}
}

func TestGenerate_OnlyNounsHaveRules(t *testing.T) {
	f := feats("Number=Plur|Definite=Def")
	assert.Equal(t, "automobilele", Generate("automobil", f, Noun))
	for p := POSUnknown; p <= X; p++ {
		if p == Noun {
			continue
		}
		assert.Equal(t, "automobil", Generate("automobil", f, p), p.String())
	}
	assert.Equal(t, "automobil", Generate("automobil", f, PartOfSpeech(200)))
}

const testIndex = `{"lemma":"mașină","form":"mașină","feats":{"Definite":"Ind","Gender":"Fem","Number":"Sing"},"upos":"NOUN"}
{"lemma":"mașină","form":"mașina","feats":{"Definite":"Def","Gender":"Fem","Number":"Sing"},"upos":"NOUN"}
{"lemma":"mașină","form":"mașini","feats":{"Definite":"Ind","Gender":"Fem","Number":"Plur"},"upos":"NOUN"}
{"lemma":"vehicul","form":"vehiculele","feats":"Definite=Def|Gender=Neut|Number=Plur","upos":"NOUN"}

{"lemma":"casă","form":"casei","feats":{"Case":"Dat,Gen","Definite":"Def","Gender":"Fem","Number":"Sing"}}
not json
{"lemma":"","form":"nimic","feats":{}}
{"lemma":"merge","form":"merg","feats":{"Mood":"Ind","Number":"Plur","Person":"3"},"upos":"VERB"}
`

func newTestIndex(t *testing.T) *FormsIndex {
	t.Helper()
	ix, report, err := ReadFormsIndex(strings.NewReader(testIndex), "index.ndjson")
	require.NoError(t, err)
	assert.Equal(t, 8, report.Records)
	assert.Equal(t, 6, report.Accepted)
	assert.Equal(t, 2, report.Skipped())
	return ix
}

func TestFormsIndex(t *testing.T) {
	ix := newTestIndex(t)

	assert.Equal(t, 6, ix.Len())
	assert.Equal(t, 4, ix.Lemmas())
	assert.Len(t, ix.Forms("mașină"), 3)
	assert.Equal(t, Noun, ix.Forms("vehicul")[0].POS)
	assert.Equal(t, POSUnknown, ix.Forms("casă")[0].POS)
	assert.Empty(t, ix.Forms("necunoscut"))

	analyses := ix.Analyses("mașina")
	require.Len(t, analyses, 1)
	assert.Equal(t, "mașină", analyses[0].Lemma)

	var nilIndex *FormsIndex
	assert.Empty(t, nilIndex.Forms("mașină"))
	assert.Equal(t, 0, nilIndex.Len())
}

func TestLoadFormsIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inflected.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(testIndex), 0644))

	ix, report, err := LoadFormsIndex(path)
	require.NoError(t, err)
	assert.Equal(t, 6, ix.Len())
	assert.Equal(t, 2, report.Skipped())

	_, _, err = LoadFormsIndex(filepath.Join(t.TempDir(), "missing.ndjson"))
	assert.Error(t, err)
}

func TestReinflect(t *testing.T) {
	r := NewReinflector(newTestIndex(t))

	tests := []struct {
		name  string
		lemma string
		feats string
		pos   PartOfSpeech
		want  string
	}{
		{"exact index match", "mașină", "Definite=Def|Gender=Fem|Number=Sing", Noun, "mașina"},
		{"number-only index match", "mașină", "Case=Acc,Nom|Definite=Def|Gender=Fem|Number=Plur", Noun, "mașini"},
		{"string feats in index", "vehicul", "Definite=Def|Gender=Neut|Number=Plur", Noun, "vehiculele"},
		{"rules when lemma not indexed", "automobil", "Definite=Def|Gender=Fem|Number=Sing", Noun, "automobilul"},
		{"rules when no indexed form has the Number", "vehicul", "Definite=Def|Gender=Neut|Number=Sing", Noun, "vehiculul"},
		{"no number falls to rules", "mașină", "Definite=Def", Noun, "mașină"},
		{"non-noun passes through", "frumos", "Number=Plur|Gender=Fem", Adj, "frumos"},
		{"verb from index", "merge", "Number=Plur", Verb, "merg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Reinflect(tt.lemma, feats(tt.feats), tt.pos))
		})
	}
}

func TestReinflect_NilIndex(t *testing.T) {
	r := NewReinflector(nil)
	assert.Equal(t, "mașini", r.Reinflect("mașină", feats("Number=Plur|Definite=Ind|Gender=Fem"), Noun))
	_, ok := r.FromIndex("mașină", feats("Number=Plur"))
	assert.False(t, ok)
}

func TestIndexTagger(t *testing.T) {
	tagger := NewIndexTagger(newTestIndex(t))

	a, ok := tagger.Analyze("mașina")
	require.True(t, ok)
	assert.Equal(t, "mașină", a.Lemma)
	assert.Equal(t, Noun, a.POS)
	assert.Equal(t, feats("Definite=Def|Gender=Fem|Number=Sing"), a.Feats)

	// callers may mutate the returned features
	a.Feats[Number] = Plur
	again, _ := tagger.Analyze("mașina")
	assert.Equal(t, Sing, again.Feats[Number])

	_, ok = tagger.Analyze("xyz")
	assert.False(t, ok)

	var _ Tagger = TaggerFunc(func(string) (Analysis, bool) { return Analysis{}, false })
}

func TestIndexTagger_UntaggedRecords(t *testing.T) {
	ix, _, err := ReadFormsIndex(strings.NewReader(
		`{"lemma":"mașină","form":"mașina","feats":{"Definite":"Def","Gender":"Fem","Number":"Sing"}}
{"lemma":"merge","form":"merg","feats":"Mood=Ind|Number=Sing|Person=1"}
{"lemma":"frumos","form":"frumoasă","feats":"Gender=Fem|Number=Sing","upos":"ADJ"}
`), "untagged")
	require.NoError(t, err)
	tagger := NewIndexTagger(ix)

	tests := []struct {
		form string
		want PartOfSpeech
	}{
		{"mașina", Noun},
		{"merg", POSUnknown},
		{"frumoasă", Adj},
	}
	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			a, ok := tagger.Analyze(tt.form)
			require.True(t, ok)
			assert.Equal(t, tt.want, a.POS)
		})
	}
}
