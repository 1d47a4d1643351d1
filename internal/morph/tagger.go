package morph

import "golang.org/x/text/unicode/norm"

// Analysis is what a tagger knows about one surface form
type Analysis struct {
	Lemma string       `json:"lemma"`
	Feats Features     `json:"feats"`
	POS   PartOfSpeech `json:"upos"`
}

// Tagger analyses a single surface form. ok is false when the tagger has
// no analysis; callers then treat the form as its own lemma.
type Tagger interface {
	Analyze(word string) (a Analysis, ok bool)
}

// TaggerFunc adapts a function to Tagger
type TaggerFunc func(word string) (Analysis, bool)

// Analyze calls f(word)
func (f TaggerFunc) Analyze(word string) (Analysis, bool) {
	return f(word)
}

// IndexTagger answers from the inflected-forms index: a known surface form
// is analysed as its first record in corpus order. Records without a upos
// tag are nouns when they carry a Definite feature.
type IndexTagger struct {
	index *FormsIndex
}

// NewIndexTagger creates a tagger over index
func NewIndexTagger(index *FormsIndex) *IndexTagger {
	return &IndexTagger{index: index}
}

// Analyze implements Tagger
func (t *IndexTagger) Analyze(word string) (Analysis, bool) {
	analyses := t.index.Analyses(norm.NFC.String(word))
	if len(analyses) == 0 {
		return Analysis{}, false
	}
	f := analyses[0]
	return Analysis{Lemma: f.Lemma, Feats: f.Feats.Clone(), POS: inferPOS(f)}, true
}

// inferPOS fills in the part of speech of an untagged record. Only nominal
// forms carry Definite, so such a record is read as a noun.
func inferPOS(f Form) PartOfSpeech {
	if f.POS != POSUnknown {
		return f.POS
	}
	if f.Feats.Get(Definite) != "" {
		return Noun
	}
	return POSUnknown
}
