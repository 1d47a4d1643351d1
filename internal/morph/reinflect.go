package morph

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Reinflector produces the surface form of a lemma for a wanted feature set.
//
// The inflected-forms index is consulted first: an entry with exactly the
// wanted features wins, then an entry agreeing on Number alone. Without an
// index answer the rule generator takes over. Anything neither can handle
// comes back as the unchanged lemma; reinflection never fails.
type Reinflector struct {
	index *FormsIndex
}

// NewReinflector creates a reinflector over index, which may be nil
func NewReinflector(index *FormsIndex) *Reinflector {
	return &Reinflector{index: index}
}

// Reinflect returns lemma inflected to feats, as a pos.
func (r *Reinflector) Reinflect(lemma string, feats Features, pos PartOfSpeech) string {
	if form, ok := r.FromIndex(lemma, feats); ok {
		return form
	}
	return Generate(lemma, feats, pos)
}

// FromIndex looks lemma up in the inflected-forms index. The Number-only
// fallback applies only when feats carries a Number.
func (r *Reinflector) FromIndex(lemma string, feats Features) (string, bool) {
	forms := r.index.Forms(lemma)
	if len(forms) == 0 {
		return "", false
	}
	for _, f := range forms {
		if f.Feats.Equal(feats) {
			return f.Form, true
		}
	}
	if number := feats.Get(Number); number != "" {
		for _, f := range forms {
			if f.Feats.Get(Number) == number {
				return f.Form, true
			}
		}
	}
	return "", false
}

// Generate applies the rule set for pos. Only nouns have rules; every other
// tag passes the lemma through unchanged.
func Generate(lemma string, feats Features, pos PartOfSpeech) string {
	switch pos {
	case Noun:
		return InflectNoun(lemma, feats)
	case POSUnknown, Propn, Adj, Adp, Adv, Aux, Cconj, Det, Intj, Num, Part, Pron, Punct, Sconj, Sym, Verb, X:
		return lemma
	default:
		return lemma
	}
}

// InflectNoun is a best-effort generator for regular Romanian noun endings.
// It is deliberately partial: it knows the singular/plural and
// definite/indefinite suffixes of the common feminine -ă and masculine or
// neuter patterns, nothing of vowel alternations (e.g. masă/mese),
// irregular plurals or case. Without a Number feature the lemma is returned.
//
//	Sing Ind  lemma
//	Sing Def  Fem -ă: ă -> a;  vowel-final: +le;  otherwise: +ul
//	Plur Ind  Fem -ă: ă -> i;  vowel-final: last vowel -> e;  otherwise: +e
//	Plur Def  Plur Ind + le
//
// Gender defaults to Masc.
func InflectNoun(lemma string, feats Features) string {
	if lemma == "" {
		return lemma
	}
	definite := feats.Get(Definite) == Def
	feminineA := feats.Get(Gender) == Fem && strings.HasSuffix(lemma, "ă")

	switch feats.Get(Number) {
	case Sing:
		if !definite {
			return lemma
		}
		switch {
		case feminineA:
			return strings.TrimSuffix(lemma, "ă") + "a"
		case endsInVowel(lemma):
			return lemma + "le"
		default:
			return lemma + "ul"
		}
	case Plur:
		plural := nounPlural(lemma, feminineA)
		if definite {
			return plural + "le"
		}
		return plural
	default:
		return lemma
	}
}

func nounPlural(lemma string, feminineA bool) string {
	switch {
	case feminineA:
		return strings.TrimSuffix(lemma, "ă") + "i"
	case endsInVowel(lemma):
		_, size := utf8.DecodeLastRuneInString(lemma)
		return lemma[:len(lemma)-size] + "e"
	default:
		return lemma + "e"
	}
}

func endsInVowel(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'ă', 'â', 'î':
		return true
	}
	return false
}
