package morph

import "strings"

// PartOfSpeech is a Universal POS tag. Reinflection dispatches on it.
type PartOfSpeech uint8

const (
	POSUnknown PartOfSpeech = iota
	Adj
	Adp
	Adv
	Aux
	Cconj
	Det
	Intj
	Noun
	Num
	Part
	Pron
	Propn
	Punct
	Sconj
	Sym
	Verb
	X
)

var posNames = [...]string{
	POSUnknown: "",
	Adj:        "ADJ",
	Adp:        "ADP",
	Adv:        "ADV",
	Aux:        "AUX",
	Cconj:      "CCONJ",
	Det:        "DET",
	Intj:       "INTJ",
	Noun:       "NOUN",
	Num:        "NUM",
	Part:       "PART",
	Pron:       "PRON",
	Propn:      "PROPN",
	Punct:      "PUNCT",
	Sconj:      "SCONJ",
	Sym:        "SYM",
	Verb:       "VERB",
	X:          "X",
}

// ParsePartOfSpeech maps a UPOS tag (case-insensitive) to its variant.
// Unrecognised tags yield POSUnknown.
func ParsePartOfSpeech(tag string) PartOfSpeech {
	tag = strings.ToUpper(strings.TrimSpace(tag))
	if tag == "" {
		return POSUnknown
	}
	for i, name := range posNames {
		if name == tag {
			return PartOfSpeech(i)
		}
	}
	return POSUnknown
}

func (p PartOfSpeech) String() string {
	if int(p) < len(posNames) {
		return posNames[p]
	}
	return ""
}

// MarshalText encodes the UPOS tag
func (p PartOfSpeech) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a UPOS tag; unknown tags decode to POSUnknown
func (p *PartOfSpeech) UnmarshalText(text []byte) error {
	*p = ParsePartOfSpeech(string(text))
	return nil
}
