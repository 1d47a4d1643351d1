// Package morph covers the small slice of Romanian morphology the engine
// needs: feature bundles, the part-of-speech variant, the inflected-forms
// index, the reinflector and the tagger collaborator.
package morph

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Universal Dependencies feature names and values used by the noun rules.
const (
	Number   = "Number"
	Gender   = "Gender"
	Definite = "Definite"

	Sing = "Sing"
	Plur = "Plur"
	Masc = "Masc"
	Fem  = "Fem"
	Neut = "Neut"
	Def  = "Def"
	Ind  = "Ind"
)

// Features is a set of morphological features, e.g. Number=Sing.
type Features map[string]string

// ParseFeatures reads the UD string form "Definite=Def|Gender=Fem|Number=Sing".
// Malformed pairs are ignored.
func ParseFeatures(s string) Features {
	f := make(Features)
	for _, pair := range strings.Split(s, "|") {
		k, v, ok := strings.Cut(strings.TrimSpace(pair), "=")
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if !ok || k == "" || v == "" {
			continue
		}
		f[k] = v
	}
	return f
}

// Get returns the value of name, or "" when absent
func (f Features) Get(name string) string {
	return f[name]
}

// Equal reports whether both sets hold exactly the same pairs. A nil set
// equals an empty one.
func (f Features) Equal(other Features) bool {
	if len(f) != len(other) {
		return false
	}
	for k, v := range f {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Clone returns an independent copy
func (f Features) Clone() Features {
	out := make(Features, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// String renders the UD form with names sorted
func (f Features) String() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + f[k]
	}
	return strings.Join(parts, "|")
}

// UnmarshalJSON accepts either an object of string values or the UD
// string form.
func (f *Features) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = ParseFeatures(s)
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("features must be an object of strings or a UD feature string: %w", err)
	}
	*f = Features(m)
	return nil
}
