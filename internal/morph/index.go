package morph

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/standardbeagle/rolex/internal/corpus"
	"github.com/standardbeagle/rolex/internal/debug"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
	"github.com/standardbeagle/rolex/internal/security"
)

// Form is one inflected-forms record: a surface form of a lemma with its
// features and, when known, its part of speech.
type Form struct {
	Lemma string       `json:"lemma"`
	Form  string       `json:"form"`
	Feats Features     `json:"feats"`
	POS   PartOfSpeech `json:"upos,omitempty"`
}

// FormsIndex maps lemmas to their known forms and forms back to their
// analyses. Insertion order is preserved within each bucket.
type FormsIndex struct {
	byLemma map[string][]Form
	byForm  map[string][]Form
	size    int
}

// NewFormsIndex indexes entries. Entries without a lemma or form are ignored.
func NewFormsIndex(entries []Form) *FormsIndex {
	ix := &FormsIndex{
		byLemma: make(map[string][]Form),
		byForm:  make(map[string][]Form),
	}
	for _, e := range entries {
		ix.add(e)
	}
	return ix
}

func (ix *FormsIndex) add(e Form) bool {
	e.Lemma = norm.NFC.String(strings.TrimSpace(e.Lemma))
	e.Form = norm.NFC.String(strings.TrimSpace(e.Form))
	if e.Lemma == "" || e.Form == "" {
		return false
	}
	if e.Feats == nil {
		e.Feats = Features{}
	}
	ix.byLemma[e.Lemma] = append(ix.byLemma[e.Lemma], e)
	ix.byForm[e.Form] = append(ix.byForm[e.Form], e)
	ix.size++
	return true
}

// LoadFormsIndex reads an NDJSON inflected-forms file, one
// {"lemma","form","feats","upos"} object per line. Malformed lines are
// skipped with a diagnostic; an empty index is not an error.
func LoadFormsIndex(path string) (*FormsIndex, *corpus.Report, error) {
	report := corpus.NewReport(corpus.Inflected, path)
	if err := security.ValidateCorpusFile(path, corpus.Inflected); err != nil {
		return nil, report, rolexerrors.NewCorpusError(corpus.Inflected, path, err)
	}
	ix := NewFormsIndex(nil)
	err := corpus.ForEachLine(path, func(lineNo int, line string) error {
		ix.addLine(report, path, lineNo, line)
		return nil
	})
	if err != nil {
		return nil, report, rolexerrors.NewCorpusError(corpus.Inflected, path, err)
	}
	debug.LogLoad("inflected index loaded: %d forms of %d lemmas", ix.size, len(ix.byLemma))
	return ix, report, nil
}

// ReadFormsIndex is LoadFormsIndex over a reader
func ReadFormsIndex(r io.Reader, name string) (*FormsIndex, *corpus.Report, error) {
	report := corpus.NewReport(corpus.Inflected, name)
	ix := NewFormsIndex(nil)
	err := corpus.ScanLines(r, func(lineNo int, line string) error {
		ix.addLine(report, name, lineNo, line)
		return nil
	})
	if err != nil {
		return nil, report, rolexerrors.NewCorpusError(corpus.Inflected, name, err)
	}
	return ix, report, nil
}

func (ix *FormsIndex) addLine(report *corpus.Report, path string, lineNo int, line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	report.Records++
	if !utf8.ValidString(line) {
		report.Skip(rolexerrors.NewRecordError(corpus.Inflected, path, lineNo, "", errors.New("invalid UTF-8")))
		return
	}

	var rec Form
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		report.Skip(rolexerrors.NewRecordError(corpus.Inflected, path, lineNo, "", err))
		return
	}
	if !ix.add(rec) {
		report.Skip(rolexerrors.NewRecordError(corpus.Inflected, path, lineNo, "",
			errors.New("missing lemma or form")))
		return
	}
	report.Accepted++
}

// Forms returns the indexed forms of lemma in corpus order
func (ix *FormsIndex) Forms(lemma string) []Form {
	if ix == nil {
		return nil
	}
	return ix.byLemma[norm.NFC.String(lemma)]
}

// Analyses returns every record whose surface form is form, in corpus order
func (ix *FormsIndex) Analyses(form string) []Form {
	if ix == nil {
		return nil
	}
	return ix.byForm[norm.NFC.String(form)]
}

// Len returns the number of indexed records
func (ix *FormsIndex) Len() int {
	if ix == nil {
		return 0
	}
	return ix.size
}

// Lemmas returns the number of distinct lemmas
func (ix *FormsIndex) Lemmas() int {
	if ix == nil {
		return 0
	}
	return len(ix.byLemma)
}
