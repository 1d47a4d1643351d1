package dictionary

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/unicode/norm"

	"github.com/standardbeagle/rolex/internal/corpus"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
	"github.com/standardbeagle/rolex/internal/security"
)

// ResolveVocabularyFiles expands doublestar patterns (e.g. "data/vocab/**/*.txt")
// into file paths. A pattern without glob syntax is kept as a literal path
// so a missing file is reported by the loader rather than dropped silently.
func ResolveVocabularyFiles(patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, rolexerrors.NewConfigError("corpus.vocabulary", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	if len(files) == 0 {
		return nil, rolexerrors.NewCorpusError(corpus.Vocabulary, strings.Join(patterns, ", "),
			errors.New("no vocabulary files matched"))
	}
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// LoadVocabulary reads every file matched by patterns and returns the
// deduplicated vocabulary. Unreadable files and bad lines are reported as
// diagnostics; the load fails only when no usable word remains.
func LoadVocabulary(patterns ...string) ([]string, *corpus.Report, error) {
	files, err := ResolveVocabularyFiles(patterns)
	if err != nil {
		return nil, nil, err
	}

	report := corpus.NewReport(corpus.Vocabulary, files...)
	v := newVocabulary()
	for _, path := range files {
		if err := security.ValidateCorpusFile(path, corpus.Vocabulary); err != nil {
			report.Skip(rolexerrors.NewCorpusError(corpus.Vocabulary, path, err))
			continue
		}
		err := corpus.ForEachLine(path, func(lineNo int, line string) error {
			v.addLine(report, path, lineNo, line)
			return nil
		})
		if err != nil {
			report.Skip(rolexerrors.NewCorpusError(corpus.Vocabulary, path, err))
		}
	}
	return v.finish(report)
}

// ReadVocabulary is LoadVocabulary over a single reader
func ReadVocabulary(r io.Reader, name string) ([]string, *corpus.Report, error) {
	report := corpus.NewReport(corpus.Vocabulary, name)
	v := newVocabulary()
	err := corpus.ScanLines(r, func(lineNo int, line string) error {
		v.addLine(report, name, lineNo, line)
		return nil
	})
	if err != nil {
		return nil, report, rolexerrors.NewCorpusError(corpus.Vocabulary, name, err)
	}
	return v.finish(report)
}

type vocabulary struct {
	words []string
	seen  map[string]struct{}
}

func newVocabulary() *vocabulary {
	return &vocabulary{seen: make(map[string]struct{})}
}

// addLine accepts "word" or "word count" (the SymSpell frequency format;
// the count is ignored).
func (v *vocabulary) addLine(report *corpus.Report, path string, lineNo int, line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	report.Records++

	if !utf8.ValidString(line) {
		report.Skip(rolexerrors.NewRecordError(corpus.Vocabulary, path, lineNo, "", errors.New("invalid UTF-8")))
		return
	}
	if len(fields) > 2 {
		report.Skip(rolexerrors.NewRecordError(corpus.Vocabulary, path, lineNo, "",
			fmt.Errorf("expected one word per line, got %d fields", len(fields))))
		return
	}
	if len(fields) == 2 {
		if _, err := strconv.ParseUint(fields[1], 10, 64); err != nil {
			report.Skip(rolexerrors.NewRecordError(corpus.Vocabulary, path, lineNo, "",
				fmt.Errorf("second field %q is not a frequency", fields[1])))
			return
		}
	}

	word := norm.NFC.String(fields[0])
	if _, dup := v.seen[word]; dup {
		report.Duplicates++
		return
	}
	v.seen[word] = struct{}{}
	v.words = append(v.words, word)
	report.Accepted++
}

func (v *vocabulary) finish(report *corpus.Report) ([]string, *corpus.Report, error) {
	if len(v.words) == 0 {
		return nil, report, rolexerrors.NewCorpusError(corpus.Vocabulary,
			strings.Join(report.Paths, ", "), rolexerrors.ErrEmptyCorpus)
	}
	return v.words, report, nil
}
