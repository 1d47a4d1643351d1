// Package corpus holds the plumbing shared by the static corpus loaders:
// line-oriented file scanning and the per-corpus load report.
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/standardbeagle/rolex/internal/debug"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// Corpus names used in reports and errors
const (
	Vocabulary = "vocabulary"
	Synsets    = "synsets"
	Inflected  = "inflected"
)

// maxLineSize bounds a single corpus line; NDJSON records stay far below it.
const maxLineSize = 1024 * 1024

// Report summarises one corpus load. Skipped records are kept as
// diagnostics; they never abort the load on their own.
type Report struct {
	Corpus      string
	Paths       []string
	Records     int // records seen, including skipped ones
	Accepted    int
	Duplicates  int
	Diagnostics []error
}

// NewReport creates an empty report for the named corpus
func NewReport(name string, paths ...string) *Report {
	return &Report{Corpus: name, Paths: paths}
}

// Skip records a diagnostic for a rejected record and logs it.
func (r *Report) Skip(err error) {
	r.Diagnostics = append(r.Diagnostics, err)
	debug.LogLoad("%v", err)
}

// Skipped returns the number of rejected records
func (r *Report) Skipped() int {
	return len(r.Diagnostics)
}

// Err returns all diagnostics as a MultiError, or nil when nothing was skipped
func (r *Report) Err() error {
	return rolexerrors.NewMultiError(r.Diagnostics).ErrorOrNil()
}

// String returns a one-line summary
func (r *Report) String() string {
	return fmt.Sprintf("%s: %d records, %d accepted, %d duplicates, %d skipped (%s)",
		r.Corpus, r.Records, r.Accepted, r.Duplicates, r.Skipped(), strings.Join(r.Paths, ", "))
}

// ForEachLine opens path and calls fn for every line with its 1-based number.
// Returning an error from fn stops the scan and returns that error.
func ForEachLine(path string, fn func(lineNo int, line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ScanLines(f, fn)
}

// ScanLines is ForEachLine over an already open reader.
func ScanLines(r io.Reader, fn func(lineNo int, line string) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineSize)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		if err := fn(lineNo, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
