package security

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/standardbeagle/rolex/internal/corpus"
)

// FileValidator inspects the head of a corpus file before it is scanned,
// so a compressed archive or a file of the wrong format fails with one
// clear error instead of thousands of skipped-record diagnostics.
type FileValidator struct {
	HeaderSize int64 // bytes read for validation
}

// NewFileValidator creates a validator reading headerKB of each file
func NewFileValidator(headerKB int64) *FileValidator {
	if headerKB <= 0 {
		headerKB = 64
	}
	return &FileValidator{HeaderSize: headerKB * 1024}
}

// Default is used by the corpus loaders
var Default = NewFileValidator(64)

// ValidateCorpusFile checks path with the default validator
func ValidateCorpusFile(path, kind string) error {
	return Default.ValidateFile(path, kind)
}

// ValidateFile reads only the header of path and checks it is plain text
// in the format of the named corpus. A missing file returns the open
// error unchanged so callers can test for os.ErrNotExist.
func (fv *FileValidator) ValidateFile(path, kind string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header := make([]byte, fv.HeaderSize)
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return fmt.Errorf("failed to read header: %w", err)
	}
	header = header[:n]

	if err := fv.checkMagicBytes(header); err != nil {
		return err
	}
	if fv.isBinaryData(header) {
		return errors.New("file appears to be binary")
	}
	return fv.validateFormat(kind, header)
}

// checkMagicBytes rejects archives and other well-known binary formats
func (fv *FileValidator) checkMagicBytes(header []byte) error {
	signatures := []struct {
		name  string
		magic []byte
	}{
		{"gzip", []byte{0x1F, 0x8B}},
		{"bzip2", []byte("BZh")},
		{"xz", []byte{0xFD, 0x37, 0x7A, 0x58, 0x5A, 0x00}},
		{"zstd", []byte{0x28, 0xB5, 0x2F, 0xFD}},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04}},
		{"pdf", []byte("%PDF-")},
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}},
	}
	for _, sig := range signatures {
		if bytes.HasPrefix(header, sig.magic) {
			return fmt.Errorf("file is %s data; decompress or convert it first", sig.name)
		}
	}
	return nil
}

// isBinaryData checks if the header holds mostly control characters
func (fv *FileValidator) isBinaryData(data []byte) bool {
	if len(data) == 0 {
		return false
	}

	nonPrintable := 0
	for _, b := range data {
		// control characters other than tab, LF, CR; and DEL
		if b < 9 || (b > 13 && b < 32) || b == 127 {
			nonPrintable++
		}
	}

	// more than 30% non-printable is binary
	ratio := float64(nonPrintable) / float64(len(data))
	return ratio > 0.3
}

// validateFormat checks the first meaningful content against the corpus
// format. Vocabulary lines are checked one by one by the loader. An empty
// file passes; the loader reports it as an empty corpus.
func (fv *FileValidator) validateFormat(kind string, header []byte) error {
	header = bytes.TrimPrefix(header, []byte("\xEF\xBB\xBF"))
	first := firstLine(header)
	if first == "" {
		return nil
	}

	switch kind {
	case corpus.Synsets:
		if !strings.HasPrefix(first, "<") {
			return errors.New("synset file does not start with an XML declaration or element")
		}
	case corpus.Inflected:
		if !strings.HasPrefix(first, "{") {
			return errors.New("inflected index is not NDJSON (first record does not start with '{')")
		}
	}
	return nil
}

// firstLine returns the first non-blank line of data, trimmed
func firstLine(data []byte) string {
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		if s := strings.TrimSpace(string(line)); s != "" {
			return s
		}
	}
	return ""
}
