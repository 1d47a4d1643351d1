package errors

import (
	"errors"
	"fmt"
	"time"
)

// Error types for the rolex lexical engine
type ErrorType string

const (
	// Corpus loading errors
	ErrorTypeCorpus ErrorType = "corpus"
	ErrorTypeRecord ErrorType = "record"

	// Request errors
	ErrorTypeInvalidArgument ErrorType = "invalid_argument"

	// Configuration errors
	ErrorTypeConfig ErrorType = "config"
)

var (
	// ErrInvalidArgument marks contract violations by the caller.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyCorpus is returned when a required corpus yields no usable entries.
	ErrEmptyCorpus = errors.New("no usable entries")
)

// CorpusError describes a corpus that could not be loaded, or a single record
// that was skipped while loading it.
type CorpusError struct {
	Type       ErrorType
	Corpus     string // "vocabulary", "synsets", "inflected"
	Path       string
	Line       int // 0 when not line-oriented
	Record     string
	Underlying error
	Timestamp  time.Time
}

// NewCorpusError creates an error for a corpus as a whole
func NewCorpusError(corpus, path string, err error) *CorpusError {
	return &CorpusError{
		Type:       ErrorTypeCorpus,
		Corpus:     corpus,
		Path:       path,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// NewRecordError creates an error for one skipped record of a corpus
func NewRecordError(corpus, path string, line int, record string, err error) *CorpusError {
	return &CorpusError{
		Type:       ErrorTypeRecord,
		Corpus:     corpus,
		Path:       path,
		Line:       line,
		Record:     record,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *CorpusError) Error() string {
	switch {
	case e.Type == ErrorTypeRecord && e.Line > 0:
		return fmt.Sprintf("%s record skipped at %s:%d: %v", e.Corpus, e.Path, e.Line, e.Underlying)
	case e.Type == ErrorTypeRecord && e.Record != "":
		return fmt.Sprintf("%s record %q skipped in %s: %v", e.Corpus, e.Record, e.Path, e.Underlying)
	case e.Path != "":
		return fmt.Sprintf("%s load failed for %s: %v", e.Corpus, e.Path, e.Underlying)
	}
	return fmt.Sprintf("%s load failed: %v", e.Corpus, e.Underlying)
}

// Unwrap returns the underlying error for errors.Is/As
func (e *CorpusError) Unwrap() error {
	return e.Underlying
}

// InvalidArgumentError reports a caller contract violation.
// It matches ErrInvalidArgument with errors.Is.
type InvalidArgumentError struct {
	Type      ErrorType
	Operation string
	Argument  string
	Reason    string
	Timestamp time.Time
}

// NewInvalidArgumentError creates a new invalid-argument error
func NewInvalidArgumentError(op, arg, reason string) *InvalidArgumentError {
	return &InvalidArgumentError{
		Type:      ErrorTypeInvalidArgument,
		Operation: op,
		Argument:  arg,
		Reason:    reason,
		Timestamp: time.Now(),
	}
}

// Error implements the error interface
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: invalid argument %s: %s", e.Operation, e.Argument, e.Reason)
}

// Unwrap returns ErrInvalidArgument
func (e *InvalidArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config error for field %s: %v", e.Field, e.Underlying)
	}
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

// ErrorOrNil returns nil when no errors were collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}
