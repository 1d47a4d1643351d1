package mcp

import (
	"encoding/json"
	"fmt"
	"strings"

	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// CorrectParams are the arguments of the correct tool
type CorrectParams struct {
	Word string `json:"word"`
	Max  *int   `json:"max,omitempty"` // defaults to dictionary.max_results
}

// RelatedParams are the arguments of related_forms and lexical_relations
type RelatedParams struct {
	Word string `json:"word"`
	Full bool   `json:"full,omitempty"`
}

// DistanceParams are the arguments of the distance tool. Both values must
// be JSON strings; anything else is rejected rather than defaulted.
type DistanceParams struct {
	A json.RawMessage `json:"a"`
	B json.RawMessage `json:"b"`
}

// decodeArguments unmarshals tool arguments; an absent body decodes to
// the zero value.
func decodeArguments(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}
	return nil
}

// requireWord validates a word argument for operation
func requireWord(operation, word string) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", rolexerrors.NewInvalidArgumentError(operation, "word", "is required")
	}
	return word, nil
}

// textArgument decodes a required JSON string argument
func textArgument(operation, name string, raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", rolexerrors.NewInvalidArgumentError(operation, name, "is required")
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", rolexerrors.NewInvalidArgumentError(operation, name,
			fmt.Sprintf("must be text, got %s", string(raw)))
	}
	return s, nil
}
