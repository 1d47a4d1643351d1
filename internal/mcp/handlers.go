package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/rolex/internal/debug"
	"github.com/standardbeagle/rolex/internal/dictionary"
	"github.com/standardbeagle/rolex/internal/distance"
	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// CorrectResponse is the result of the correct tool
type CorrectResponse struct {
	Word        string                  `json:"word"`
	Known       bool                    `json:"known"`
	Suggestions []dictionary.Suggestion `json:"suggestions"`
}

// RelatedResponse is the compact result of related_forms
type RelatedResponse struct {
	Input       string   `json:"input"`
	Lemma       string   `json:"lemma"`
	Suggestions []string `json:"suggestions"`
}

// DistanceResponse is the result of the distance tool
type DistanceResponse struct {
	A             string  `json:"a"`
	B             string  `json:"b"`
	Distance      float64 `json:"distance"`
	PlainDistance int     `json:"plain_distance"`
}

func (s *Server) handleCorrect(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params CorrectParams
	if err := decodeArguments(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("correct", err)
	}
	word, err := requireWord("correct", params.Word)
	if err != nil {
		return createErrorResponse("correct", err)
	}

	k := s.engine.MaxResults()
	if params.Max != nil {
		k = *params.Max
	}
	suggestions, err := s.engine.Suggest(word, k)
	if err != nil {
		return createErrorResponse("correct", err)
	}

	debug.LogMCP("correct %q: %d suggestions", word, len(suggestions))
	return createJSONResponse(CorrectResponse{
		Word:        word,
		Known:       len(suggestions) > 0 && suggestions[0].Distance == 0,
		Suggestions: suggestions,
	})
}

func (s *Server) handleRelatedForms(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params RelatedParams
	if err := decodeArguments(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("related_forms", err)
	}
	word, err := requireWord("related_forms", params.Word)
	if err != nil {
		return createErrorResponse("related_forms", err)
	}

	forms := s.engine.Relations(word)
	if params.Full {
		return createJSONResponse(forms)
	}
	return createJSONResponse(RelatedResponse{
		Input:       forms.Input,
		Lemma:       forms.Lemma,
		Suggestions: s.engine.Compact(forms),
	})
}

func (s *Server) handleLexicalRelations(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params RelatedParams
	if err := decodeArguments(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("lexical_relations", err)
	}
	word, err := requireWord("lexical_relations", params.Word)
	if err != nil {
		return createErrorResponse("lexical_relations", err)
	}
	return createJSONResponse(s.engine.RawRelations(word))
}

func (s *Server) handleDistance(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var params DistanceParams
	if err := decodeArguments(req.Params.Arguments, &params); err != nil {
		return createErrorResponse("distance", err)
	}
	a, errA := textArgument("distance", "a", params.A)
	b, errB := textArgument("distance", "b", params.B)
	if err := errors.Join(errA, errB); err != nil {
		return createSmartErrorResponse("distance", err, map[string]interface{}{
			"cause": rolexerrors.ErrInvalidArgument.Error(),
		})
	}

	d, err := s.engine.Distance(a, b)
	if err != nil {
		return createErrorResponse("distance", err)
	}
	return createJSONResponse(DistanceResponse{
		A:             a,
		B:             b,
		Distance:      d,
		PlainDistance: distance.Levenshtein(a, b),
	})
}
