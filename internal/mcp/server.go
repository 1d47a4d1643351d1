// Package mcp exposes the lexical engine as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/rolex/internal/lexicon"
	"github.com/standardbeagle/rolex/internal/version"
)

type toolHandler func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error)

// Server serves one loaded engine. The engine is read-only, so handlers
// run concurrently without locking.
type Server struct {
	engine           *lexicon.Engine
	server           *mcp.Server
	diagnosticLogger *DiagnosticLogger
	handlers         map[string]toolHandler
}

// NewServer creates an MCP server over engine. Diagnostics go to a log
// file because stdio carries the protocol.
func NewServer(engine *lexicon.Engine) (*Server, error) {
	return newServer(engine, NewDiagnosticLogger(true))
}

func newServer(engine *lexicon.Engine, logger *DiagnosticLogger) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("mcp: engine is required")
	}

	s := &Server{
		engine:           engine,
		diagnosticLogger: logger,
		handlers:         make(map[string]toolHandler),
	}

	s.server = mcp.NewServer(&mcp.Implementation{
		Name:    "rolex-mcp-server",
		Version: version.Version,
	}, nil)
	s.registerTools()

	stats := engine.Stats()
	logger.Printf("MCP server initialized (%s, build %s): %d words, %d synsets, %d inflected forms",
		version.FullInfo(), version.BuildID(), stats.Words, stats.Synsets, stats.InflectedForms)
	return s, nil
}

func (s *Server) addTool(tool *mcp.Tool, handler toolHandler) {
	name := tool.Name
	wrapped := func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.recoverFromPanic(name, func() (*mcp.CallToolResult, error) {
			return handler(ctx, req)
		})
	}
	s.handlers[name] = wrapped
	s.server.AddTool(tool, wrapped)
}

func (s *Server) registerTools() {
	s.addTool(&mcp.Tool{
		Name:        "correct",
		Description: "Suggest correctly spelled Romanian words for a possibly misspelled form, best first. Missing diacritics (masina -> mașina) cost less than other edits.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"word": {
					Type:        "string",
					Description: "Word form to correct",
				},
				"max": {
					Type:        "integer",
					Description: "Maximum number of suggestions (default from config)",
				},
			},
			Required: []string{"word"},
		},
	}, s.handleCorrect)

	s.addTool(&mcp.Tool{
		Name:        "related_forms",
		Description: "Synonyms, hypernyms and hyponyms of a Romanian word, inflected to match the input form (mașina -> automobilul). Returns a short suggestion list, or the full breakdown with full=true.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"word": {
					Type:        "string",
					Description: "Surface word form",
				},
				"full": {
					Type:        "boolean",
					Description: "Return every relation instead of the compact list",
				},
			},
			Required: []string{"word"},
		},
	}, s.handleRelatedForms)

	s.addTool(&mcp.Tool{
		Name:        "lexical_relations",
		Description: "Raw one-hop WordNet relations of a lemma: synonyms, hypernyms and hyponyms, without reinflection.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"word": {
					Type:        "string",
					Description: "Lemma to look up",
				},
			},
			Required: []string{"word"},
		},
	}, s.handleLexicalRelations)

	s.addTool(&mcp.Tool{
		Name:        "distance",
		Description: "Diacritic-aware edit distance between two words: a diacritic swap (a/ă, s/ș) costs 0.25, any other edit 1. Also returns the plain Levenshtein distance.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"a": {
					Type:        "string",
					Description: "First word",
				},
				"b": {
					Type:        "string",
					Description: "Second word",
				},
			},
			Required: []string{"a", "b"},
		},
	}, s.handleDistance)
}

// recoverFromPanic turns a handler panic into an error result
func (s *Server) recoverFromPanic(operation string, handler func() (*mcp.CallToolResult, error)) (result *mcp.CallToolResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			s.diagnosticLogger.Printf("PANIC RECOVERED in %s: %v", operation, r)
			s.diagnosticLogger.Printf("Stack trace: %s", debug.Stack())
			result, err = createErrorResponse(operation, fmt.Errorf("internal error: %v", r))
		}
	}()

	result, err = handler()
	if err != nil {
		s.diagnosticLogger.Printf("Error in %s: %v", operation, err)
		return createErrorResponse(operation, err)
	}
	return result, nil
}

// Start serves the tools over stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Start(ctx context.Context) error {
	s.diagnosticLogger.Printf("Starting MCP server with stdio transport")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Shutdown flushes diagnostics. The engine holds no resources.
func (s *Server) Shutdown(ctx context.Context) error {
	s.diagnosticLogger.Printf("MCP server shutdown complete")
	return s.diagnosticLogger.Close()
}

// GetHandlerForTesting returns a registered tool handler
func (s *Server) GetHandlerForTesting(toolName string) func(context.Context, *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h, ok := s.handlers[toolName]; ok {
		return h
	}
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return createErrorResponse("GetHandlerForTesting", fmt.Errorf("unknown tool: %s", toolName))
	}
}
