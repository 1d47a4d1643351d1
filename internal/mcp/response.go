package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	rolexerrors "github.com/standardbeagle/rolex/internal/errors"
)

// createJSONResponse creates a standardized JSON response for MCP tools
func createJSONResponse(data interface{}) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal response data: %v", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(content)},
		},
	}, nil
}

// createErrorResponse creates a standardized error response for MCP tools
func createErrorResponse(operation string, err error) (*mcp.CallToolResult, error) {
	return createSmartErrorResponse(operation, err, nil)
}

// createSmartErrorResponse creates an error response with usage help for
// the operation. Tool errors are reported inside the result with IsError
// set, so the client model can see and correct them.
func createSmartErrorResponse(operation string, err error, context map[string]interface{}) (*mcp.CallToolResult, error) {
	errorData := map[string]interface{}{
		"success":   false,
		"error":     err.Error(),
		"operation": operation,
	}

	if errors.Is(err, rolexerrors.ErrInvalidArgument) {
		errorData["kind"] = "invalid_argument"
	}

	if help := getOperationHelp(operation); help != "" {
		errorData["help"] = help
	}

	if len(context) > 0 {
		errorData["context"] = context
	}

	response, marshalErr := createJSONResponse(errorData)
	if marshalErr != nil {
		return nil, marshalErr
	}

	response.IsError = true
	return response, nil
}

// getOperationHelp returns a usage example for a tool
func getOperationHelp(operation string) string {
	helpMap := map[string]string{
		"correct":           `{"word": "masina", "max": 5}`,
		"related_forms":     `{"word": "mașina", "full": true}`,
		"lexical_relations": `{"word": "mașină"}`,
		"distance":          `{"a": "mama", "b": "mamă"}`,
	}
	return helpMap[operation]
}
