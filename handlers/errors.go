// ABOUTME: Shared tool error payload helper
// ABOUTME: Wraps collaborator failures as per-tool MCP error results
package handlers

import (
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// toolError converts a collaborator-layer failure into an MCP error
// result carrying the failing tool's name and the underlying message.
// There is no structured retry signal.
func toolError(tool string, err error) *mcp.CallToolResult {
	payload, _ := json.Marshal(map[string]string{
		"tool":  tool,
		"error": err.Error(),
	})
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}
}
