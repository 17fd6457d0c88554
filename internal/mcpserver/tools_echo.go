package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type echoInput struct {
	Message string `json:"message" jsonschema:"Message to echo back"`
}

type echoOutput struct {
	Message string `json:"message"`
}

// handleEcho is the connectivity smoke test: it returns its argument.
func (h *toolHost) handleEcho(_ context.Context, _ *mcp.CallToolRequest, input echoInput) (*mcp.CallToolResult, echoOutput, error) {
	return nil, echoOutput{Message: "Echo: " + input.Message}, nil
}
