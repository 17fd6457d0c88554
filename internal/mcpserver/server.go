// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the FX payments code-generation tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	mcpdemo "github.com/marvinmarnold/mcp-demo"
	"github.com/marvinmarnold/mcp-demo/internal/llm"
	"github.com/marvinmarnold/mcp-demo/internal/llm/anthropic"
	"github.com/marvinmarnold/mcp-demo/internal/prompt"
)

const serverInstructions = `mcp-demo MCP server — generates client-side integration code for the FX Payments API (locked quotes and payments).

Tools:
- echo: connectivity smoke test
- getQuoteCode: client code for POST /quotes in a chosen language
- sendPaymentCode: client code for POST /payments in a chosen language

Supported languages: typescript, javascript, python, go, rust, cpp.

Configuration (environment variables set in your MCP client config):
- ANTHROPIC_API_KEY — credential for code generation (required)
- MCPDEMO_MODEL (default: ` + anthropic.DefaultModel + `)
- MCPDEMO_MAX_TOKENS (default: 4096)
- MCPDEMO_HTTP_TIMEOUT (default: 2m)
- MCPDEMO_TEMPLATE_FILE — optional prompt template override

The server only describes the payments API to a code generator; it never calls the payments API itself.`

// toolHost carries the per-process collaborators shared by every tool
// invocation. All fields are read-only after construction, so concurrent
// invocations need no locking.
type toolHost struct {
	llm       llm.Client
	template  string
	maxTokens int
}

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	cfg := loadConfig()
	host := &toolHost{
		llm:       anthropic.New(cfg.APIKey, cfg.Model, cfg.HTTPTimeout),
		template:  prompt.Load(cfg.TemplateFile),
		maxTokens: cfg.MaxTokens,
	}
	return newServer(host).Run(ctx, &mcp.StdioTransport{})
}

func newServer(host *toolHost) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "mcp-demo", Version: mcpdemo.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server, host)
	return server
}

func registerAllTools(server *mcp.Server, host *toolHost) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "echo",
		Description: "Echo a message back. Use this to verify connectivity to the server before generating code.",
	}, host.handleEcho)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "getQuoteCode",
		Description: "Generate client-side code that creates a locked FX quote via POST /quotes. Arguments: language (typescript, javascript, python, go, rust, or cpp) and includeTypes (default true) to include typed request/response models. Returns annotated source code; read the usage notes before running it.",
	}, host.handleGetQuoteCode)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "sendPaymentCode",
		Description: "Generate client-side code that submits a payment against a previously created quote via POST /payments. Arguments: language (typescript, javascript, python, go, rust, or cpp) and includeTypes (default true). Returns annotated source code covering the created/settled/rejected payment lifecycle.",
	}, host.handleSendPaymentCode)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult converts a soft failure into a tool-level error result. The text
// always leads with "Error" so callers scanning tool output can spot
// failures; transport-level faults are reserved for argument validation.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + sanitizeError(err)}},
	}
}
