package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvinmarnold/mcp-demo/internal/fxapi"
)

// startTestSession creates an in-process MCP server/client pair around the
// given host and returns the connected client session. The server is shut
// down when the test ends.
func startTestSession(t *testing.T, host *toolHost) *mcp.ClientSession {
	t.Helper()

	server := newServer(host)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

// sessionText concatenates the text content blocks of a call result.
func sessionText(result *mcp.CallToolResult) string {
	var out string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			out += text.Text
		}
	}
	return out
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t, newTestHost(&stubLLM{}))

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{"echo", "getQuoteCode", "sendPaymentCode"}, names)
}

func TestIntegration_Echo(t *testing.T) {
	session := startTestSession(t, newTestHost(&stubLLM{}))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "echo",
		Arguments: map[string]any{"message": "hello"},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, sessionText(result), "Echo: hello")
}

// End-to-end: generate Python quote code against a stubbed collaborator and
// assert the result names the language and the endpoint path.
func TestIntegration_GetQuoteCode(t *testing.T) {
	stub := &stubLLM{}
	session := startTestSession(t, newTestHost(stub))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "getQuoteCode",
		Arguments: map[string]any{"language": "python", "includeTypes": true},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "got error result: %s", sessionText(result))

	text := sessionText(result)
	assert.Contains(t, text, "Python")
	assert.Contains(t, text, fxapi.QuotesPath)
	require.Len(t, stub.prompts, 1, "exactly one collaborator call")
}

// End-to-end: the prompt captured by the stub for payment code names the
// payment lifecycle events.
func TestIntegration_SendPaymentCode(t *testing.T) {
	stub := &stubLLM{}
	session := startTestSession(t, newTestHost(stub))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "sendPaymentCode",
		Arguments: map[string]any{"language": "rust"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError, "got error result: %s", sessionText(result))

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "payment.created")
	assert.Contains(t, stub.prompts[0], "payment.settled")
	assert.Contains(t, stub.prompts[0], "payment.rejected")
}

// End-to-end: a collaborator returning nothing degrades to an error-text
// result, not a fault.
func TestIntegration_EmptyCompletion(t *testing.T) {
	session := startTestSession(t, newTestHost(&stubLLM{err: errors.New("no text content in response")}))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "getQuoteCode",
		Arguments: map[string]any{"language": "go"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, sessionText(result), "Error")
}

func TestIntegration_InvalidLanguage(t *testing.T) {
	stub := &stubLLM{}
	session := startTestSession(t, newTestHost(stub))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "sendPaymentCode",
		Arguments: map[string]any{"language": "java"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, sessionText(result), "unsupported language")
	assert.Empty(t, stub.prompts, "no collaborator call for invalid arguments")
}
