package mcpserver

import (
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultText concatenates the text content blocks of a tool result.
func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var out string
	for _, content := range result.Content {
		if text, ok := content.(*mcp.TextContent); ok {
			out += text.Text
		}
	}
	return out
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "nil error",
			err:  nil,
			want: "",
		},
		{
			name: "plain message untouched",
			err:  errors.New("collaborator returned empty output"),
			want: "collaborator returned empty output",
		},
		{
			name: "home path stripped",
			err:  errors.New("open /home/dev/templates/prompt.txt: no such file"),
			want: "open <path>: no such file",
		},
		{
			name: "tmp path stripped",
			err:  errors.New("read /tmp/override.tmpl: permission denied"),
			want: "read <path>: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("something broke"))

	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Equal(t, "Error: something broke", resultText(t, result))
}
