package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marvinmarnold/mcp-demo/internal/prompt"
)

// stubLLM is a test double for the text-generation collaborator. It records
// every prompt it receives and replies with a canned response.
type stubLLM struct {
	prompts []string
	reply   string
	err     error
}

func (s *stubLLM) Complete(_ context.Context, promptText string, _ int) (string, error) {
	s.prompts = append(s.prompts, promptText)
	if s.err != nil {
		return "", s.err
	}
	if s.reply != "" {
		return s.reply, nil
	}
	// Default reply echoes the prompt length, which is enough for the
	// handlers to treat the call as successful.
	return fmt.Sprintf("// generated from a %d-byte prompt", len(promptText)), nil
}

func newTestHost(stub *stubLLM) *toolHost {
	return &toolHost{
		llm:       stub,
		template:  prompt.Builtin(),
		maxTokens: 512,
	}
}

func boolPtr(b bool) *bool { return &b }

func TestGenerate_InvalidLanguageRejectedBeforeCollaboratorCall(t *testing.T) {
	stub := &stubLLM{}
	host := newTestHost(stub)

	for _, raw := range []string{"java", "", "brainfuck"} {
		t.Run("language="+raw, func(t *testing.T) {
			_, _, err := host.handleGetQuoteCode(context.Background(), nil, generateInput{Language: raw})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unsupported language")
		})
	}
	assert.Empty(t, stub.prompts, "the collaborator must never be called for invalid arguments")
}

func TestGenerate_CollaboratorFailureBecomesErrorResult(t *testing.T) {
	stub := &stubLLM{err: errors.New("connection refused")}
	host := newTestHost(stub)

	result, output, err := host.handleGetQuoteCode(context.Background(), nil, generateInput{Language: "go"})
	require.NoError(t, err, "collaborator failures must not fault the call")
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Error")
	assert.Empty(t, output.Code)
}

func TestGenerate_EmptyCompletionBecomesErrorResult(t *testing.T) {
	stub := &stubLLM{reply: "   \n"}
	host := newTestHost(stub)

	result, output, err := host.handleSendPaymentCode(context.Background(), nil, generateInput{Language: "python"})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "Error")
	assert.Contains(t, resultText(t, result), "empty output")
	assert.Empty(t, output.Code)
}

func TestGenerate_IncludeTypesGuidance(t *testing.T) {
	tests := []struct {
		name         string
		includeTypes *bool
		want         string
		dontWant     string
	}{
		{name: "omitted defaults to typed", includeTypes: nil, want: typedModelsGuidance, dontWant: untypedModelsGuidance},
		{name: "explicit true", includeTypes: boolPtr(true), want: typedModelsGuidance, dontWant: untypedModelsGuidance},
		{name: "explicit false", includeTypes: boolPtr(false), want: untypedModelsGuidance, dontWant: typedModelsGuidance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubLLM{}
			host := newTestHost(stub)

			_, _, err := host.handleGetQuoteCode(context.Background(), nil,
				generateInput{Language: "typescript", IncludeTypes: tt.includeTypes})
			require.NoError(t, err)

			require.Len(t, stub.prompts, 1)
			assert.Contains(t, stub.prompts[0], tt.want)
			assert.NotContains(t, stub.prompts[0], tt.dontWant)
		})
	}
}

func TestGenerate_PromptCarriesNegativeInstructions(t *testing.T) {
	stub := &stubLLM{}
	host := newTestHost(stub)

	_, _, err := host.handleSendPaymentCode(context.Background(), nil, generateInput{Language: "cpp"})
	require.NoError(t, err)

	require.Len(t, stub.prompts, 1)
	assert.Contains(t, stub.prompts[0], "Do not start a server.")
	assert.Contains(t, stub.prompts[0], "Do not listen on a port.")
}
