// Package llm defines the boundary to the external text-generation
// collaborator. The rest of the server treats completion as an opaque
// capability: one prompt in, one text block out.
package llm

import "context"

// Client is a minimal interface for making text-completion calls.
// Implementations provide the actual transport to a specific provider.
type Client interface {
	// Complete sends a single prompt and returns the completion text.
	// maxTokens bounds the size of the completion.
	Complete(ctx context.Context, prompt string, maxTokens int) (string, error)
}
