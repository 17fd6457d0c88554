package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/marvinmarnold/mcp-demo/internal/fxapi"
	"github.com/marvinmarnold/mcp-demo/internal/lang"
)

// quoteGuidance is the endpoint-specific free text substituted into the
// prompt for the quote-creation endpoint.
const quoteGuidance = `Field requirements:
- to_currency is required and must be an ISO 4217 code.
- Exactly one of from_amount and to_amount must be set; the server derives the other side from the locked rate. Sending both or neither is a validation error.
- from_currency defaults to the account's settlement currency when omitted.

Response:
- 201 returns an EventEnvelope of type quote.created whose data field is the QuoteData resource, including the locked rate and expires_at (Unix time). The quote is only executable until expires_at.

Auth and headers:
- Every request needs "Authorization: Bearer <key>" and a unique Idempotency-Key header.
- Rate-limit state is reported in the RateLimit-Limit, RateLimit-Remaining, and RateLimit-Reset response headers.

Error codes:
- 400 bad_request: malformed body or headers.
- 401 unauthorized: missing or revoked bearer token.
- 422 invalid_currency_pair or both_amounts_set: business-rule violations.
- 429 rate_limited: back off and retry after the window resets.`

func (h *toolHost) handleGetQuoteCode(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	return h.generate(ctx, fxapi.QuotesPath, quoteGuidance, wrapQuoteCode, input)
}

// wrapQuoteCode frames the generated text with a title naming the language
// and the fixed integration caveats for quote creation.
func wrapQuoteCode(language lang.Language, code string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s client for POST %s — create a locked FX quote\n\n", language.Display(), fxapi.QuotesPath)
	b.WriteString(code)
	b.WriteString("\n\nUsage notes:\n")
	b.WriteString("- Replace the YOUR_API_KEY placeholder with a real API key before running.\n")
	b.WriteString("- A quote is only executable until expires_at; request a fresh quote once it lapses.\n")
	b.WriteString("- Implement backoff when the API returns 429, honoring the rate-limit headers.\n")
	return b.String()
}
