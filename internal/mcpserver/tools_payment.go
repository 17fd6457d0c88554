package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/marvinmarnold/mcp-demo/internal/fxapi"
	"github.com/marvinmarnold/mcp-demo/internal/lang"
)

// paymentGuidance is the endpoint-specific free text substituted into the
// prompt for the payment-submission endpoint.
const paymentGuidance = `Field requirements:
- quote_id must reference an unexpired quote created via POST /quotes; each quote can be consumed at most once.
- destination (beneficiary name and IBAN) is required.
- reference is optional free text shown on the beneficiary's statement.

Lifecycle:
- 201 returns an EventEnvelope of type payment.created whose data field is the PaymentData resource in status created.
- Settlement is asynchronous: the payment later transitions to settled or rejected, reported as payment.settled or payment.rejected events. The client should expose the returned payment id so callers can track the outcome.

Auth and headers:
- Every request needs "Authorization: Bearer <key>" and a unique Idempotency-Key header; reuse the same key when retrying so a duplicate submission is recognized instead of re-executed.
- Rate-limit state is reported in the RateLimit-Limit, RateLimit-Remaining, and RateLimit-Reset response headers.

Error codes:
- 400 bad_request: malformed body or headers.
- 401 unauthorized: missing or revoked bearer token.
- 409 quote_expired or quote_already_used: the quote cannot be executed.
- 422 invalid_destination: business-rule violations on the beneficiary.
- 429 rate_limited: back off and retry after the window resets.`

func (h *toolHost) handleSendPaymentCode(ctx context.Context, _ *mcp.CallToolRequest, input generateInput) (*mcp.CallToolResult, generateOutput, error) {
	return h.generate(ctx, fxapi.PaymentsPath, paymentGuidance, wrapPaymentCode, input)
}

// wrapPaymentCode frames the generated text with a title naming the language
// and the fixed integration caveats for payment submission.
func wrapPaymentCode(language lang.Language, code string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s client for POST %s — submit a payment against a locked quote\n\n", language.Display(), fxapi.PaymentsPath)
	b.WriteString(code)
	b.WriteString("\n\nUsage notes:\n")
	b.WriteString("- Replace the YOUR_API_KEY placeholder with a real API key before running.\n")
	b.WriteString("- Payments settle asynchronously: created, then settled or rejected. Track the payment id after submission.\n")
	b.WriteString("- Reuse the Idempotency-Key when retrying a submission; never generate a new key for a retry.\n")
	b.WriteString("- Implement backoff when the API returns 429, honoring the rate-limit headers.\n")
	return b.String()
}
