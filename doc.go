// Package mcpdemo is an MCP (Model Context Protocol) server that generates
// client-side integration code for a foreign-exchange payments API.
//
// The server exposes three tools over stdio:
//
//   - echo: connectivity smoke test, returns its message argument
//   - getQuoteCode: generate client code for POST /quotes (create a locked FX quote)
//   - sendPaymentCode: generate client code for POST /payments (submit a payment
//     against a previously created quote)
//
// Both code-generation tools take a target language (typescript, javascript,
// python, go, rust, or cpp) and an optional includeTypes flag. They assemble a
// prompt from a static OpenAPI description of the payments API, narrowed to the
// requested endpoint, and delegate the actual code generation to the Anthropic
// Messages API. The server never calls the payments API itself; it only
// describes it.
//
// # Packages
//
//   - internal/fxapi: the static OpenAPI description, endpoint detail
//     extraction, and per-endpoint spec narrowing
//   - internal/prompt: the prompt template and placeholder substitution
//   - internal/lang: the supported target-language set
//   - internal/llm: the text-generation collaborator boundary and its
//     Anthropic implementation
//   - internal/mcpserver: tool registration, argument validation, and the
//     stdio server loop
//
// # Configuration
//
// All configuration is read from environment variables at startup:
//
//	ANTHROPIC_API_KEY       credential for the Anthropic API (required for generation)
//	MCPDEMO_MODEL           model name (default: claude-sonnet-4-20250514)
//	MCPDEMO_MAX_TOKENS      maximum completion tokens (default: 4096)
//	MCPDEMO_HTTP_TIMEOUT    collaborator HTTP timeout (default: 2m)
//	MCPDEMO_TEMPLATE_FILE   optional prompt template override file
//
// # Usage
//
// Run the server over stdio (the default when invoked without arguments):
//
//	mcp-demo serve
//
// Inspect the prompt that would be sent for an endpoint and language:
//
//	mcp-demo prompt -endpoint /quotes -language python
//
// Dump the API description, optionally narrowed to one endpoint:
//
//	mcp-demo spec -endpoint /payments -format yaml
package mcpdemo
