// Package prompt builds the text-generation prompt for one endpoint and one
// target language by substituting placeholder tokens in a fixed template.
package prompt

import (
	"bytes"
	"log/slog"
	"os"
)

// Placeholder tokens substituted by Assemble. Tokens are mutually exclusive
// literal markers, so substitution order does not matter; every occurrence of
// each token is replaced, not just the first.
const (
	TokenEndpointPath = "{{ENDPOINT_PATH}}"
	TokenLanguage     = "{{LANGUAGE}}"
	TokenFileExt      = "{{FILE_EXTENSION}}"
	TokenAPISpec      = "{{API_SPEC}}"
	TokenEndpointInfo = "{{ENDPOINT_INFO}}"
)

// builtinTemplate is the authoritative prompt template. It is an inline
// constant rather than a file read so the server has no runtime filesystem
// dependency.
const builtinTemplate = `You are an expert {{LANGUAGE}} developer. Write production-quality client code in {{LANGUAGE}} for calling the {{ENDPOINT_PATH}} endpoint of the FX Payments API described below.

## API description (narrowed to {{ENDPOINT_PATH}})

` + "```yaml\n{{API_SPEC}}```" + `

## Endpoint notes

{{ENDPOINT_INFO}}

## Requirements

- Produce one self-contained source file; suggest the filename fx_client{{FILE_EXTENSION}} in a leading comment.
- The code is a client of {{ENDPOINT_PATH}} only. Do not start a server. Do not listen on a port. Do not implement the API itself.
- Authenticate every request with "Authorization: Bearer <key>", reading the key from an environment variable and using the placeholder YOUR_API_KEY in examples.
- Send a unique Idempotency-Key header on every request.
- On non-2xx responses, decode the Error schema and surface its code and message to the caller.
- Use only the {{LANGUAGE}} standard library plus one widely used HTTP client if the standard library has none.
- Respond with {{LANGUAGE}} source code and brief comments only. No prose before or after the code.`

// fallbackTemplate is the degraded template used when a configured override
// cannot be read. It still carries the endpoint and language tokens so the
// request can proceed with a minimal but correct prompt.
const fallbackTemplate = `Write client code in {{LANGUAGE}} (file extension {{FILE_EXTENSION}}) for calling the {{ENDPOINT_PATH}} endpoint of the FX Payments API.

API description:
{{API_SPEC}}

Endpoint notes:
{{ENDPOINT_INFO}}

Do not start a server. Do not listen on a port. Respond with {{LANGUAGE}} source code only.`

// Builtin returns the inline authoritative template.
func Builtin() string {
	return builtinTemplate
}

// Load returns the template to assemble prompts from. An empty overridePath
// selects the builtin template. An unreadable or empty override file degrades
// to the minimal fallback template rather than failing the call: availability
// is prioritized over completeness.
func Load(overridePath string) string {
	if overridePath == "" {
		return builtinTemplate
	}
	data, err := os.ReadFile(overridePath)
	if err != nil {
		slog.Warn("prompt template override unreadable, using fallback template", "path", overridePath, "error", err)
		return fallbackTemplate
	}
	if len(bytes.TrimSpace(data)) == 0 {
		slog.Warn("prompt template override is empty, using fallback template", "path", overridePath)
		return fallbackTemplate
	}
	return string(data)
}
