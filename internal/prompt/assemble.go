package prompt

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/marvinmarnold/mcp-demo/internal/fxapi"
	"github.com/marvinmarnold/mcp-demo/internal/lang"
)

// Assemble substitutes all placeholder tokens in template with concrete
// values for one endpoint and one target language. The API description is
// narrowed to the endpoint before serialization to bound prompt size.
// Returns an error when the endpoint is missing from the document or has no
// supported method; callers decide how to surface it.
func Assemble(template string, doc *openapi3.T, endpointPath string, language lang.Language, typesGuidance, endpointInfo string) (string, error) {
	details, err := fxapi.ExtractOperation(doc, endpointPath)
	if err != nil {
		return "", fmt.Errorf("extracting endpoint details: %w", err)
	}

	specYAML, err := fxapi.MarshalYAML(fxapi.Narrow(doc, endpointPath))
	if err != nil {
		return "", fmt.Errorf("serializing narrowed description: %w", err)
	}

	out := template
	out = strings.ReplaceAll(out, TokenEndpointPath, endpointPath)
	out = strings.ReplaceAll(out, TokenLanguage, language.Display())
	out = strings.ReplaceAll(out, TokenFileExt, language.FileExt())
	out = strings.ReplaceAll(out, TokenAPISpec, string(specYAML))
	info := formatDetails(details, endpointPath) + "\n" + strings.TrimSpace(endpointInfo)
	if typesGuidance != "" {
		info += "\n\n" + strings.TrimSpace(typesGuidance)
	}
	out = strings.ReplaceAll(out, TokenEndpointInfo, info)
	return out, nil
}

// formatDetails renders the extracted operation facts that belong in every
// prompt regardless of the handler's guidance text.
func formatDetails(details *fxapi.OperationDetails, endpointPath string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\nOperation: %s %s", details.Method, endpointPath)
	if details.OperationID != "" {
		fmt.Fprintf(&b, " (operationId: %s)", details.OperationID)
	}
	b.WriteString("\n")
	if details.Summary != "" {
		fmt.Fprintf(&b, "Summary: %s\n", details.Summary)
	}
	if details.Description != "" {
		fmt.Fprintf(&b, "%s\n", details.Description)
	}
	return b.String()
}
