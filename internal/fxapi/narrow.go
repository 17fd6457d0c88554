package fxapi

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// schemaAllowList maps each endpoint to the component schemas its prompt
// needs. This is a hand-maintained allow-list, not a reachability analysis
// over $refs: adding a new endpoint requires adding a row here.
var schemaAllowList = map[string][]string{
	QuotesPath:   {"QuoteRequest", "QuoteData", "EventEnvelope", "Error", "Amount", "UnixTime"},
	PaymentsPath: {"PaymentRequest", "PaymentData", "EventEnvelope", "Error", "UnixTime"},
}

// Narrow projects the document down to a single endpoint: info and servers
// verbatim, one paths entry, only the allow-listed schemas, and always the
// bearer security scheme and idempotency-key parameter. Shared error response
// bodies and rate-limit headers are kept whole since the retained operation
// references them. The result shares nodes with the source document and must
// be treated as read-only.
func Narrow(doc *openapi3.T, endpointPath string) *openapi3.T {
	narrowed := &openapi3.T{
		OpenAPI:  doc.OpenAPI,
		Security: doc.Security,
		Info: &openapi3.Info{
			Title:   doc.Info.Title,
			Version: doc.Info.Version,
		},
		Servers: doc.Servers,
		Paths:   openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas:         openapi3.Schemas{},
			Parameters:      openapi3.ParametersMap{},
			SecuritySchemes: openapi3.SecuritySchemes{},
			Responses:       doc.Components.Responses,
			Headers:         doc.Components.Headers,
		},
	}

	if item := doc.Paths.Value(endpointPath); item != nil {
		narrowed.Paths.Set(endpointPath, item)
	}

	for _, name := range schemaAllowList[endpointPath] {
		if ref, ok := doc.Components.Schemas[name]; ok {
			narrowed.Components.Schemas[name] = ref
		}
	}

	if ref, ok := doc.Components.SecuritySchemes[securitySchemeBearer]; ok {
		narrowed.Components.SecuritySchemes[securitySchemeBearer] = ref
	}
	if ref, ok := doc.Components.Parameters[parameterIdempotency]; ok {
		narrowed.Components.Parameters[parameterIdempotency] = ref
	}

	return narrowed
}
