// Package fxapi holds the static OpenAPI description of the FX payments API
// that the code-generation tools describe, plus the endpoint detail extraction
// and per-endpoint narrowing used to build prompts.
//
// The description is data, not behavior: nothing in this module ever calls
// the payments API. The document is built once and shared read-only across
// all tool invocations.
package fxapi

import (
	"net/http"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
)

// Paths of the two supported endpoints.
const (
	QuotesPath   = "/quotes"
	PaymentsPath = "/payments"
)

// Component names referenced throughout the description.
const (
	securitySchemeBearer  = "BearerAuth"
	parameterIdempotency  = "IdempotencyKey"
	headerRateLimitLimit  = "RateLimitLimit"
	headerRateLimitRemain = "RateLimitRemaining"
	headerRateLimitReset  = "RateLimitReset"
)

var (
	buildOnce sync.Once
	document  *openapi3.T
)

// Document returns the shared API description. The returned document is
// immutable by convention: callers must not modify it.
func Document() *openapi3.T {
	buildOnce.Do(func() {
		document = build()
	})
	return document
}

func build() *openapi3.T {
	schemas := buildSchemas()
	responses := buildErrorResponses(schemas)
	headers := buildRateLimitHeaders()
	idempotencyKey := buildIdempotencyKeyParameter()

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "FX Payments API",
			Version:     "1.0.0",
			Description: "Create locked foreign-exchange quotes and submit payments against them.",
		},
		Servers: openapi3.Servers{
			&openapi3.Server{URL: "https://api.fxpayments.example.com/v1", Description: "Production"},
			&openapi3.Server{URL: "https://sandbox.fxpayments.example.com/v1", Description: "Sandbox"},
		},
		Security: openapi3.SecurityRequirements{
			openapi3.NewSecurityRequirement().Authenticate(securitySchemeBearer),
		},
		Paths: openapi3.NewPaths(),
		Components: &openapi3.Components{
			Schemas: schemas,
			Parameters: openapi3.ParametersMap{
				parameterIdempotency: {Value: idempotencyKey},
			},
			Responses: responses,
			SecuritySchemes: openapi3.SecuritySchemes{
				securitySchemeBearer: {Value: &openapi3.SecurityScheme{
					Type:        "http",
					Scheme:      "bearer",
					Description: "API key issued from the dashboard, sent as `Authorization: Bearer <key>`.",
				}},
			},
			Headers: headers,
		},
	}

	doc.Paths.Set(QuotesPath, &openapi3.PathItem{
		Post: buildCreateQuoteOperation(schemas, responses, headers, idempotencyKey),
	})
	doc.Paths.Set(PaymentsPath, &openapi3.PathItem{
		Post: buildSendPaymentOperation(schemas, responses, headers, idempotencyKey),
	})

	return doc
}

func buildSchemas() openapi3.Schemas {
	unixTime := openapi3.NewInt64Schema()
	unixTime.Description = "Seconds since the Unix epoch, UTC."
	unixTime.Example = 1700000000

	amount := openapi3.NewObjectSchema().
		WithProperty("currency", openapi3.NewStringSchema().
			WithPattern("^[A-Z]{3}$").
			WithFormat("iso-4217")).
		WithProperty("value", openapi3.NewStringSchema().
			WithPattern(`^\d+(\.\d{1,4})?$`))
	amount.Description = "A monetary amount. The value is a decimal string to avoid floating-point rounding."
	amount.Required = []string{"currency", "value"}
	amount.Properties["currency"].Value.Description = "ISO 4217 currency code, e.g. USD."
	amount.Properties["value"].Value.Description = "Decimal amount as a string, e.g. \"150.00\"."

	apiError := openapi3.NewObjectSchema().
		WithProperty("code", openapi3.NewStringSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("details", openapi3.NewObjectSchema())
	apiError.Description = "Machine-readable error returned on every non-2xx response."
	apiError.Required = []string{"code", "message"}
	apiError.Properties["code"].Value.Description = "Stable error code, e.g. invalid_currency_pair or quote_expired."
	apiError.Properties["message"].Value.Description = "Human-readable explanation of the failure."
	apiError.Properties["details"].Value.Description = "Optional field-level validation details."

	quoteRequest := openapi3.NewObjectSchema().
		WithProperty("from_currency", openapi3.NewStringSchema().WithPattern("^[A-Z]{3}$")).
		WithProperty("to_currency", openapi3.NewStringSchema().WithPattern("^[A-Z]{3}$")).
		WithProperty("from_amount", openapi3.NewStringSchema().WithPattern(`^\d+(\.\d{1,4})?$`)).
		WithProperty("to_amount", openapi3.NewStringSchema().WithPattern(`^\d+(\.\d{1,4})?$`))
	quoteRequest.Description = "Request for a locked FX quote. Exactly one of from_amount and to_amount must be set; the other side is derived from the locked rate."
	quoteRequest.Required = []string{"to_currency"}
	quoteRequest.Properties["from_currency"].Value.Description = "Source currency. Defaults to the account's settlement currency when omitted."
	quoteRequest.Properties["to_currency"].Value.Description = "Destination currency. Required."
	quoteRequest.Properties["from_amount"].Value.Description = "Amount to sell, in from_currency units."
	quoteRequest.Properties["to_amount"].Value.Description = "Amount the recipient must receive, in to_currency units."
	quoteRequest.OneOf = openapi3.SchemaRefs{
		{Value: &openapi3.Schema{Required: []string{"from_amount"}}},
		{Value: &openapi3.Schema{Required: []string{"to_amount"}}},
	}

	quoteData := openapi3.NewObjectSchema()
	quoteData.Description = "A locked FX quote. The rate is guaranteed until expires_at."
	quoteData.WithProperty("id", openapi3.NewStringSchema())
	quoteData.Properties["id"].Value.Description = "Quote identifier, prefixed qt_."
	quoteData.WithProperty("rate", openapi3.NewStringSchema())
	quoteData.Properties["rate"].Value.Description = "Locked exchange rate as a decimal string."
	quoteData.Required = []string{"id", "rate", "from_amount", "to_amount", "expires_at"}

	paymentData := openapi3.NewObjectSchema()
	paymentData.Description = "A payment submitted against a locked quote. Lifecycle: created, then settled or rejected."
	paymentData.WithProperty("id", openapi3.NewStringSchema())
	paymentData.Properties["id"].Value.Description = "Payment identifier, prefixed pay_."
	paymentData.WithProperty("quote_id", openapi3.NewStringSchema())
	paymentData.Properties["quote_id"].Value.Description = "The locked quote this payment consumed."
	paymentData.WithProperty("status", openapi3.NewStringSchema().WithEnum("created", "settled", "rejected"))
	paymentData.Required = []string{"id", "quote_id", "status", "created_at"}

	destination := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("iban", openapi3.NewStringSchema())
	destination.Description = "Beneficiary account receiving the converted funds."
	destination.Required = []string{"name", "iban"}

	paymentRequest := openapi3.NewObjectSchema().
		WithProperty("quote_id", openapi3.NewStringSchema()).
		WithProperty("reference", openapi3.NewStringSchema().WithMaxLength(140))
	paymentRequest.Description = "Submit a payment for a previously created, unexpired quote."
	paymentRequest.Required = []string{"quote_id", "destination"}
	paymentRequest.Properties["quote_id"].Value.Description = "Identifier of the locked quote to execute, prefixed qt_."
	paymentRequest.Properties["reference"].Value.Description = "Free-text reference shown on the beneficiary's statement."
	paymentRequest.WithProperty("destination", destination)

	eventEnvelope := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewStringSchema()).
		WithProperty("data", openapi3.NewObjectSchema())
	eventEnvelope.Description = "Uniform wrapper around domain events. Successful create operations return the resource inside data."
	eventEnvelope.Required = []string{"id", "created_at", "type", "data"}
	eventEnvelope.Properties["id"].Value.Description = "Event identifier, prefixed evt_."
	eventEnvelope.WithProperty("type", openapi3.NewStringSchema().
		WithEnum("quote.created", "payment.created", "payment.settled", "payment.rejected"))
	eventEnvelope.Properties["data"].Value.Description = "The quote or payment resource that triggered the event."

	schemas := openapi3.Schemas{
		"UnixTime":       {Value: unixTime},
		"Amount":         {Value: amount},
		"Error":          {Value: apiError},
		"QuoteRequest":   {Value: quoteRequest},
		"QuoteData":      {Value: quoteData},
		"PaymentRequest": {Value: paymentRequest},
		"PaymentData":    {Value: paymentData},
		"EventEnvelope":  {Value: eventEnvelope},
	}

	// Cross-references between components, added after the map exists so the
	// refs can carry resolved values.
	quoteData.Properties["from_amount"] = schemaRef(schemas, "Amount")
	quoteData.Properties["to_amount"] = schemaRef(schemas, "Amount")
	quoteData.Properties["expires_at"] = schemaRef(schemas, "UnixTime")
	quoteData.Properties["created_at"] = schemaRef(schemas, "UnixTime")
	paymentData.Properties["created_at"] = schemaRef(schemas, "UnixTime")
	paymentData.Properties["settled_at"] = schemaRef(schemas, "UnixTime")
	eventEnvelope.Properties["created_at"] = schemaRef(schemas, "UnixTime")

	return schemas
}

// schemaRef builds a $ref to a named component schema, carrying the resolved
// value so the document validates without a loader pass.
func schemaRef(schemas openapi3.Schemas, name string) *openapi3.SchemaRef {
	return openapi3.NewSchemaRef("#/components/schemas/"+name, schemas[name].Value)
}

func errorResponse(schemas openapi3.Schemas, description string) *openapi3.Response {
	return openapi3.NewResponse().
		WithDescription(description).
		WithJSONSchemaRef(schemaRef(schemas, "Error"))
}

func buildErrorResponses(schemas openapi3.Schemas) openapi3.ResponseBodies {
	return openapi3.ResponseBodies{
		"BadRequest":          {Value: errorResponse(schemas, "The request body or headers are malformed.")},
		"Unauthorized":        {Value: errorResponse(schemas, "The bearer token is missing, invalid, or revoked.")},
		"Conflict":            {Value: errorResponse(schemas, "The referenced quote has expired or was already consumed by another payment.")},
		"UnprocessableEntity": {Value: errorResponse(schemas, "The request is well-formed but violates a business rule, e.g. an unsupported currency pair.")},
		"TooManyRequests":     {Value: errorResponse(schemas, "Rate limit exceeded. Honor the rate-limit headers and retry with backoff.")},
	}
}

func buildRateLimitHeaders() openapi3.Headers {
	header := func(description string) *openapi3.HeaderRef {
		h := &openapi3.Header{}
		h.Description = description
		h.Schema = openapi3.NewIntegerSchema().NewRef()
		return &openapi3.HeaderRef{Value: h}
	}
	return openapi3.Headers{
		headerRateLimitLimit:  header("Request quota for the current window."),
		headerRateLimitRemain: header("Requests remaining in the current window."),
		headerRateLimitReset:  header("Unix time at which the current window resets."),
	}
}

func buildIdempotencyKeyParameter() *openapi3.Parameter {
	p := openapi3.NewHeaderParameter("Idempotency-Key").
		WithRequired(true).
		WithSchema(openapi3.NewStringSchema().WithMaxLength(255))
	p.Description = "Caller-supplied token. A retried request with the same key returns the original result instead of re-executing."
	return p
}

func rateLimitHeaderRefs(headers openapi3.Headers) openapi3.Headers {
	refs := openapi3.Headers{}
	for _, name := range []string{headerRateLimitLimit, headerRateLimitRemain, headerRateLimitReset} {
		refs[name] = &openapi3.HeaderRef{
			Ref:   "#/components/headers/" + name,
			Value: headers[name].Value,
		}
	}
	return refs
}

func idempotencyKeyRef(p *openapi3.Parameter) *openapi3.ParameterRef {
	return &openapi3.ParameterRef{
		Ref:   "#/components/parameters/" + parameterIdempotency,
		Value: p,
	}
}

func errorResponseRef(responses openapi3.ResponseBodies, name string) *openapi3.ResponseRef {
	return &openapi3.ResponseRef{
		Ref:   "#/components/responses/" + name,
		Value: responses[name].Value,
	}
}

func buildCreateQuoteOperation(schemas openapi3.Schemas, responses openapi3.ResponseBodies, headers openapi3.Headers, idempotencyKey *openapi3.Parameter) *openapi3.Operation {
	created := openapi3.NewResponse().
		WithDescription("Quote created. The event envelope wraps a QuoteData resource.").
		WithJSONSchemaRef(schemaRef(schemas, "EventEnvelope"))
	created.Headers = rateLimitHeaderRefs(headers)

	return &openapi3.Operation{
		OperationID: "createQuote",
		Summary:     "Create a locked FX quote",
		Description: "Locks an exchange rate for a currency pair. The quote must be consumed by a payment before expires_at; expired quotes cannot be executed.",
		Tags:        []string{"quotes"},
		Parameters:  openapi3.Parameters{idempotencyKeyRef(idempotencyKey)},
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchemaRef(schemaRef(schemas, "QuoteRequest")),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusCreated, &openapi3.ResponseRef{Value: created}),
			openapi3.WithStatus(http.StatusBadRequest, errorResponseRef(responses, "BadRequest")),
			openapi3.WithStatus(http.StatusUnauthorized, errorResponseRef(responses, "Unauthorized")),
			openapi3.WithStatus(http.StatusUnprocessableEntity, errorResponseRef(responses, "UnprocessableEntity")),
			openapi3.WithStatus(http.StatusTooManyRequests, errorResponseRef(responses, "TooManyRequests")),
		),
	}
}

func buildSendPaymentOperation(schemas openapi3.Schemas, responses openapi3.ResponseBodies, headers openapi3.Headers, idempotencyKey *openapi3.Parameter) *openapi3.Operation {
	created := openapi3.NewResponse().
		WithDescription("Payment accepted. The event envelope wraps a PaymentData resource in status created; settlement is reported asynchronously as payment.settled or payment.rejected.").
		WithJSONSchemaRef(schemaRef(schemas, "EventEnvelope"))
	created.Headers = rateLimitHeaderRefs(headers)

	return &openapi3.Operation{
		OperationID: "sendPayment",
		Summary:     "Submit a payment against a locked quote",
		Description: "Executes a previously created quote by paying the converted amount to the destination account. Each quote can be consumed at most once.",
		Tags:        []string{"payments"},
		Parameters:  openapi3.Parameters{idempotencyKeyRef(idempotencyKey)},
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchemaRef(schemaRef(schemas, "PaymentRequest")),
		},
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(http.StatusCreated, &openapi3.ResponseRef{Value: created}),
			openapi3.WithStatus(http.StatusBadRequest, errorResponseRef(responses, "BadRequest")),
			openapi3.WithStatus(http.StatusUnauthorized, errorResponseRef(responses, "Unauthorized")),
			openapi3.WithStatus(http.StatusConflict, errorResponseRef(responses, "Conflict")),
			openapi3.WithStatus(http.StatusUnprocessableEntity, errorResponseRef(responses, "UnprocessableEntity")),
			openapi3.WithStatus(http.StatusTooManyRequests, errorResponseRef(responses, "TooManyRequests")),
		),
	}
}
