package fxapi

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// Signaled states of extraction. Callers treat both as fatal to the request
// but want a diagnosable message rather than a panic.
var (
	ErrEndpointNotFound  = errors.New("endpoint not found in API description")
	ErrNoSupportedMethod = errors.New("endpoint defines no supported method")
)

// methodPriority is the fixed order used to choose an operation when a path
// item defines more than one method.
var methodPriority = []string{http.MethodPost, http.MethodGet, http.MethodPut, http.MethodDelete}

// OperationDetails is the subset of an operation the prompt assembler needs.
// String and slice fields default to empty rather than nil-ing out when the
// source operation omits them.
type OperationDetails struct {
	Method        string
	Summary       string
	Description   string
	OperationID   string
	RequestSchema *openapi3.SchemaRef
	Responses     *openapi3.Responses
	Parameters    openapi3.Parameters
	Tags          []string
}

// ExtractOperation locates endpointPath in the document and returns the
// details of its preferred operation. The error wraps ErrEndpointNotFound or
// ErrNoSupportedMethod so callers can distinguish the two states.
func ExtractOperation(doc *openapi3.T, endpointPath string) (*OperationDetails, error) {
	item := doc.Paths.Value(endpointPath)
	if item == nil {
		return nil, fmt.Errorf("%w: %s", ErrEndpointNotFound, endpointPath)
	}

	var method string
	var op *openapi3.Operation
	for _, m := range methodPriority {
		if candidate := item.GetOperation(m); candidate != nil {
			method, op = m, candidate
			break
		}
	}
	if op == nil {
		return nil, fmt.Errorf("%w: %s", ErrNoSupportedMethod, endpointPath)
	}

	details := &OperationDetails{
		Method:      method,
		Summary:     op.Summary,
		Description: op.Description,
		OperationID: op.OperationID,
		Responses:   op.Responses,
		Parameters:  op.Parameters,
		Tags:        op.Tags,
	}
	if details.Parameters == nil {
		details.Parameters = openapi3.Parameters{}
	}
	if details.Tags == nil {
		details.Tags = []string{}
	}
	if op.RequestBody != nil && op.RequestBody.Value != nil {
		if media := op.RequestBody.Value.Content.Get("application/json"); media != nil {
			details.RequestSchema = media.Schema
		}
	}
	return details, nil
}
