package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/marvinmarnold/mcp-demo/internal/fxapi"
	"github.com/marvinmarnold/mcp-demo/internal/lang"
	"github.com/marvinmarnold/mcp-demo/internal/prompt"
)

// generateInput is the shared argument shape of both code-generation tools.
type generateInput struct {
	Language     string `json:"language"               jsonschema:"Target language: typescript, javascript, python, go, rust, or cpp"`
	IncludeTypes *bool  `json:"includeTypes,omitempty" jsonschema:"Define typed request/response models mirroring the schemas (default true)"`
}

// includeTypes reports the effective flag value; omitted means true.
func (in generateInput) includeTypes() bool {
	return in.IncludeTypes == nil || *in.IncludeTypes
}

type generateOutput struct {
	Language     string `json:"language"`
	EndpointPath string `json:"endpointPath"`
	Code         string `json:"code"`
}

const (
	typedModelsGuidance   = "Define typed request/response models mirroring the schemas in the API description."
	untypedModelsGuidance = "Use plain untyped structures (maps, dictionaries, or objects); do not define extra model types."
)

// generate runs the shared code-generation flow: validate the language,
// assemble the prompt, call the collaborator, and wrap the result.
//
// Invalid arguments are a hard protocol error, returned before any
// collaborator call. Everything downstream fails soft: the error becomes a
// readable tool result rather than a transport fault.
func (h *toolHost) generate(ctx context.Context, endpointPath, guidance string, wrap func(lang.Language, string) string, in generateInput) (*mcp.CallToolResult, generateOutput, error) {
	language, err := lang.Parse(in.Language)
	if err != nil {
		return nil, generateOutput{}, err
	}

	typesGuidance := typedModelsGuidance
	if !in.includeTypes() {
		typesGuidance = untypedModelsGuidance
	}

	assembled, err := prompt.Assemble(h.template, fxapi.Document(), endpointPath, language, typesGuidance, guidance)
	if err != nil {
		return errResult(fmt.Errorf("assembling prompt for %s: %w", endpointPath, err)), generateOutput{}, nil
	}

	code, err := h.llm.Complete(ctx, assembled, h.maxTokens)
	if err != nil {
		return errResult(fmt.Errorf("generating %s client code for %s: %w", language.Display(), endpointPath, err)), generateOutput{}, nil
	}
	if strings.TrimSpace(code) == "" {
		return errResult(fmt.Errorf("generating %s client code for %s: collaborator returned empty output", language.Display(), endpointPath)), generateOutput{}, nil
	}

	return nil, generateOutput{
		Language:     string(language),
		EndpointPath: endpointPath,
		Code:         wrap(language, code),
	}, nil
}
