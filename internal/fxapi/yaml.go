package fxapi

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v4"
)

// MarshalYAML renders a document as YAML with sorted map keys, going through
// the document's canonical JSON form. Output is deterministic: marshaling the
// same document twice yields identical bytes.
func MarshalYAML(doc *openapi3.T) ([]byte, error) {
	data, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("marshaling document to JSON: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("rebuilding document tree: %w", err)
	}
	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("marshaling document to YAML: %w", err)
	}
	return out, nil
}
