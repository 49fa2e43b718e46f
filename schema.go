package proompt

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

var errNilSchema = errors.New("schema reflection returned nil")

// ParametersFor attaches an argument schema generated from struct type T by
// reflection, driven by the same struct tags that drive JSON marshaling.
// The schema is descriptive metadata for the rendered prompt and for
// function-calling exports; this package never validates arguments against
// it, since tools are never invoked here.
func ParametersFor[T any]() ToolOption {
	return func(o *toolOptions) {
		o.schemaFn = schemaFor[T]
	}
}

// WithParameters attaches a caller-supplied JSON Schema map describing the
// tool's arguments. The map is deep-copied; the caller's map is never
// mutated and later changes to it do not leak into the tool.
func WithParameters(schema map[string]any) ToolOption {
	return func(o *toolOptions) {
		o.schemaFn = func() (map[string]any, error) {
			if schema == nil {
				return nil, fmt.Errorf("parameter schema map must not be nil")
			}
			return copySchemaMap(schema)
		}
	}
}

// schemaFor produces a JSON Schema map for type T, with id/$id stripped so
// the schema stays portable inside prompt payloads.
func schemaFor[T any]() (map[string]any, error) {
	schema, err := jsonschema.For[T](&jsonschema.ForOptions{})
	if err != nil {
		return nil, err
	}
	if schema == nil {
		return nil, errNilSchema
	}
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, err
	}
	var schemaMap map[string]any
	if err := json.Unmarshal(data, &schemaMap); err != nil {
		return nil, err
	}
	stripSchemaIDs(schemaMap)
	return schemaMap, nil
}

// copySchemaMap deep-copies a schema map via a JSON round trip.
func copySchemaMap(schemaMap map[string]any) (map[string]any, error) {
	data, err := json.Marshal(schemaMap)
	if err != nil {
		return nil, fmt.Errorf("failed to deep copy schema map: %w", err)
	}
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to deep copy schema map: %w", err)
	}
	return out, nil
}

// walkSchema recursively visits every map node in the schema tree
// (including $defs and definitions).
func walkSchema(schemaMap map[string]any, visit func(map[string]any)) {
	if schemaMap == nil {
		return
	}
	visit(schemaMap)
	for _, val := range schemaMap {
		switch v := val.(type) {
		case map[string]any:
			walkSchema(v, visit)
		case []any:
			for _, item := range v {
				if m, ok := item.(map[string]any); ok {
					walkSchema(m, visit)
				}
			}
		}
	}
}

// stripSchemaIDs removes id and $id from every node of the schema.
func stripSchemaIDs(schemaMap map[string]any) {
	walkSchema(schemaMap, func(n map[string]any) {
		delete(n, "id")
		delete(n, "$id")
	})
}
