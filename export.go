package proompt

// ToolDefinition is the function-calling wire shape understood by chat
// completion APIs. Type is always "function".
type ToolDefinition struct {
	Type     string             `yaml:"type" json:"type"`
	Function FunctionDefinition `yaml:"function" json:"function"`
}

// FunctionDefinition describes one callable inside a function-calling payload.
type FunctionDefinition struct {
	Name        string         `yaml:"name" json:"name"`
	Description string         `yaml:"description,omitempty" json:"description,omitempty"`
	Parameters  map[string]any `yaml:"parameters,omitempty" json:"parameters,omitempty"`
}

// Definition exports the tool as a function-calling definition.
func (t *Tool) Definition() ToolDefinition {
	return ToolDefinition{
		Type: "function",
		Function: FunctionDefinition{
			Name:        t.name,
			Description: t.description,
			Parameters:  t.Parameters(),
		},
	}
}

// ExportTools converts tools to function-calling definitions, preserving
// order and skipping nil entries.
func ExportTools(tools []*Tool) []ToolDefinition {
	out := make([]ToolDefinition, 0, len(tools))
	for _, t := range tools {
		if t == nil {
			continue
		}
		out = append(out, t.Definition())
	}
	return out
}
