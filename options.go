package proompt

// toolOptions hold optional tool settings (identity overrides, schema).
type toolOptions struct {
	name        string
	description string
	schemaFn    func() (map[string]any, error)
}

// ToolOption configures a Tool (e.g. WithName, WithDescription).
type ToolOption func(*toolOptions)

// WithName overrides the name derived from the callable's function symbol.
func WithName(name string) ToolOption {
	return func(o *toolOptions) {
		o.name = name
	}
}

// WithDescription sets the human-readable purpose of the tool.
func WithDescription(description string) ToolOption {
	return func(o *toolOptions) {
		o.description = description
	}
}

// PromptOption configures a TextPrompt.
type PromptOption func(*promptOptions)

type promptOptions struct {
	layout   Layout
	sections []Section
}

// WithHeader sets the text placed before the first section.
func WithHeader(header string) PromptOption {
	return func(o *promptOptions) {
		o.layout.Header = header
	}
}

// WithSeparator sets the text placed between consecutive sections.
// Overrides DefaultSeparator; pass "" to join sections directly.
func WithSeparator(separator string) PromptOption {
	return func(o *promptOptions) {
		o.layout.Separator = separator
	}
}

// WithFooter sets the text placed after the last section.
func WithFooter(footer string) PromptOption {
	return func(o *promptOptions) {
		o.layout.Footer = footer
	}
}

// WithLayout replaces the whole layout at once, including the separator.
func WithLayout(layout Layout) PromptOption {
	return func(o *promptOptions) {
		o.layout = layout
	}
}

// WithSections sets the initial ordered section list.
func WithSections(sections ...Section) PromptOption {
	return func(o *promptOptions) {
		o.sections = sections
	}
}
