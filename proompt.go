package proompt

import "context"

// DefaultSeparator is the visual separator placed between consecutive
// sections when a prompt does not choose its own.
const DefaultSeparator = "\n\n"

// Section is one composable unit of prompt text. Render combines provider
// output, tool descriptions, and context text into the section body;
// formatting policy belongs to the concrete section. Render must re-query
// providers on every call (no caching) and let provider errors propagate
// unmodified to its caller.
type Section interface {
	Render(ctx context.Context) (string, error)
}

// Prompt is an ordered composition of Sections into final text. Rendering
// preserves section order and aborts on the first section error, producing
// no partial output.
type Prompt interface {
	Render(ctx context.Context) (string, error)
}

// Named is optionally implemented by sections that carry a display name;
// the logging and recovery middlewares use it when available.
type Named interface {
	Name() string
}

// Layout frames the output of a prompt render: header, one separator
// between consecutive sections, and footer. An empty part is simply omitted.
type Layout struct {
	Header    string
	Separator string
	Footer    string
}
