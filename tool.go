package proompt

import (
	"fmt"
	"maps"
	"reflect"
	"runtime"
	"strings"
)

// Defaults applied when a tool's identity cannot be derived from its callable.
const (
	defaultToolName        = "tool"
	defaultToolDescription = "no description provided"
)

// Tool is the canonical descriptor of a callable capability surfaced to an
// LLM: a stable name, a human-readable description, and a borrowed reference
// to the underlying callable. The callable is never invoked by this package;
// execution belongs to whoever consumes the rendered prompt. A Tool is
// immutable after construction.
type Tool struct {
	name        string
	description string
	callable    any
	params      map[string]any
}

// NewTool builds a Tool descriptor for fn. The name defaults to the function
// symbol (via runtime.FuncForPC) and the description to a placeholder, so
// both are always non-empty; override with WithName / WithDescription.
// Returns an error if fn is nil or parameter schema generation fails.
func NewTool(fn any, opts ...ToolOption) (*Tool, error) {
	if fn == nil || isNilValue(fn) {
		return nil, fmt.Errorf("tool callable must not be nil")
	}
	var o toolOptions
	for _, opt := range opts {
		opt(&o)
	}
	var params map[string]any
	if o.schemaFn != nil {
		var err error
		params, err = o.schemaFn()
		if err != nil {
			return nil, fmt.Errorf("failed to build tool parameter schema: %w", err)
		}
	}
	name := o.name
	if name == "" {
		name = callableName(fn)
	}
	if name == "" {
		name = defaultToolName
	}
	description := o.description
	if description == "" {
		description = defaultToolDescription
	}
	return &Tool{name: name, description: description, callable: fn, params: params}, nil
}

func (t *Tool) Name() string        { return t.name }
func (t *Tool) Description() string { return t.description }

// Callable returns the borrowed reference to the underlying callable.
// Invoking it is the caller's responsibility.
func (t *Tool) Callable() any { return t.callable }

// Parameters returns a shallow copy of the JSON Schema for the tool's
// arguments, or nil when none was attached. Nested maps are shared;
// callers must not mutate them.
func (t *Tool) Parameters() map[string]any {
	if t.params == nil {
		return nil
	}
	return maps.Clone(t.params)
}

// Render returns the stable one-line textual form used when listing the
// tool inside a section: "name: description".
func (t *Tool) Render() string {
	return t.name + ": " + t.description
}

// callableName derives a display name from the function symbol of fn.
// Method values lose their "-fm" suffix and closures reduce to "funcN".
// Returns "" when fn is not a named function.
func callableName(fn any) string {
	v := reflect.ValueOf(fn)
	if !v.IsValid() || v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	name := runtime.FuncForPC(v.Pointer()).Name()
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimSuffix(name, "-fm")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	return name
}
