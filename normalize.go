package proompt

import (
	"reflect"
	"slices"
)

// NamedCallable is the foreign single-tool shape: anything carrying its own
// name and description, such as tool types from agent frameworks. The
// foreign object itself becomes the Tool's callable reference unless it
// also implements CallableSource.
type NamedCallable interface {
	Name() string
	Description() string
}

// CallableSource is optionally implemented by foreign tools to expose the
// invocable payload behind the descriptor.
type CallableSource interface {
	Callable() any
}

// NamedToolSource is the foreign collection shape: a mapping from names to
// tool-like values. Go maps carry no iteration order, so entries normalize
// in sorted-name order.
type NamedToolSource interface {
	Tools() map[string]any
}

// shapeAdapter pairs a structural predicate with a conversion to canonical
// *Tool descriptors.
type shapeAdapter struct {
	matches func(input any) bool
	convert func(input any) []*Tool
}

// Recognized external shapes, most specific first. *Tool precedes
// NamedCallable so native descriptors short-circuit instead of being
// wrapped a second time. Normalize walks the list in order; first match wins.
var toolShapes []shapeAdapter

// Assigned in init to break the initialization cycle between toolShapes,
// the convert functions, and Normalize.
func init() {
	toolShapes = []shapeAdapter{
		{matches: isNativeTool, convert: convertNativeTool},
		{matches: isToolset, convert: convertToolset},
		{matches: isToolSource, convert: convertToolSource},
		{matches: isToolSequence, convert: convertToolSequence},
		{matches: isNamedCallable, convert: convertNamedCallable},
	}
}

// Normalize converts one arbitrary value into zero or more canonical Tool
// descriptors. It is total: any input, including nil, unrelated values, and
// foreign objects whose methods panic, produces a result without failing.
// A nil result means the input was absent or unrecognized and should be
// skipped; this silent-skip policy is a documented contract, not an
// accident, so call sites can pass loosely typed tool lists unchecked.
func Normalize(input any) (tools []*Tool) {
	if input == nil || isNilValue(input) {
		return nil
	}
	// A foreign shape's methods may panic; such an input counts as unrecognized.
	defer func() {
		if recover() != nil {
			tools = nil
		}
	}()
	for _, shape := range toolShapes {
		if shape.matches(input) {
			return shape.convert(input)
		}
	}
	return nil
}

func isNativeTool(input any) bool {
	_, ok := input.(*Tool)
	return ok
}

func convertNativeTool(input any) []*Tool {
	return []*Tool{input.(*Tool)}
}

func isToolset(input any) bool {
	_, ok := input.(*Toolset)
	return ok
}

func convertToolset(input any) []*Tool {
	var out []*Tool
	input.(*Toolset).Range(func(_ string, tool any) {
		out = append(out, Normalize(tool)...)
	})
	return out
}

func isToolSource(input any) bool {
	_, ok := input.(NamedToolSource)
	return ok
}

func convertToolSource(input any) []*Tool {
	entries := input.(NamedToolSource).Tools()
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	slices.Sort(names)
	var out []*Tool
	for _, name := range names {
		out = append(out, Normalize(entries[name])...)
	}
	return out
}

// isToolSequence matches slices and arrays except byte slices, so an
// already-normalized []*Tool (or a mixed []any) fed back in is flattened
// again rather than dropped.
func isToolSequence(input any) bool {
	rv := reflect.ValueOf(input)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return false
	}
	return rv.Type().Elem().Kind() != reflect.Uint8
}

func convertToolSequence(input any) []*Tool {
	rv := reflect.ValueOf(input)
	var out []*Tool
	for i := 0; i < rv.Len(); i++ {
		out = append(out, Normalize(rv.Index(i).Interface())...)
	}
	return out
}

func isNamedCallable(input any) bool {
	_, ok := input.(NamedCallable)
	return ok
}

func convertNamedCallable(input any) []*Tool {
	nc := input.(NamedCallable)
	callable := input
	if cs, ok := input.(CallableSource); ok {
		if c := cs.Callable(); c != nil {
			callable = c
		}
	}
	name := nc.Name()
	if name == "" {
		name = defaultToolName
	}
	description := nc.Description()
	if description == "" {
		description = defaultToolDescription
	}
	return []*Tool{{name: name, description: description, callable: callable}}
}

// isNilValue reports whether v is a nil pointer, map, slice, func, or chan
// hiding behind a non-nil interface value.
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
