package proompt

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Toolset is a named collection of tool-like values with insertion-order
// iteration. It is one of the shapes Normalize accepts: normalizing a
// Toolset flattens every entry into canonical descriptors, preserving the
// order entries were added.
type Toolset struct {
	entries *orderedmap.OrderedMap[string, any]
}

// NewToolset creates an empty Toolset.
func NewToolset() *Toolset {
	return &Toolset{entries: orderedmap.New[string, any]()}
}

// Add stores tool under name, replacing any previous entry with the same
// name in place. Returns the set for chaining.
func (s *Toolset) Add(name string, tool any) *Toolset {
	s.entries.Set(name, tool)
	return s
}

// Get returns the value stored under name.
func (s *Toolset) Get(name string) (any, bool) {
	return s.entries.Get(name)
}

// Len returns the number of entries.
func (s *Toolset) Len() int {
	return s.entries.Len()
}

// Names returns entry names in insertion order.
func (s *Toolset) Names() []string {
	out := make([]string, 0, s.entries.Len())
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

// Range calls fn for every entry in insertion order.
func (s *Toolset) Range(fn func(name string, tool any)) {
	for pair := s.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}
