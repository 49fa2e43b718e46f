package proompt

import (
	"slices"
	"strings"
)

// BaseSection is the embeddable ownership core for concrete sections: it
// holds the context reference, the normalized tool list, and the provider
// list. It deliberately does not implement Section; a concrete section
// embeds it and defines Render, so an unimplemented formatter is a compile
// error rather than a runtime fault.
//
// Mutation (AddTools, AddProviders, SetContext) is not safe for concurrent
// use with Render; callers must serialize.
type BaseSection struct {
	context   Context
	tools     []*Tool
	providers []Provider
}

// NewSection creates a section core. c may be nil at construction but must
// be set before Context is read. Every element of tools goes through
// Normalize and providers are filtered to values satisfying Provider;
// anything unrecognized in either list is silently dropped.
func NewSection(c Context, tools []any, providers ...any) *BaseSection {
	s := &BaseSection{}
	if c != nil && !isNilValue(c) {
		s.context = c
	}
	s.AddTools(tools...)
	s.AddProviders(providers...)
	return s
}

// AddTools normalizes each argument independently and appends the resulting
// descriptors to the tail of the tool list. Unrecognized or nil arguments
// contribute nothing; duplicates are permitted.
func (s *BaseSection) AddTools(tools ...any) {
	for _, t := range tools {
		s.tools = append(s.tools, Normalize(t)...)
	}
}

// AddProviders appends the arguments that satisfy Provider and silently
// drops the rest, so heterogeneous call-site lists need no pre-filtering.
func (s *BaseSection) AddProviders(providers ...any) {
	for _, p := range providers {
		if prov, ok := p.(Provider); ok && !isNilValue(prov) {
			s.providers = append(s.providers, prov)
		}
	}
}

// Tools returns the normalized tool list in declaration order.
func (s *BaseSection) Tools() []*Tool {
	return slices.Clone(s.tools)
}

// ToolByName returns the first tool with the given name.
func (s *BaseSection) ToolByName(name string) (*Tool, bool) {
	for _, t := range s.tools {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

// Providers returns the provider list in declaration order.
func (s *BaseSection) Providers() []Provider {
	return slices.Clone(s.providers)
}

// Context returns the bound context. Reading before one was supplied is a
// wiring mistake and fails with a ConfigError wrapping ErrNoContext; the
// context is never silently defaulted.
func (s *BaseSection) Context() (Context, error) {
	if s.context == nil {
		return nil, &ConfigError{Reason: "section context was never set", Err: ErrNoContext}
	}
	return s.context, nil
}

// SetContext binds c to the section. Nil (including a typed nil) fails with
// a ConfigError wrapping ErrNilContext.
func (s *BaseSection) SetContext(c Context) error {
	if c == nil || isNilValue(c) {
		return &ConfigError{Reason: "cannot set a nil context", Err: ErrNilContext}
	}
	s.context = c
	return nil
}

// RenderTools returns the tool list rendered one per line, in order.
func (s *BaseSection) RenderTools() string {
	lines := make([]string, 0, len(s.tools))
	for _, t := range s.tools {
		lines = append(lines, t.Render())
	}
	return strings.Join(lines, "\n")
}
