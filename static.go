package proompt

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StaticSection renders fixed text: an optional markdown title followed by
// the body. It needs no context, providers, or tools, and is handy for the
// boilerplate parts of a prompt (role statements, output instructions).
type StaticSection struct {
	Title string
	Body  string
}

// Name returns the section title.
func (s *StaticSection) Name() string { return s.Title }

// Render returns "## Title" and the body separated by a blank line,
// omitting whichever part is empty.
func (s *StaticSection) Render(_ context.Context) (string, error) {
	switch {
	case s.Title == "":
		return s.Body, nil
	case s.Body == "":
		return "## " + s.Title, nil
	default:
		return "## " + s.Title + "\n\n" + s.Body, nil
	}
}

// SectionDef is the YAML shape for a declaratively defined static section.
type SectionDef struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// ParseSectionDefs decodes a YAML list of section definitions into static
// sections, preserving document order. Returns an error wrapping ErrBadDefs
// when the document does not decode.
func ParseSectionDefs(data []byte) ([]Section, error) {
	var defs []SectionDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDefs, err)
	}
	out := make([]Section, 0, len(defs))
	for _, def := range defs {
		out = append(out, &StaticSection{Title: def.Title, Body: def.Body})
	}
	return out, nil
}

var (
	_ Section = (*StaticSection)(nil)
	_ Named   = (*StaticSection)(nil)
)
