package proompt

import (
	"context"
	"slices"
	"strings"
)

// BasePrompt is the embeddable section-list core for concrete prompts. It
// does not implement Prompt; a concrete prompt embeds it and defines
// Render, typically by delegating to RenderSections with its own Layout.
type BasePrompt struct {
	sections    []Section
	middlewares []Middleware
}

// NewPrompt creates a prompt core from an ordered section list (empty is fine).
func NewPrompt(sections ...Section) *BasePrompt {
	p := &BasePrompt{}
	p.AddSections(sections...)
	return p
}

// AddSections appends sections in order; nil entries are silently skipped.
func (p *BasePrompt) AddSections(sections ...Section) {
	for _, sec := range sections {
		if sec == nil || isNilValue(sec) {
			continue
		}
		p.sections = append(p.sections, sec)
	}
}

// Sections returns the section list in render order.
func (p *BasePrompt) Sections() []Section {
	return slices.Clone(p.sections)
}

// Use stores middlewares applied around every section at render time, onion
// order: the first middleware is outermost. Calling Use again replaces the
// whole chain.
func (p *BasePrompt) Use(middlewares ...Middleware) {
	p.middlewares = middlewares
}

// RenderSections renders every section in order and assembles
// header + join(section texts, separator) + footer. The first section error
// aborts the render and returns no partial output. Rendering mutates
// nothing; repeated calls re-run every provider.
func (p *BasePrompt) RenderSections(ctx context.Context, layout Layout) (string, error) {
	var b strings.Builder
	b.WriteString(layout.Header)
	for i, sec := range p.sections {
		if i > 0 {
			b.WriteString(layout.Separator)
		}
		for j := len(p.middlewares) - 1; j >= 0; j-- {
			sec = p.middlewares[j](sec)
		}
		text, err := sec.Render(ctx)
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}
	b.WriteString(layout.Footer)
	return b.String(), nil
}

// TextPrompt is a ready-made Prompt that renders its sections with a fixed
// Layout. Use it directly or embed BasePrompt for custom assembly.
type TextPrompt struct {
	BasePrompt
	layout Layout
}

// NewTextPrompt builds a TextPrompt. The separator defaults to
// DefaultSeparator; header and footer default to empty.
func NewTextPrompt(opts ...PromptOption) *TextPrompt {
	o := promptOptions{layout: Layout{Separator: DefaultSeparator}}
	for _, opt := range opts {
		opt(&o)
	}
	p := &TextPrompt{layout: o.layout}
	p.AddSections(o.sections...)
	return p
}

// Layout returns the layout the prompt renders with.
func (p *TextPrompt) Layout() Layout { return p.layout }

// Render assembles the final prompt text.
func (p *TextPrompt) Render(ctx context.Context) (string, error) {
	return p.RenderSections(ctx, p.layout)
}

var _ Prompt = (*TextPrompt)(nil)
