package testutil

import (
	"context"
	"fmt"
	"strings"

	"github.com/Burhan-Q/proompt"
)

// EchoSection is a minimal concrete Section for tests: it renders the
// context text, the tool list, and every provider result with fmt verbs,
// re-running providers on each call.
type EchoSection struct {
	*proompt.BaseSection
}

// NewEchoSection builds an EchoSection over a fresh section core.
func NewEchoSection(c proompt.Context, tools []any, providers ...any) *EchoSection {
	return &EchoSection{BaseSection: proompt.NewSection(c, tools, providers...)}
}

// Render produces the section body. Reading an unset context or a failing
// provider fails the render.
func (s *EchoSection) Render(ctx context.Context) (string, error) {
	c, err := s.Context()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString(c.Render())
	if tools := s.RenderTools(); tools != "" {
		b.WriteString("\n\nTools:\n")
		b.WriteString(tools)
	}
	for _, p := range s.Providers() {
		v, err := p.Run(ctx)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "\n\n%s: %v", p.Name(), v)
	}
	return b.String(), nil
}

var _ proompt.Section = (*EchoSection)(nil)
