package proompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// providerSection renders every provider result; used for freshness and
// error-propagation tests.
type providerSection struct {
	*BaseSection
}

func (s *providerSection) Render(ctx context.Context) (string, error) {
	var parts []string
	for _, p := range s.Providers() {
		v, err := p.Run(ctx)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("%s=%v", p.Name(), v))
	}
	return strings.Join(parts, "; "), nil
}

func TestPrompt_OrderPreservation(t *testing.T) {
	p := NewTextPrompt(WithSections(
		&StaticSection{Body: "alpha"},
		&StaticSection{Body: "beta"},
		&StaticSection{Body: "gamma"},
	))
	out, err := p.Render(context.Background())
	require.NoError(t, err)

	first := strings.Index(out, "alpha")
	second := strings.Index(out, "beta")
	third := strings.Index(out, "gamma")
	require.NotEqual(t, -1, first)
	require.NotEqual(t, -1, second)
	require.NotEqual(t, -1, third)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestPrompt_LayoutPlacement(t *testing.T) {
	p := NewTextPrompt(
		WithHeader("# HEAD\n\n"),
		WithSeparator("\n---\n"),
		WithFooter("\n\n# FOOT"),
		WithSections(&StaticSection{Body: "one"}, &StaticSection{Body: "two"}),
	)
	out, err := p.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "# HEAD\n\none\n---\ntwo\n\n# FOOT", out)
}

func TestPrompt_DefaultSeparator(t *testing.T) {
	p := NewTextPrompt(WithSections(&StaticSection{Body: "one"}, &StaticSection{Body: "two"}))
	out, err := p.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "one\n\ntwo", out)
}

func TestPrompt_EmptySectionList(t *testing.T) {
	p := NewTextPrompt(WithHeader("H"), WithFooter("F"))
	out, err := p.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "HF", out)
}

func TestPrompt_AddSectionsSkipsNil(t *testing.T) {
	p := NewPrompt()
	var typedNil *StaticSection
	p.AddSections(nil, typedNil, &StaticSection{Body: "kept"})
	assert.Len(t, p.Sections(), 1)
}

func TestPrompt_SectionErrorAbortsWithoutPartialOutput(t *testing.T) {
	boom := errors.New("provider exploded")
	failing := &providerSection{BaseSection: NewSection(&stubContext{}, nil, &stubProvider{
		name: "bad",
		fn:   func(context.Context) (any, error) { return nil, boom },
	})}
	p := NewTextPrompt(WithSections(&StaticSection{Body: "fine"}, failing))

	out, err := p.Render(context.Background())
	require.Error(t, err)
	// Provider errors pass through unmodified.
	require.ErrorIs(t, err, boom)
	assert.Empty(t, out)
}

func TestPrompt_RerenderFreshness(t *testing.T) {
	n := 0
	counter := &stubProvider{name: "count", fn: func(context.Context) (any, error) {
		n++
		return n, nil
	}}
	sec := &providerSection{BaseSection: NewSection(&stubContext{}, nil, counter)}
	p := NewTextPrompt(WithSections(sec))

	first, err := p.Render(context.Background())
	require.NoError(t, err)
	second, err := p.Render(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "count=1", first)
	assert.Equal(t, "count=2", second)
	assert.NotEqual(t, first, second)
}

func TestPrompt_SectionsReturnsCopy(t *testing.T) {
	p := NewPrompt(&StaticSection{Body: "only"})
	got := p.Sections()
	got[0] = nil
	assert.NotNil(t, p.Sections()[0])
}
