// Package testutil provides test helpers for proompt (e.g. MockProvider).
package testutil

import (
	"context"
	"fmt"

	"github.com/Burhan-Q/proompt"
)

// MockProvider is a configurable Provider implementation for tests.
type MockProvider struct {
	NameVal string
	DescVal string
	RunFn   func(ctx context.Context) (any, error)
}

// Name returns the provider name.
func (m *MockProvider) Name() string {
	if m.NameVal != "" {
		return m.NameVal
	}
	return "mock"
}

// Description returns the provider description.
func (m *MockProvider) Description() string {
	return m.DescVal
}

// Run runs RunFn if set, otherwise returns an empty map.
func (m *MockProvider) Run(ctx context.Context) (any, error) {
	if m.RunFn != nil {
		return m.RunFn(ctx)
	}
	return map[string]any{}, nil
}

// CounterProvider returns an incremented count on every Run call. Use it to
// assert that renders re-query providers instead of caching results.
type CounterProvider struct {
	NameVal string
	n       int
}

// Name returns the provider name.
func (c *CounterProvider) Name() string {
	if c.NameVal != "" {
		return c.NameVal
	}
	return "counter"
}

// Description returns the provider description.
func (c *CounterProvider) Description() string {
	return "returns a fresh counter value each call"
}

// Run increments the counter and returns it.
func (c *CounterProvider) Run(_ context.Context) (any, error) {
	c.n++
	return map[string]any{"count": c.n}, nil
}

// Calls returns how many times Run has been invoked.
func (c *CounterProvider) Calls() int { return c.n }

// MockContext is a fixed-text Context implementation for tests.
type MockContext struct {
	Text string
}

// Render returns the fixed text.
func (m *MockContext) Render() string {
	if m.Text != "" {
		return m.Text
	}
	return "mock context"
}

// FailingProvider always returns Err from Run; use it to assert that
// provider errors abort a render without partial output.
type FailingProvider struct {
	NameVal string
	Err     error
}

// Name returns the provider name.
func (f *FailingProvider) Name() string {
	if f.NameVal != "" {
		return f.NameVal
	}
	return "failing"
}

// Description returns the provider description.
func (f *FailingProvider) Description() string {
	return "always fails"
}

// Run returns Err, or a generic error when Err is nil.
func (f *FailingProvider) Run(_ context.Context) (any, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return nil, fmt.Errorf("provider %s failed", f.Name())
}

// Ensure the helpers implement the core contracts.
var (
	_ proompt.Provider = (*MockProvider)(nil)
	_ proompt.Provider = (*CounterProvider)(nil)
	_ proompt.Provider = (*FailingProvider)(nil)
	_ proompt.Context  = (*MockContext)(nil)
)
