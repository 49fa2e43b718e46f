package proompt

// Context supplies render-time descriptive metadata (company, period,
// analyst, and similar) to the sections bound to it. Implementations are
// treated as read-only: a single Context may back multiple sections and is
// never mutated by them.
type Context interface {
	Render() string
}

// ContextFunc adapts a plain function to the Context interface.
type ContextFunc func() string

// Render returns f().
func (f ContextFunc) Render() string { return f() }
