package proompt

import (
	"errors"
	"fmt"
)

// Sentinel errors for proompt. Use errors.Is to check.
var (
	ErrNoContext  = errors.New("section context is not set")
	ErrNilContext = errors.New("context must not be nil")
	ErrBadDefs    = errors.New("invalid section definitions")
)

// ConfigError signals a wiring mistake at prompt-construction time
// (e.g. reading a section context before one was set, or assigning a nil
// context). It is fatal to the calling operation and never retried.
// Err wraps a sentinel (e.g. ErrNoContext) for errors.Is/errors.As.
type ConfigError struct {
	Reason string
	Err    error // wrapped sentinel for errors.Is/errors.As
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("prompt configuration error: %s", e.Reason)
}

// Unwrap supports errors.Is/errors.As on wrapped chains (e.g. errors.Is(err, ErrNoContext)).
func (e *ConfigError) Unwrap() error { return e.Err }

// RenderError reports a failure surfaced while rendering a section, such as
// a panic recovered by the WithRecovery middleware. Provider errors are NOT
// wrapped in RenderError: they propagate unmodified to the Render caller.
type RenderError struct {
	Section string
	Err     error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render failed for section %s: %v", e.Section, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// IsConfigError returns true if err is or wraps a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsRenderError returns true if err is or wraps a RenderError.
func IsRenderError(err error) bool {
	var re *RenderError
	return errors.As(err, &re)
}

// panicError wraps a recovered panic value; used by the WithRecovery middleware.
type panicError struct{ p any }

func (e *panicError) Error() string {
	return "panic: " + fmt.Sprint(e.p)
}
