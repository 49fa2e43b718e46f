package proompt

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Middleware wraps a Section with cross-cutting behavior (logging, recovery).
// Apply middlewares to a prompt with BasePrompt.Use.
type Middleware func(Section) Section

// WithLogging returns a middleware that logs render start, end, duration,
// and errors.
func WithLogging(logger *slog.Logger) Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next Section) Section {
		return &loggingSection{next: next, logger: logger}
	}
}

// WithRecovery returns a middleware that recovers panics from a section
// render and returns them as a RenderError.
func WithRecovery() Middleware {
	return func(next Section) Section {
		return &recoverySection{next: next}
	}
}

type loggingSection struct {
	next   Section
	logger *slog.Logger
}

func (s *loggingSection) Render(ctx context.Context) (string, error) {
	name := sectionName(s.next)
	s.logger.Info("section render start", "section", name)
	start := time.Now()
	text, err := s.next.Render(ctx)
	dur := time.Since(start)
	if err != nil {
		s.logger.Error("section render error", "section", name, "duration", dur, "error", err)
		return "", err
	}
	s.logger.Info("section render end", "section", name, "duration", dur, "bytes", len(text))
	return text, nil
}

type recoverySection struct {
	next Section
}

func (s *recoverySection) Render(ctx context.Context) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text = ""
			err = &RenderError{Section: sectionName(s.next), Err: &panicError{p: p}}
		}
	}()
	return s.next.Render(ctx)
}

// sectionName returns sec's own name when it implements Named, otherwise
// its Go type.
func sectionName(sec Section) string {
	if n, ok := sec.(Named); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}
	return fmt.Sprintf("%T", sec)
}
