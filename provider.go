package proompt

import "context"

// Provider is a structured-data source queried at render time. The result
// shape is provider-specific (a mapping, a text blob, or a sequence of
// mappings); consuming sections type-discriminate. No referential stability
// is guaranteed across calls: a provider may return fresh data every time,
// so sections must not assume idempotence.
//
// Run errors are not caught by this package; they propagate unmodified to
// the caller of Render and fail the whole prompt.
type Provider interface {
	Name() string
	Description() string
	Run(ctx context.Context) (any, error)
}

// ProvidersOf selects the providers of concrete type T, preserving order.
// Sections use it to pick out the providers they know how to format.
func ProvidersOf[T Provider](providers []Provider) []T {
	var out []T
	for _, p := range providers {
		if tp, ok := p.(T); ok {
			out = append(out, tp)
		}
	}
	return out
}
