// Package correlationid carries a per-request correlation id through a context
// and onto outgoing HTTP headers.
package correlationid

import (
	"context"

	"github.com/google/uuid"
)

// Header is the HTTP header the correlation id travels in.
const Header = "X-Correlation-ID"

type ctxKey struct{}

// NewContext returns a copy of ctx carrying id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the correlation id stored in ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// Ensure returns ctx unchanged when it already has a correlation id,
// otherwise a copy carrying a fresh one.
func Ensure(ctx context.Context) (context.Context, string) {
	if id, ok := FromContext(ctx); ok {
		return ctx, id
	}
	id := uuid.NewString()
	return NewContext(ctx, id), id
}
