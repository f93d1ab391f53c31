// Package carrier moves trace context and the correlation id between a
// context and HTTP headers.
package carrier

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/tuanvumaihuynh/catalog-e2e/pkg/correlationid"
)

// InjectHeaders writes the trace context and correlation id carried by ctx
// into h.
func InjectHeaders(ctx context.Context, h http.Header) {
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(h))

	if id, ok := correlationid.FromContext(ctx); ok {
		h.Set(correlationid.Header, id)
	}
}

// ExtractHeaders returns a copy of ctx carrying the trace context and
// correlation id found in h.
func ExtractHeaders(ctx context.Context, h http.Header) context.Context {
	ctx = otel.GetTextMapPropagator().Extract(ctx, propagation.HeaderCarrier(h))

	if id := h.Get(correlationid.Header); id != "" {
		ctx = correlationid.NewContext(ctx, id)
	}

	return ctx
}
