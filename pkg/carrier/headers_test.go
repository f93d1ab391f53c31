package carrier_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/tuanvumaihuynh/catalog-e2e/pkg/carrier"
	"github.com/tuanvumaihuynh/catalog-e2e/pkg/correlationid"
)

func TestHeadersRoundTrip(t *testing.T) {
	otel.SetTextMapPropagator(propagation.TraceContext{})

	traceID, err := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	require.NoError(t, err)
	spanID, err := trace.SpanIDFromHex("00f067aa0ba902b7")
	require.NoError(t, err)

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)
	ctx = correlationid.NewContext(ctx, "corr-1")

	h := http.Header{}
	carrier.InjectHeaders(ctx, h)

	assert.Equal(t, "corr-1", h.Get(correlationid.Header))
	assert.Equal(t, "00-4bf92f3577b34da6a3ce929d0e0e4736-00f067aa0ba902b7-01", h.Get("traceparent"))

	got := carrier.ExtractHeaders(context.Background(), h)

	id, ok := correlationid.FromContext(got)
	assert.True(t, ok)
	assert.Equal(t, "corr-1", id)
	assert.Equal(t, traceID, trace.SpanContextFromContext(got).TraceID())
}

func TestInjectHeaders_EmptyContext(t *testing.T) {
	h := http.Header{}
	carrier.InjectHeaders(context.Background(), h)

	assert.Empty(t, h.Get(correlationid.Header))
	assert.Empty(t, h.Get("traceparent"))
}
