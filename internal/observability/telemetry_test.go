package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
)

func TestNewTracerProvider_ServiceResource(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp, err := newTracerProvider(context.Background(), "isocity-test", sdktrace.WithSpanProcessor(recorder))
	require.NoError(t, err)
	defer tp.Shutdown(context.Background())

	_, span := tp.Tracer("test").Start(context.Background(), "session.apply")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "session.apply", spans[0].Name())

	found := false
	for _, attr := range spans[0].Resource().Attributes() {
		if attr.Key == semconv.ServiceNameKey {
			found = true
			assert.Equal(t, "isocity-test", attr.Value.AsString())
		}
	}
	assert.True(t, found, "Ресурс должен содержать service.name")
}

func TestEndpointOrDefault(t *testing.T) {
	assert.Equal(t, "localhost:4318", endpointOrDefault(""))
	assert.Equal(t, "collector:4318", endpointOrDefault("collector:4318"))
}
