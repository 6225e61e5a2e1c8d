package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
)

func samplingParams(name string, attrs ...attribute.KeyValue) sdktrace.SamplingParameters {
	return sdktrace.SamplingParameters{
		ParentContext: context.Background(),
		TraceID:       trace.TraceID{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08},
		Name:          name,
		Attributes:    attrs,
	}
}

func TestRouteSampler(t *testing.T) {
	s := RouteSampler{DefaultRate: 0.3}

	t.Run("liveness is never sampled", func(t *testing.T) {
		res := s.ShouldSample(samplingParams("GET /liveness", semconv.HTTPRoute("/liveness")))
		assert.Equal(t, sdktrace.Drop, res.Decision)
	})

	t.Run("unknown route uses the default rate", func(t *testing.T) {
		// the trace id above sits far below 30% of the id space
		res := s.ShouldSample(samplingParams("POST /auth/login", semconv.HTTPRoute("/auth/login")))
		assert.Equal(t, sdktrace.RecordAndSample, res.Decision)
	})

	t.Run("pool acquisition is dropped", func(t *testing.T) {
		res := s.ShouldSample(samplingParams("pool.acquire"))
		assert.Equal(t, sdktrace.Drop, res.Decision)
	})

	t.Run("internal spans are kept", func(t *testing.T) {
		res := s.ShouldSample(samplingParams("usecase"))
		assert.Equal(t, sdktrace.RecordAndSample, res.Decision)
	})

	t.Run("unsampled parent", func(t *testing.T) {
		parent := trace.NewSpanContext(trace.SpanContextConfig{
			TraceID: trace.TraceID{0x01},
			SpanID:  trace.SpanID{0x01},
		})
		p := samplingParams("usecase")
		p.ParentContext = trace.ContextWithSpanContext(context.Background(), parent)
		assert.Equal(t, sdktrace.Drop, s.ShouldSample(p).Decision)
	})
}
