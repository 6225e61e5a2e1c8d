package infra

import (
	"context"
	"encoding/binary"
	"math"
	"strings"

	texporter "github.com/GoogleCloudPlatform/opentelemetry-operations-go/exporter/trace"
	gcppropagator "github.com/GoogleCloudPlatform/opentelemetry-operations-go/propagator"
	"github.com/cockroachdb/errors"
	"google.golang.org/api/option"

	"go.opentelemetry.io/contrib/detectors/gcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.37.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

type TelemetryRessources struct {
	TracerProvider    trace.TracerProvider
	Tracer            trace.Tracer
	TextMapPropagator propagation.TextMapPropagator
	Shutdown          func(context.Context) error
}

func NoopTelemetry() TelemetryRessources {
	return TelemetryRessources{
		TracerProvider: noop.NewTracerProvider(),
		Tracer:         noop.NewTracerProvider().Tracer(""),
		Shutdown:       func(context.Context) error { return nil },
	}
}

func InitTelemetry(configuration TelemetryConfiguration, apiVersion string) (TelemetryRessources, error) {
	if !configuration.Enabled {
		return NoopTelemetry(), nil
	}

	var exporter sdktrace.SpanExporter

	switch configuration.Exporter {
	case "gcp":
		// an empty project id makes the exporter read it from the GCP metadata server
		gcpExporter, err := texporter.New(
			texporter.WithProjectID(configuration.ProjectID),
			texporter.WithTraceClientOptions([]option.ClientOption{option.WithTelemetryDisabled()}),
		)
		if err != nil {
			return TelemetryRessources{}, errors.Wrap(err, "texporter.New error")
		}
		exporter = gcpExporter

	default: // "otlp"
		otlpExporter, err := otlptracegrpc.New(context.Background())
		if err != nil {
			return TelemetryRessources{}, errors.Wrap(err, "otlptracegrpc.New error")
		}
		exporter = otlpExporter
	}

	res, err := resource.New(context.Background(),
		resource.WithDetectors(gcp.NewDetector()),
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceNameKey.String(configuration.ApplicationName),
			semconv.ServiceVersion(apiVersion),
		),
	)
	if err != nil {
		return TelemetryRessources{}, errors.Wrap(err, "resource.New error")
	}

	rate := configuration.SamplingRate
	if rate <= 0 {
		rate = DEFAULT_SAMPLING_RATE
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(RouteSampler{DefaultRate: rate}),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	propagators := propagation.NewCompositeTextMapPropagator(
		gcppropagator.CloudTraceFormatPropagator{},
		propagation.TraceContext{},
		propagation.Baggage{},
	)
	otel.SetTextMapPropagator(propagators)
	otel.SetTracerProvider(tp)

	return TelemetryRessources{
		TracerProvider:    tp,
		Tracer:            tp.Tracer(configuration.ApplicationName),
		TextMapPropagator: propagators,
		Shutdown:          tp.Shutdown,
	}, nil
}

const DEFAULT_SAMPLING_RATE = 0.3

var routePrefixSampling = map[string]float64{
	"/liveness":   0.0,
	"/metrics":    0.0,
	"/api/blog":   0.1,
	"/api/tags":   0.05,
	"/api/ads":    0.05,
	"/api/images": 0.05,
}

// RouteSampler samples incoming requests per route prefix and keeps database
// spans only when their parent request is sampled.
type RouteSampler struct {
	DefaultRate float64
}

func (RouteSampler) Description() string {
	return "sitepress-route-sampler"
}

func (s RouteSampler) ShouldSample(p sdktrace.SamplingParameters) sdktrace.SamplingResult {
	psc := trace.SpanContextFromContext(p.ParentContext)
	if psc.HasTraceID() && !psc.IsSampled() {
		return sdktrace.NeverSample().ShouldSample(p)
	}

	prob := s.probability(p, psc)
	decision := sdktrace.Drop
	traceId := binary.BigEndian.Uint64(p.TraceID[:8])
	if prob >= 1.0 || traceId < uint64(prob*float64(math.MaxUint64)) {
		decision = sdktrace.RecordAndSample
	}

	return sdktrace.SamplingResult{
		Decision:   decision,
		Attributes: p.Attributes,
		Tracestate: psc.TraceState(),
	}
}

func (s RouteSampler) probability(p sdktrace.SamplingParameters, psc trace.SpanContext) float64 {
	for _, attr := range p.Attributes {
		switch attr.Key {
		case semconv.HTTPRouteKey:
			route := attr.Value.AsString()
			for prefix, prob := range routePrefixSampling {
				if strings.HasPrefix(route, prefix) {
					return prob
				}
			}
			return s.DefaultRate
		case semconv.DBQueryTextKey:
			if strings.HasPrefix(p.Name, "prepare ") {
				return 0.0
			}
			if psc.IsSampled() {
				return 1.0
			}
			return s.DefaultRate
		}
	}

	if p.Name == "pool.acquire" {
		return 0.0
	}
	return 1.0
}
