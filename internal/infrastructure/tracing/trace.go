package tracing

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
)

// InstrumentationName names the tracer that creates every span.
const InstrumentationName = "github.com/GriffinCanCode/CourseCatalog/backend"

// Config controls span export.
type Config struct {
	ServiceName string
	Endpoint    string
	Enabled     bool
}

// Tracer creates spans for the service.
type Tracer struct {
	provider   *sdktrace.TracerProvider
	tracer     trace.Tracer
	propagator propagation.TextMapPropagator
}

// New creates a tracer. With cfg.Enabled it exports to cfg.Endpoint; the
// exporter connects lazily so a missing agent does not block startup.
// Extra options are appended to the provider, e.g. span processors.
func New(ctx context.Context, cfg Config, opts ...sdktrace.TracerProviderOption) (*Tracer, error) {
	res := resource.NewSchemaless(attribute.String("service.name", cfg.ServiceName))
	providerOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	if cfg.Enabled {
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(cfg.Endpoint),
			otlptracegrpc.WithInsecure(),
			otlptracegrpc.WithDialOption(grpc.WithUserAgent(cfg.ServiceName)),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP exporter for %s: %w", cfg.Endpoint, err)
		}
		providerOpts = append(providerOpts, sdktrace.WithBatcher(exporter))
	}

	providerOpts = append(providerOpts, opts...)
	return NewWithProvider(sdktrace.NewTracerProvider(providerOpts...)), nil
}

// NewWithProvider wraps an existing provider.
func NewWithProvider(provider *sdktrace.TracerProvider) *Tracer {
	return &Tracer{
		provider:   provider,
		tracer:     provider.Tracer(InstrumentationName),
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
	}
}

// Start opens a span as a child of whatever span ctx carries.
func (t *Tracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return t.tracer.Start(ctx, name, opts...)
}

// Extract returns ctx carrying the remote span context found in header.
func (t *Tracer) Extract(ctx context.Context, header http.Header) context.Context {
	return t.propagator.Extract(ctx, propagation.HeaderCarrier(header))
}

// Shutdown flushes buffered spans and stops the exporter.
func (t *Tracer) Shutdown(ctx context.Context) error {
	return t.provider.Shutdown(ctx)
}

// FullURL reconstructs the absolute URL of r as the client requested it.
func FullURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return scheme + "://" + r.Host + r.URL.RequestURI()
}

// GetTraceID returns the trace id carried by ctx, or "" when there is none.
func GetTraceID(ctx context.Context) string {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return ""
	}
	return sc.TraceID().String()
}
