/*
Package tracing provides OpenTelemetry tracing for the catalog service.

# Overview

A Tracer owns an SDK tracer provider. When export is enabled, spans are
batched and sent over OTLP/gRPC to a local agent (Jaeger, the OpenTelemetry
collector). When disabled, spans are still created and can be observed by
additional span processors, which is how tests inspect them.

# Usage

	tracer, err := tracing.New(ctx, tracing.Config{
		ServiceName: "course-catalog-service",
		Endpoint:    "localhost:4317",
		Enabled:     true,
	})
	defer tracer.Shutdown(ctx)

	// every route gets a server span with http.method and http.url
	router.Use(tracing.HTTPMiddleware(tracer))

	// child span scoped to a handler
	ctx, span := tracer.Start(c.Request.Context(), "course_catalog_span")
	defer span.End()
	span.SetAttributes(attribute.Int("total_courses", len(courses)))

# Propagation

Incoming W3C traceparent headers are honoured, and the trace id of every
request is echoed in the X-Trace-ID response header.
*/
package tracing
