package tracing

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute keys set on every request span
const (
	AttrHTTPMethod     = "http.method"
	AttrHTTPURL        = "http.url"
	AttrHTTPRoute      = "http.route"
	AttrHTTPStatusCode = "http.status_code"
)

// HTTPMiddleware creates Gin middleware that wraps each request in a
// server span. Register it before any middleware that may fail the
// request so those failures land on the span.
func HTTPMiddleware(tracer *Tracer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := tracer.Extract(c.Request.Context(), c.Request.Header)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := tracer.Start(ctx, c.Request.Method+" "+route, trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		span.SetAttributes(
			attribute.String(AttrHTTPMethod, c.Request.Method),
			attribute.String(AttrHTTPURL, FullURL(c.Request)),
			attribute.String(AttrHTTPRoute, route),
		)

		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Trace-ID", span.SpanContext().TraceID().String())

		c.Next()

		status := c.Writer.Status()
		span.SetAttributes(attribute.Int(AttrHTTPStatusCode, status))

		// Errors pushed with c.Error were already recorded on the span by
		// the recovery middleware.
		if status >= http.StatusInternalServerError && len(c.Errors) == 0 {
			span.SetStatus(codes.Error, http.StatusText(status))
		}
	}
}

// MarkError records err on the span carried by c's request and sets the
// span status to Error.
func MarkError(c *gin.Context, err error) {
	span := trace.SpanFromContext(c.Request.Context())
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
