package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/shared/id"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID assigns every request an id, reusing a well-formed inbound
// X-Request-ID. The id is echoed in the response and tagged on the
// request span.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := id.RequestID(c.GetHeader(RequestIDHeader))
		if !id.IsRequestID(reqID.String()) {
			reqID = id.NewRequestID()
		}

		c.Set(requestIDKey, reqID)
		c.Header(RequestIDHeader, reqID.String())
		trace.SpanFromContext(c.Request.Context()).SetAttributes(attribute.String("request.id", reqID.String()))

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "".
func GetRequestID(c *gin.Context) id.RequestID {
	if v, ok := c.Get(requestIDKey); ok {
		if reqID, ok := v.(id.RequestID); ok {
			return reqID
		}
	}
	return ""
}
