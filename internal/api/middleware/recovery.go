package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/tracing"
)

// InternalErrorBody is the only thing a client sees of a fault.
const InternalErrorBody = "Internal Server Error"

// Recovery turns a panic, or an error a handler pushed with c.Error
// without writing a response, into a plain 500. The request span is marked
// errored and the fault is logged with its stack.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				err, ok := r.(error)
				if !ok {
					err = fmt.Errorf("panic: %v", r)
				}
				_ = c.Error(err)
				fail(c, logger, err, zap.ByteString("stacktrace", debug.Stack()))
			}
		}()

		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			fail(c, logger, c.Errors.Last().Err, zap.Stack("stacktrace"))
		}
	}
}

func fail(c *gin.Context, logger *zap.Logger, err error, stack zap.Field) {
	tracing.MarkError(c, err)

	logger.Error(fmt.Sprintf("Unhandled exception: %v", err),
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", GetRequestID(c).String()),
		zap.String("trace_id", tracing.GetTraceID(c.Request.Context())),
		stack,
	)

	c.Abort()
	if !c.Writer.Written() {
		c.String(http.StatusInternalServerError, InternalErrorBody)
	}
}
