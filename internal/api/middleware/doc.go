// Package middleware provides the HTTP middleware stack for the catalog
// service.
//
// Middleware stack includes:
//   - RequestID: ULID request ids echoed in X-Request-ID
//   - Recovery: turns panics and handler errors into a plain 500, marks the
//     request span errored and logs the fault with a stack trace
//   - CORS: cross-origin resource sharing with configurable origins
//   - RateLimit: per-IP token bucket rate limiting with idle client cleanup
//
// Example Usage:
//
//	router.Use(tracing.HTTPMiddleware(tracer))
//	router.Use(middleware.RequestID())
//	router.Use(middleware.Recovery(logger))
//	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
//	router.Use(middleware.RateLimit(middleware.DefaultRateLimitConfig(), logger))
package middleware
