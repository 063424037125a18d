// Package http implements the catalog's HTTP handlers.
//
// Routes:
//   - GET  /                  landing page
//   - GET  /catalog           course listing
//   - GET  /add_course        submission form
//   - POST /add_course        create a course, redirect with a flash notice
//   - GET  /course/:code      course detail, redirect to /catalog when unknown
//   - GET  /manual-trace      opens a span by hand
//   - GET  /auto-instrumented relies on the tracing middleware alone
//   - GET  /health            JSON liveness and request totals
//
// Store failures are pushed onto the gin context and left to the recovery
// middleware, which answers 500.
package http
