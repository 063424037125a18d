// Package main is the entry point for the course catalog server.
//
// The server renders a small course catalog over HTTP: a listing, a
// submission form and per-course pages. Courses live in a JSON file or,
// with STORE_BACKEND=redis, in a Redis list.
//
// Every request is traced with OpenTelemetry and exported over OTLP/gRPC
// when TRACING_ENABLED is set. Logs are JSON lines written to stdout and
// LOG_FILE. Prometheus metrics are served at /metrics.
//
// Configuration:
//   - Environment variables (see internal/infrastructure/config)
//   - CLI flags (override env vars)
//
// Usage:
//
//	./server -port 8000 -catalog course_catalog.json
//	./server -store redis -seed courses.yaml
//
// Signals:
//   - SIGINT, SIGTERM: Graceful shutdown
package main
