/*
Package monitoring provides Prometheus metrics for the catalog service.

# Overview

Metrics are registered on a caller-supplied registry so each server (and
each test) owns its own set.

# Features

- HTTP request metrics by route template (latency, throughput, size)
- Store call metrics (duration, errors)
- Catalog metrics (courses stored, added, rejected submissions, lookup misses)
- Uptime

# Usage

	reg := prometheus.NewRegistry()
	metrics := monitoring.NewMetrics(reg)

	router.Use(monitoring.Middleware(metrics))
	router.GET("/metrics", gin.WrapH(monitoring.Handler(reg)))

	metrics.SetCoursesTotal(len(courses))
	metrics.IncCoursesAdded()
*/
package monitoring
