// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package metrics defines the Prometheus collectors exported on /metrics.
//
// Every collector is registered with the default registry at package
// initialization through promauto, so importing the package is enough.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// # HTTP

// HTTPRequestsTotal counts finished requests.
// Labels:
//   - method: HTTP method
//   - route: chi route pattern (e.g. "/api/v1/products/{id}"), "unmatched" otherwise
//   - status: response status code
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// HTTPRequestDuration measures request latency per route.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests from first byte read to handler return.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route"},
)

// GateDecisionsTotal counts request gate outcomes.
// Label:
//   - decision: "pass", "unauthenticated" or "unauthorized"
var GateDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gate_decisions_total",
		Help:      "Total number of request gate decisions.",
	},
	[]string{"decision"},
)

// # Domain

// CatalogWritesTotal counts successful catalog mutations.
// Labels:
//   - entity: "section" or "product"
//   - op: "create", "update" or "delete"
var CatalogWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_writes_total",
		Help:      "Total number of successful catalog writes.",
	},
	[]string{"entity", "op"},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ChatRequestsTotal counts chat completions.
// Label:
//   - result: "completed", "failed" or "unavailable"
var ChatRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "chat_requests_total",
		Help:      "Total number of chat requests, by result.",
	},
	[]string{"result"},
)

// ObserveHTTPRequest records one finished request.
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
