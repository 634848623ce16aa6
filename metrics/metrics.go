// Package metrics provides Prometheus metrics for the PeopleMover server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "peoplemover"

var (
	// HTTPRequestsTotal counts HTTP requests by method, route, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	// ReassignmentsComputed counts reassignment records produced by the
	// snapshot differ.
	ReassignmentsComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "board",
			Name:      "reassignments_computed_total",
			Help:      "Total reassignment records computed from snapshot diffs",
		},
	)

	// AssignmentWritesSkipped counts form submissions rejected by the
	// unchanged-selection idempotence guard.
	AssignmentWritesSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "board",
			Name:      "assignment_writes_skipped_total",
			Help:      "Assignment submissions skipped because the selection was unchanged",
		},
	)
)
