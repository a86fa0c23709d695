// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DashboardRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dashboard_requests_total",
			Help: "Total number of dashboard view requests by role",
		},
		[]string{"role", "status"},
	)

	DashboardBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "dashboard_build_duration_seconds",
			Help: "Duration of dashboard view-model assembly in seconds",
		},
		[]string{"role"},
	)

	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of marketplace API requests",
		},
		[]string{"collection", "status"},
	)

	CacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_lookups_total",
			Help: "Query cache lookups by outcome (hit/miss/error)",
		},
		[]string{"outcome"},
	)
)
