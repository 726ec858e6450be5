package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockroom_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stockroom_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	loginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockroom_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	reportsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stockroom_reports_generated_total",
			Help: "Total number of generated reports",
		},
		[]string{"report_type", "format"},
	)
)
