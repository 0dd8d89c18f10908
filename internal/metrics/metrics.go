package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	PublicCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "public_cache_hits_total",
			Help: "Public reads served from cache.",
		},
	)

	PublicCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "public_cache_misses_total",
			Help: "Public reads that went to the database.",
		},
		[]string{"resource"},
	)
)
