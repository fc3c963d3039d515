package observer

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadcapture_http_requests_total",
			Help: "Total number of HTTP requests, labeled by route and status.",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leadcapture_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	// Unlabelled: tenant IDs on the ingestion path are caller-supplied.
	leadsIngestedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadcapture_leads_ingested_total",
			Help: "Total number of leads persisted.",
		},
	)

	leadQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leadcapture_lead_queries_total",
			Help: "Total number of lead listing queries, labeled by sort field and outcome.",
		},
		[]string{"sort_by", "outcome"},
	)

	leadQueryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "leadcapture_lead_query_duration_seconds",
			Help:    "Time spent counting and fetching one page of leads.",
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms to ~10s
		},
	)

	rateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leadcapture_rate_limited_total",
			Help: "Total number of lead submissions rejected by the rate limiter.",
		},
	)
)

// ObserveHTTPRequest records one served request
func ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// IncLeadIngested counts a persisted lead
func IncLeadIngested() {
	leadsIngestedTotal.Inc()
}

// ObserveLeadQuery records a listing query and how long it took
func ObserveLeadQuery(sortBy string, err error, elapsed time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	leadQueriesTotal.WithLabelValues(sortBy, outcome).Inc()
	leadQueryDuration.Observe(elapsed.Seconds())
}

// IncRateLimited counts a throttled submission
func IncRateLimited() {
	rateLimitedTotal.Inc()
}
