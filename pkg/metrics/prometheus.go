package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	UpstreamRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviehub_upstream_requests_total",
			Help: "Count of catalog API calls by endpoint and outcome",
		},
		[]string{"endpoint", "outcome"},
	)
	UpstreamDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moviehub_upstream_request_duration_seconds",
			Help:    "Time taken by catalog API calls",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5},
		},
		[]string{"endpoint"},
	)
	PageStates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moviehub_page_states_total",
			Help: "Count of page controller state transitions",
		},
		[]string{"page", "phase"},
	)
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "moviehub_rate_limited_total",
			Help: "Count of inbound requests rejected by the limiter",
		},
	)
)

var registerOnce sync.Once

func Init() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			UpstreamRequests,
			UpstreamDuration,
			PageStates,
			RateLimited,
		)
	})
}

// ObserveUpstream records one finished catalog call.
func ObserveUpstream(endpoint, outcome string, elapsed time.Duration) {
	UpstreamRequests.WithLabelValues(endpoint, outcome).Inc()
	UpstreamDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}
