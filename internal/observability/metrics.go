package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kawaii",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kawaii",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	launches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "kawaii",
			Subsystem: "launch",
			Name:      "attempts_total",
			Help:      "Launch attempts by outcome.",
		},
		[]string{"outcome"},
	)
	launchPhaseDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "kawaii",
			Subsystem: "launch",
			Name:      "phase_duration_seconds",
			Help:      "Launch pipeline phase duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"phase"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, launches, launchPhaseDuration)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordLaunch(outcome string) {
	RegisterMetrics()
	launches.WithLabelValues(outcome).Inc()
}

func RecordLaunchPhase(phase string, duration time.Duration) {
	RegisterMetrics()
	launchPhaseDuration.WithLabelValues(phase).Observe(duration.Seconds())
}
