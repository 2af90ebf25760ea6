// Package metrics records provider call outcomes for Prometheus.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder is safe to use as a nil pointer; every method becomes a no-op.
type Recorder struct {
	calls    *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	results  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)

	return &Recorder{
		calls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "provider_calls_total",
			Help:      "HTTP calls issued to payment providers, by HTTP status.",
		}, []string{"provider", "action", "status"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gateway",
			Name:      "provider_call_duration_seconds",
			Help:      "Round trip time of provider HTTP calls.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider", "action"}),
		results: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "results_total",
			Help:      "Canonical results returned to callers.",
		}, []string{"provider", "action", "success", "error_kind"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gateway",
			Name:      "errors_total",
			Help:      "Operations that surfaced an error instead of a result.",
		}, []string{"provider", "action"}),
	}
}

// ObserveCall records one HTTP round trip. status 0 means no HTTP response was received.
func (r *Recorder) ObserveCall(provider, action string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.calls.WithLabelValues(provider, action, strconv.Itoa(status)).Inc()
	r.latency.WithLabelValues(provider, action).Observe(elapsed.Seconds())
}

func (r *Recorder) ObserveResult(provider, action string, success bool, errorKind string) {
	if r == nil {
		return
	}
	r.results.WithLabelValues(provider, action, strconv.FormatBool(success), errorKind).Inc()
}

func (r *Recorder) ObserveError(provider, action string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(provider, action).Inc()
}
