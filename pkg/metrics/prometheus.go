package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	providerRequests *prometheus.CounterVec
	providerLatency  *prometheus.HistogramVec
	calcErrors       *prometheus.CounterVec
	calcLatency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		providerRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "richslow_provider_requests_total",
				Help: "Total number of provider API requests by endpoint and status",
			},
			[]string{"endpoint", "status"},
		),
		providerLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "richslow_provider_request_duration_seconds",
				Help:    "Duration of provider API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		calcErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "richslow_calc_errors_total",
				Help: "Total number of failed valuation calculations by operation",
			},
			[]string{"operation"},
		),
		calcLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "richslow_calc_duration_seconds",
				Help:    "Duration of valuation calculations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordProviderRequest records one provider API call outcome.
func (r *Recorder) RecordProviderRequest(endpoint, status string) {
	r.providerRequests.WithLabelValues(endpoint, status).Inc()
}

// RecordProviderLatency records provider call latency in seconds.
func (r *Recorder) RecordProviderLatency(endpoint string, seconds float64) {
	r.providerLatency.WithLabelValues(endpoint).Observe(seconds)
}

// RecordCalcError records a failed calculation.
func (r *Recorder) RecordCalcError(op string) {
	r.calcErrors.WithLabelValues(op).Inc()
}

// RecordCalcLatency records calculation latency in seconds.
func (r *Recorder) RecordCalcLatency(op string, seconds float64) {
	r.calcLatency.WithLabelValues(op).Observe(seconds)
}
