package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	ValuationLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "richslow",
			Subsystem: "valuation",
			Name:      "latency_seconds",
			Help:      "Latency of valuation endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ValuationErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "richslow",
			Subsystem: "valuation",
			Name:      "errors_total",
			Help:      "Errors by valuation endpoint",
		},
		[]string{"endpoint"},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(ValuationLatency, ValuationErrors)
	})
}
