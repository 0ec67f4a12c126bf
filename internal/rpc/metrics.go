package rpc

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rangeindexor_rpc_attempts_total",
			Help: "RPC attempts by method, retries included",
		},
		[]string{"method"},
	)

	rpcFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rangeindexor_rpc_failures_total",
			Help: "Failed RPC attempts by method and error class",
		},
		[]string{"method", "error_type"},
	)

	rpcCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rangeindexor_rpc_call_duration_seconds",
			Help:    "Wall time of an RPC call across all of its attempts",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"method"},
	)
)

// observeAttempt records one attempt and, when it failed, its error class.
func observeAttempt(method string, err error) {
	rpcAttempts.WithLabelValues(method).Inc()
	if err != nil {
		rpcFailures.WithLabelValues(method, errorType(err)).Inc()
	}
}

func observeCall(method string, start time.Time) {
	rpcCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}
