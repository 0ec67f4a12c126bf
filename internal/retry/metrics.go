package retry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var retries = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "rangeindexor_retries_total",
		Help: "Total number of retried operations by operation name",
	},
	[]string{"operation"},
)

func RetryInc(operation string) {
	retries.WithLabelValues(operation).Inc()
}
