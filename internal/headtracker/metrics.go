package headtracker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainHead = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rangeindexor_chain_head_block",
		Help: "Last known indexable chain head",
	})

	headStale = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "rangeindexor_chain_head_stale",
		Help: "1 if the last chain head lookup failed, 0 otherwise",
	})

	headLookupErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "rangeindexor_chain_head_lookup_errors_total",
		Help: "Total number of failed chain head lookups",
	})
)

func HeadLog(block uint64) {
	chainHead.Set(float64(block))
}

func HeadStaleLog(stale bool) {
	if stale {
		headStale.Set(1)
		return
	}
	headStale.Set(0)
}

func HeadLookupErrorInc() {
	headLookupErrors.Inc()
}
