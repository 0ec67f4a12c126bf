package rangestore

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rangeCommits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rangeindexor_range_commits_total",
		Help: "Total number of committed batches per strategy",
	}, []string{"strategy"})

	rangeRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rangeindexor_range_commit_rejections_total",
		Help: "Total number of rejected commits per strategy and reason",
	}, []string{"strategy", "reason"})

	rangeToBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rangeindexor_range_to_block",
		Help: "Upper bound of the accumulated range per strategy",
	}, []string{"strategy"})

	rangeFromBlock = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "rangeindexor_range_from_block",
		Help: "Lower bound of the accumulated range per strategy",
	}, []string{"strategy"})

	reindexRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "rangeindexor_reindex_runs_total",
		Help: "Total number of finished reindex runs by status",
	}, []string{"status"})
)

func RangeLog(strategy string, from, to uint64) {
	rangeFromBlock.WithLabelValues(strategy).Set(float64(from))
	rangeToBlock.WithLabelValues(strategy).Set(float64(to))
}

func CommitInc(strategy string) {
	rangeCommits.WithLabelValues(strategy).Inc()
}

func RejectionInc(strategy, reason string) {
	rangeRejections.WithLabelValues(strategy, reason).Inc()
}

func ReindexRunInc(status string) {
	reindexRuns.WithLabelValues(status).Inc()
}
