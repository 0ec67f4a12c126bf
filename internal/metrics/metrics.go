package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Strategy metrics
	blocksProcessed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rangeindexor_blocks_processed_total",
			Help: "Total number of blocks processed per strategy and mode",
		},
		[]string{"strategy", "mode"},
	)

	logsFound = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rangeindexor_logs_found_total",
			Help: "Total number of logs returned to strategies",
		},
		[]string{"strategy"},
	)

	rowsWritten = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rangeindexor_rows_written_total",
			Help: "Total number of rows written by strategies",
		},
		[]string{"strategy"},
	)

	batchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rangeindexor_batch_duration_seconds",
			Help:    "Time taken to process and commit one batch",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"strategy"},
	)

	batchSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rangeindexor_batch_size_blocks",
			Help: "Current adaptive batch size per strategy",
		},
		[]string{"strategy"},
	)

	processingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rangeindexor_processing_errors_total",
			Help: "Total number of failed batches per strategy and kind",
		},
		[]string{"strategy", "kind"},
	)

	behindBlocks = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rangeindexor_behind_blocks",
			Help: "Blocks between the chain head and the strategy's to_block",
		},
		[]string{"strategy"},
	)

	// Control metrics
	controlState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rangeindexor_control_state",
			Help: "1 for the current control state, 0 otherwise",
		},
		[]string{"state"},
	)

	commands = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "rangeindexor_commands_total",
			Help: "Total number of control commands by command and outcome",
		},
		[]string{"command", "outcome"},
	)

	// System metrics
	uptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rangeindexor_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)

	goroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "rangeindexor_goroutines",
			Help: "Number of active goroutines",
		},
	)

	memoryUsage = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "rangeindexor_memory_usage_bytes",
			Help: "Memory usage statistics",
		},
		[]string{"type"},
	)

	startTime = time.Now()
)

func BatchLog(strategy, mode string, blocks uint64, logs, rows int, took time.Duration) {
	blocksProcessed.WithLabelValues(strategy, mode).Add(float64(blocks))
	logsFound.WithLabelValues(strategy).Add(float64(logs))
	rowsWritten.WithLabelValues(strategy).Add(float64(rows))
	batchDuration.WithLabelValues(strategy).Observe(took.Seconds())
}

func BatchSizeLog(strategy string, size uint64) {
	batchSize.WithLabelValues(strategy).Set(float64(size))
}

func ProcessingErrorInc(strategy, kind string) {
	processingErrors.WithLabelValues(strategy, kind).Inc()
}

func BehindLog(strategy string, behind uint64) {
	behindBlocks.WithLabelValues(strategy).Set(float64(behind))
}

// ControlStateLog marks state as the current control state.
func ControlStateLog(state string, all []string) {
	for _, s := range all {
		v := float64(0)
		if s == state {
			v = 1
		}
		controlState.WithLabelValues(s).Set(v)
	}
}

func CommandInc(command, outcome string) {
	commands.WithLabelValues(command, outcome).Inc()
}

// UpdateSystemMetrics updates runtime system metrics.
// This should be called periodically (e.g., every 15 seconds).
func UpdateSystemMetrics() {
	uptime.Set(time.Since(startTime).Seconds())
	goroutines.Set(float64(runtime.NumGoroutine()))

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	memoryUsage.WithLabelValues("alloc").Set(float64(m.Alloc))
	memoryUsage.WithLabelValues("total_alloc").Set(float64(m.TotalAlloc))
	memoryUsage.WithLabelValues("sys").Set(float64(m.Sys))
	memoryUsage.WithLabelValues("heap_inuse").Set(float64(m.HeapInuse))
}
