package runner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/internal/metrics"
	"github.com/goran-ethernal/RangeIndexor/internal/retry"
	"github.com/goran-ethernal/RangeIndexor/internal/rpc"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/rangestore"
	"github.com/goran-ethernal/RangeIndexor/pkg/strategy"
)

const (
	modeForward = "forward"
	modeReindex = "reindex"
)

// Task is one walk of a strategy over [From, To].
type Task struct {
	From uint64
	To   uint64

	// RunID is the journaled reindex run. Empty for forward indexing, in which case every
	// batch is committed to the strategy's accumulated range.
	RunID string

	// Stop is checked before each batch; returning true ends the walk at the batch boundary.
	Stop func() bool

	// Progress is called after each batch is durable with the last processed block.
	Progress func(current uint64)
}

// Result summarizes a walk.
type Result struct {
	Stats strategy.Stats
	// Last is the last processed block; only meaningful when Processed is set.
	Last      uint64
	Processed bool
	// Completed is set when the walk reached To.
	Completed bool
}

// Runner walks one strategy over block ranges in adaptive batches.
type Runner struct {
	strategy    strategy.Strategy
	store       rangestore.Store
	db          *db.DB
	maintenance db.Maintenance
	chunks      *ChunkManager
	retry       *config.RetryConfig
	log         *logger.Logger
}

// New creates a runner for s.
func New(
	s strategy.Strategy,
	store rangestore.Store,
	database *db.DB,
	maintenance db.Maintenance,
	cfg config.RunnerConfig,
	log *logger.Logger,
) *Runner {
	if maintenance == nil {
		maintenance = &db.NoOpMaintenance{}
	}

	r := &Runner{
		strategy:    s,
		store:       store,
		db:          database,
		maintenance: maintenance,
		chunks:      NewChunkManager(cfg.BatchSize, cfg.MinBatchSize, cfg.MaxBatchSize),
		retry:       cfg.Retry,
		log:         log.WithComponent(common.ComponentRunner).WithFields("strategy", s.Name()),
	}

	metrics.BatchSizeLog(s.Name(), r.chunks.Size())

	return r
}

// Strategy returns the strategy the runner drives.
func (r *Runner) Strategy() strategy.Strategy {
	return r.strategy
}

// Run processes [task.From, task.To] batch by batch.
//
// A failed batch is not committed; the walk stops with a ProcessingError and
// everything before the batch stays durable. Range-too-large errors shrink the
// batch size and retry the same start block.
func (r *Runner) Run(ctx context.Context, task Task) (Result, error) {
	var res Result

	if task.From > task.To {
		return res, coordinator.NewValidationError("range",
			fmt.Sprintf("from_block %d is greater than to_block %d", task.From, task.To))
	}

	mode := modeForward
	if task.RunID != "" {
		mode = modeReindex
	}

	cursor := task.From
	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		if task.Stop != nil && task.Stop() {
			r.log.Debugf("walk stopped at batch boundary: next_block=%d, target=%d", cursor, task.To)
			return res, nil
		}

		size := r.chunks.Size()
		end := task.To
		if task.To-cursor >= size {
			end = cursor + size - 1
		}

		stats, err := r.runBatch(ctx, task.RunID, cursor, end)
		if err != nil {
			if rpc.IsChunkSizeError(err) && r.chunks.OnChunkError(rpc.SuggestedSpan(err)) {
				metrics.ProcessingErrorInc(r.strategy.Name(), "range_too_large")
				metrics.BatchSizeLog(r.strategy.Name(), r.chunks.Size())
				r.log.Warnf("batch [%d, %d] rejected as too large, shrinking batch size to %d: %v",
					cursor, end, r.chunks.Size(), err)
				continue
			}

			metrics.ProcessingErrorInc(r.strategy.Name(), errorKind(err))
			return res, err
		}

		r.chunks.OnSuccess()
		metrics.BatchSizeLog(r.strategy.Name(), r.chunks.Size())
		metrics.BatchLog(r.strategy.Name(), mode, end-cursor+1, stats.LogsFound, stats.RowsWritten, stats.Took)

		r.log.Debugf("%s batch done: from_block=%d, to_block=%d, logs=%d, rows=%d, took=%s",
			mode, stats.FromBlock, stats.ToBlock, stats.LogsFound, stats.RowsWritten, stats.Took)

		res.Stats.Add(stats)
		res.Last = end
		res.Processed = true

		if task.Progress != nil {
			task.Progress(end)
		}

		if end == task.To || end == math.MaxUint64 {
			res.Completed = true
			return res, nil
		}
		cursor = end + 1
	}
}

func (r *Runner) runBatch(ctx context.Context, runID string, from, to uint64) (strategy.Stats, error) {
	var retryCfg *config.RetryConfig
	if r.strategy.Idempotent() {
		retryCfg = r.retry
	}

	var stats strategy.Stats
	err := retry.DoIf(ctx, retryCfg, "batch_"+r.strategy.Name(), shouldRetry, func() error {
		var err error
		stats, err = r.processBatch(ctx, runID, from, to)
		return err
	})

	return stats, err
}

// processBatch runs the strategy over [from, to] and makes the batch durable: a
// range commit for forward walks, a journal progress update for reindex runs.
// Strategies implementing TxStrategy fetch first and then write in the same
// transaction as the commit.
func (r *Runner) processBatch(ctx context.Context, runID string, from, to uint64) (strategy.Stats, error) {
	start := time.Now()
	name := r.strategy.Name()

	// blocks before the strategy's start are trivially processed
	processFrom := max(from, r.strategy.FromBlock())
	skip := processFrom > to

	var (
		stats strategy.Stats
		err   error
	)

	if txs, ok := r.strategy.(strategy.TxStrategy); ok {
		stats, err = r.processBatchTx(ctx, txs, runID, from, processFrom, to, skip)
	} else {
		if !skip {
			stats, err = r.strategy.ProcessRange(ctx, processFrom, to)
			if err != nil {
				return stats, coordinator.NewProcessingError(name, from, to, err)
			}
		}

		if runID == "" {
			err = r.store.Commit(ctx, name, from, to)
		} else {
			err = r.store.UpdateRunProgress(ctx, runID, to)
		}
	}
	if err != nil {
		return stats, err
	}

	stats.FromBlock = from
	stats.ToBlock = to
	stats.Took = time.Since(start)

	return stats, nil
}

func (r *Runner) processBatchTx(
	ctx context.Context,
	s strategy.TxStrategy,
	runID string,
	from, processFrom, to uint64,
	skip bool,
) (stats strategy.Stats, err error) {
	// the chain is read before the write lock and the transaction are taken
	var batch *strategy.Batch
	if !skip {
		batch, err = s.FetchRange(ctx, processFrom, to)
		if err != nil {
			return stats, coordinator.NewProcessingError(s.Name(), from, to, err)
		}
	}

	unlock := r.maintenance.AcquireOperationLock()
	defer unlock()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				r.log.Errorf("failed to rollback batch [%d, %d]: %v", from, to, rbErr)
			}
		}
	}()

	if batch != nil {
		stats, err = s.ApplyTx(ctx, tx, batch)
		if err != nil {
			return stats, coordinator.NewProcessingError(s.Name(), from, to, err)
		}
	}

	if runID == "" {
		err = r.store.CommitTx(ctx, tx, s.Name(), from, to)
	} else {
		err = r.store.UpdateRunProgressTx(ctx, tx, runID, to)
	}
	if err != nil {
		return stats, err
	}

	if err = tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit batch [%d, %d]: %w", from, to, err)
	}

	return stats, nil
}

// shouldRetry retries transient failures. Range bookkeeping errors and
// range-too-large errors are handled by the caller.
func shouldRetry(err error) bool {
	var regErr *coordinator.RegressionError
	if errors.As(err, &regErr) || errors.Is(err, coordinator.ErrRangeGap) {
		return false
	}
	return retry.IsRetryable(err) && !rpc.IsChunkSizeError(err)
}

func errorKind(err error) string {
	var (
		regErr  *coordinator.RegressionError
		procErr *coordinator.ProcessingError
	)

	switch {
	case errors.As(err, &regErr):
		return "regression"
	case errors.Is(err, coordinator.ErrRangeGap):
		return "gap"
	case errors.Is(err, context.Canceled):
		return "cancelled"
	case errors.As(err, &procErr):
		return "strategy"
	default:
		return "storage"
	}
}
