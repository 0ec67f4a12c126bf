package coordinator

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/goran-ethernal/RangeIndexor/internal/metrics"
	"github.com/goran-ethernal/RangeIndexor/internal/runner"
	"github.com/goran-ethernal/RangeIndexor/internal/status"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/rangestore"
)

const reasonNotConfigured = "strategy is no longer configured"

// reindexJob is one strategy's reindex from acceptance to completion.
// from, to and runID are written by the owning worker before resolved is set.
type reindexJob struct {
	strategy string
	reqFrom  *uint64
	reqTo    *uint64

	runID    string
	from     uint64
	to       uint64
	next     uint64
	resolved atomic.Bool
	current  atomic.Uint64
}

// progress is the status view of the job. An unresolved job reports 0/0.
func (j *reindexJob) progress() status.Run {
	if !j.resolved.Load() {
		return status.Run{Strategy: j.strategy, IsReindex: true, Calculating: true}
	}

	return status.Run{
		Strategy:  j.strategy,
		From:      j.from,
		To:        j.to,
		Current:   j.current.Load(),
		IsReindex: true,
	}
}

// Reindex validates the request, claims a reindex slot for every target strategy,
// and hands the jobs to the strategies' workers. The range is resolved asynchronously.
func (c *Coordinator) Reindex(_ context.Context, req coordinator.ReindexRequest) (coordinator.CommandResult, error) {
	targets, err := c.reindexTargets(req)
	if err != nil {
		metrics.CommandInc("reindex", "invalid")
		return coordinator.CommandResult{}, err
	}

	c.cmdMu.Lock()

	for _, w := range targets {
		if _, busy := c.reindexing.Load(w.name); busy {
			c.cmdMu.Unlock()
			metrics.CommandInc("reindex", "conflict")
			return coordinator.CommandResult{}, coordinator.NewReindexConflictError(w.name)
		}
	}

	if _, err := c.control.TransitionTo(coordinator.StateReindexing); err != nil {
		c.cmdMu.Unlock()
		metrics.CommandInc("reindex", "error")
		return coordinator.CommandResult{}, err
	}

	for _, w := range targets {
		c.submit(w, &reindexJob{strategy: w.name, reqFrom: req.From, reqTo: req.To})
	}

	c.cmdMu.Unlock()

	for _, w := range targets {
		w.wake()
	}

	metrics.CommandInc("reindex", "ok")
	c.log.Infof("reindex accepted for %d strategies", len(targets))

	return coordinator.CommandResult{OK: true, Msg: "reindexing"}, nil
}

func (c *Coordinator) reindexTargets(req coordinator.ReindexRequest) ([]*worker, error) {
	if req.From != nil && req.To != nil && *req.From > *req.To {
		return nil, coordinator.NewValidationError("from",
			fmt.Sprintf("from %d is greater than to %d", *req.From, *req.To))
	}

	if req.Strategy == nil || *req.Strategy == "" {
		return c.workers, nil
	}

	w, ok := c.byName[*req.Strategy]
	if !ok {
		return nil, coordinator.NewValidationError("strategy", fmt.Sprintf("unknown strategy %q", *req.Strategy))
	}

	return []*worker{w}, nil
}

// submit registers a job; callers hold cmdMu.
func (c *Coordinator) submit(w *worker, job *reindexJob) {
	c.reindexing.Store(w.name, job)
	w.pending.Store(job)
	w.halted.Store(false)
}

// release drops a finished job and returns to running once no reindex is left.
func (c *Coordinator) release(w *worker, job *reindexJob) {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	w.pending.CompareAndSwap(job, nil)
	if cur, ok := c.reindexing.Load(w.name); ok && cur == job {
		c.reindexing.Delete(w.name)
	}

	if c.reindexing.Size() == 0 {
		if _, err := c.control.CompareAndTransition(coordinator.StateReindexing, coordinator.StateRunning); err != nil {
			c.log.Errorf("failed to leave reindexing state: %v", err)
		}
	}
}

// runReindex advances the job until it completes, fails, or the system is paused.
func (c *Coordinator) runReindex(ctx context.Context, w *worker, job *reindexJob, changed <-chan struct{}) {
	if !job.resolved.Load() {
		from, to, err := c.resolveRange(ctx, w, job)
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			var headErr *coordinator.HeadUnavailableError
			if errors.As(err, &headErr) {
				// no head observed yet; stay calculating and try again
				c.log.Warnf("reindex of %s waiting for the chain head: %v", w.name, err)
				c.wait(ctx, w, changed, c.pollInterval)
				return
			}

			c.failReindex(ctx, w, job, err)
			return
		}

		run, err := c.store.StartRun(ctx, w.name, from, to)
		if err != nil {
			if ctx.Err() == nil {
				c.failReindex(ctx, w, job, err)
			}
			return
		}

		job.runID = run.ID
		job.from, job.to, job.next = from, to, from
		job.current.Store(from)
		job.resolved.Store(true)
	}

	res, err := w.runner.Run(ctx, runner.Task{
		From:  job.next,
		To:    job.to,
		RunID: job.runID,
		Stop:  c.paused,
		Progress: func(block uint64) {
			job.current.Store(block)
		},
	})
	if res.Processed {
		job.next = res.Last + 1
	}
	if err != nil {
		if ctx.Err() == nil {
			c.failReindex(ctx, w, job, err)
		}
		return
	}
	if !res.Completed {
		return
	}

	c.completeReindex(ctx, w, job)
}

// resolveRange fills in request defaults: from is the stored from_block, or the
// strategy start block when nothing was indexed; to is the chain head.
func (c *Coordinator) resolveRange(ctx context.Context, w *worker, job *reindexJob) (uint64, uint64, error) {
	from := w.runner.Strategy().FromBlock()
	if job.reqFrom != nil {
		from = *job.reqFrom
	} else {
		current, err := c.store.Get(ctx, w.name)
		if err != nil {
			return 0, 0, err
		}
		if current != nil {
			from = current.FromBlock
		}
	}

	var to uint64
	if job.reqTo != nil {
		to = *job.reqTo
	} else {
		head, err := c.head.Refresh(ctx)
		if err != nil {
			if !head.Known() {
				return 0, 0, err
			}
			c.log.Warnf("reindex of %s using last known head %d: %v", w.name, head.Number, err)
		}
		to = head.Number
	}

	if from > to {
		return 0, 0, coordinator.NewValidationError("range",
			fmt.Sprintf("resolved from %d is greater than resolved to %d", from, to))
	}

	return from, to, nil
}

// completeReindex folds the reindexed range into the accumulated one. History is
// never shrunk; a disjoint range leaves the accumulated range as it is.
func (c *Coordinator) completeReindex(ctx context.Context, w *worker, job *reindexJob) {
	prior, err := c.store.Get(ctx, w.name)
	if err != nil {
		if ctx.Err() == nil {
			c.failReindex(ctx, w, job, err)
		}
		return
	}

	from, to, merged := mergeRange(prior, job.from, job.to)
	if !merged {
		c.log.Warnf("reindexed range [%d, %d] of %s is disjoint from indexed range [%d, %d], keeping the indexed range",
			job.from, job.to, w.name, prior.FromBlock, prior.ToBlock)
	}

	if err := c.store.CompleteRun(ctx, job.runID, from, to); err != nil {
		if ctx.Err() == nil {
			c.failReindex(ctx, w, job, err)
		}
		return
	}

	c.release(w, job)

	c.log.Infof("reindex of %s completed: [%d, %d], indexed range now [%d, %d]",
		w.name, job.from, job.to, from, to)
}

// failReindex ends the job. Its journaled blocks never reach the indexed range.
func (c *Coordinator) failReindex(ctx context.Context, w *worker, job *reindexJob, cause error) {
	c.setLastError(cause)
	c.log.Errorf("reindex of %s failed: %v", w.name, cause)

	if job.runID != "" {
		if err := c.store.FinishRun(context.WithoutCancel(ctx), job.runID, rangestore.RunFailed, cause.Error()); err != nil {
			c.log.Errorf("failed to mark reindex run %s failed: %v", job.runID, err)
		}
	}

	c.release(w, job)
}

func mergeRange(prior *rangestore.StrategyRange, from, to uint64) (uint64, uint64, bool) {
	if prior == nil {
		return from, to, true
	}

	disjoint := to+1 < prior.FromBlock || from > prior.ToBlock+1
	if disjoint {
		return prior.FromBlock, prior.ToBlock, false
	}

	return min(from, prior.FromBlock), max(to, prior.ToBlock), true
}

// resumePending picks up reindex runs left running by a previous process.
func (c *Coordinator) resumePending(ctx context.Context) error {
	runs, err := c.store.PendingRuns(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pending reindex runs: %w", err)
	}

	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	resumed := 0
	for _, run := range runs {
		w, ok := c.byName[run.StrategyName]
		if !ok {
			if err := c.store.FinishRun(ctx, run.ID, rangestore.RunInterrupted, reasonNotConfigured); err != nil {
				return err
			}
			c.log.Warnf("reindex run %s of %s interrupted: %s", run.ID, run.StrategyName, reasonNotConfigured)
			continue
		}

		if _, busy := c.reindexing.Load(w.name); busy {
			if err := c.store.FinishRun(ctx, run.ID, rangestore.RunInterrupted, "superseded by a newer run"); err != nil {
				return err
			}
			continue
		}

		job := &reindexJob{
			strategy: w.name,
			runID:    run.ID,
			from:     run.FromBlock,
			to:       run.ToBlock,
			next:     run.CurrentBlock,
		}
		job.current.Store(run.CurrentBlock)
		job.resolved.Store(true)

		c.submit(w, job)
		resumed++

		c.log.Infof("resuming reindex run %s of %s at block %d of [%d, %d]",
			run.ID, w.name, run.CurrentBlock, run.FromBlock, run.ToBlock)
	}

	if resumed > 0 {
		if _, err := c.control.TransitionTo(coordinator.StateReindexing); err != nil {
			return err
		}
	}

	return nil
}

// applyForceReindex reindexes the named strategies from their start block to the head.
func (c *Coordinator) applyForceReindex() {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	forced := 0
	for _, name := range c.forceReindex {
		w, ok := c.byName[name]
		if !ok {
			continue
		}
		if _, busy := c.reindexing.Load(name); busy {
			c.log.Infof("force reindex of %s skipped, a journaled run is being resumed", name)
			continue
		}

		from := w.runner.Strategy().FromBlock()
		c.submit(w, &reindexJob{strategy: name, reqFrom: &from})
		forced++

		c.log.Infof("force reindex of %s from block %d", name, from)
	}

	if forced > 0 {
		if _, err := c.control.TransitionTo(coordinator.StateReindexing); err != nil {
			c.log.Errorf("failed to enter reindexing state: %v", err)
		}
	}
}
