package coordinator

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/headtracker"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/internal/metrics"
	"github.com/goran-ethernal/RangeIndexor/internal/runner"
	"github.com/goran-ethernal/RangeIndexor/internal/status"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	"github.com/goran-ethernal/RangeIndexor/pkg/rangestore"
	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"
)

// Compile-time check to ensure Coordinator implements coordinator.Controller interface.
var _ coordinator.Controller = (*Coordinator)(nil)

// HeadSource supplies the chain head.
type HeadSource interface {
	CurrentHead() headtracker.Head
	Refresh(ctx context.Context) (headtracker.Head, error)
	Start(ctx context.Context) error
}

// Options tune the coordinator.
type Options struct {
	// PollInterval is how long a caught-up or failed strategy waits before looking again.
	PollInterval time.Duration
	// ForceReindex names strategies reindexed from their start block once on startup.
	ForceReindex []string
}

// worker is the single owner of one strategy's writes. It runs forward walks and,
// when one is pending, the strategy's reindex run.
type worker struct {
	name       string
	runner     *runner.Runner
	idempotent bool

	kick    chan struct{}
	pending atomic.Pointer[reindexJob]
	forward atomic.Pointer[status.Run]
	// halted stops forward walks of a non-idempotent strategy after a failure
	// until the next resume or reindex command.
	halted atomic.Bool
}

func (w *worker) wake() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Coordinator drives one worker per strategy and owns the control state.
type Coordinator struct {
	store        rangestore.Store
	head         HeadSource
	control      *control
	workers      []*worker
	byName       map[string]*worker
	pollInterval time.Duration
	forceReindex []string
	log          *logger.Logger

	// cmdMu serializes commands and reindex completion so the control state
	// always agrees with the reindex slots.
	cmdMu      sync.Mutex
	reindexing *xsync.Map[string, *reindexJob]

	lastErr atomic.Pointer[string]
}

// New creates a coordinator over the given runners, one per strategy.
func New(
	runners []*runner.Runner,
	store rangestore.Store,
	head HeadSource,
	opts Options,
	log *logger.Logger,
) *Coordinator {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 5 * time.Second //nolint:mnd
	}

	c := &Coordinator{
		store:        store,
		head:         head,
		control:      newControl(),
		byName:       make(map[string]*worker, len(runners)),
		pollInterval: opts.PollInterval,
		forceReindex: opts.ForceReindex,
		log:          log.WithComponent(common.ComponentCoordinator),
		reindexing:   xsync.NewMap[string, *reindexJob](),
	}

	for _, r := range runners {
		w := &worker{
			name:       r.Strategy().Name(),
			runner:     r,
			idempotent: r.Strategy().Idempotent(),
			kick:       make(chan struct{}, 1),
		}
		c.workers = append(c.workers, w)
		c.byName[w.name] = w
	}

	return c
}

// State returns the current control state.
func (c *Coordinator) State() coordinator.ControlState {
	return c.control.Load()
}

// Run resumes journaled reindex runs, applies force_reindex, and drives all
// strategies and the head tracker until ctx is done.
func (c *Coordinator) Run(ctx context.Context) error {
	if err := c.resumePending(ctx); err != nil {
		return err
	}

	c.applyForceReindex()

	c.log.Infof("coordinator started with %d strategies", len(c.workers))

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return c.head.Start(gctx)
	})

	for _, w := range c.workers {
		g.Go(func() error {
			c.work(gctx, w)
			return nil
		})
	}

	err := g.Wait()

	c.log.Info("coordinator stopped")

	return err
}

func (c *Coordinator) paused() bool {
	return c.control.Load() == coordinator.StatePaused
}

// work is the owning loop of one strategy.
func (c *Coordinator) work(ctx context.Context, w *worker) {
	for ctx.Err() == nil {
		// capture before inspecting state so a transition in between is not missed
		changed := c.control.Changed()

		if c.paused() {
			c.wait(ctx, w, changed, 0)
			continue
		}

		if job := w.pending.Load(); job != nil {
			c.runReindex(ctx, w, job, changed)
			continue
		}

		if w.halted.Load() {
			c.wait(ctx, w, changed, 0)
			continue
		}

		idle, err := c.stepForward(ctx, w)
		if ctx.Err() != nil {
			return
		}
		if idle || err != nil {
			c.wait(ctx, w, changed, c.pollInterval)
		}
	}
}

// wait blocks until ctx is done, the worker is kicked, the control state changes,
// or timeout elapses. A zero timeout waits without a deadline.
func (c *Coordinator) wait(ctx context.Context, w *worker, changed <-chan struct{}, timeout time.Duration) {
	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case <-ctx.Done():
	case <-w.kick:
	case <-changed:
	case <-timer:
	}
}

// stepForward walks the strategy from its committed to_block up to the known head.
// It reports idle when there is nothing to do.
func (c *Coordinator) stepForward(ctx context.Context, w *worker) (idle bool, err error) {
	current, err := c.store.Get(ctx, w.name)
	if err != nil {
		c.log.Errorf("failed to read range of %s: %v", w.name, err)
		return false, err
	}

	from := w.runner.Strategy().FromBlock()
	if current != nil {
		if current.ToBlock == math.MaxUint64 {
			return true, nil
		}
		from = current.ToBlock + 1
	}

	head := c.head.CurrentHead()
	if !head.Known() || from > head.Number {
		return true, nil
	}

	to := head.Number
	w.forward.Store(&status.Run{Strategy: w.name, From: from, To: to, Current: from})
	defer w.forward.Store(nil)

	_, err = w.runner.Run(ctx, runner.Task{
		From: from,
		To:   to,
		Stop: func() bool {
			return c.paused() || w.pending.Load() != nil
		},
		Progress: func(block uint64) {
			w.forward.Store(&status.Run{Strategy: w.name, From: from, To: to, Current: block})
		},
	})
	if err == nil || ctx.Err() != nil {
		return false, nil
	}

	c.setLastError(err)

	var regErr *coordinator.RegressionError
	switch {
	case errors.As(err, &regErr):
		c.log.Errorf("forward walk of %s rejected, restarting from the last committed block: %v", w.name, err)
	case w.idempotent:
		c.log.Errorf("forward walk of %s failed, resuming from the last committed block: %v", w.name, err)
	default:
		w.halted.Store(true)
		c.log.Errorf("forward walk of %s failed, halted until the next resume or reindex: %v", w.name, err)
	}

	return false, err
}

// Status returns the current snapshot. It reads committed ranges and the
// workers' published progress only.
func (c *Coordinator) Status(ctx context.Context) (coordinator.StatusSnapshot, error) {
	ranges, err := c.store.List(ctx)
	if err != nil {
		return coordinator.StatusSnapshot{}, fmt.Errorf("failed to read indexed ranges: %w", err)
	}

	head := c.head.CurrentHead()

	in := status.Input{
		State:      c.control.Load(),
		Head:       head.Number,
		HeadStale:  head.Stale,
		Strategies: make([]string, 0, len(c.workers)),
		Ranges:     ranges,
	}

	if msg := c.lastErr.Load(); msg != nil {
		in.LastError = *msg
	}

	for _, w := range c.workers {
		in.Strategies = append(in.Strategies, w.name)

		if job, ok := c.reindexing.Load(w.name); ok {
			in.Runs = append(in.Runs, job.progress())
			continue
		}
		if run := w.forward.Load(); run != nil {
			in.Runs = append(in.Runs, *run)
		}
	}

	snapshot := status.Project(in)
	for _, s := range snapshot.Strategies {
		metrics.BehindLog(s.Name, s.Behind)
	}

	return snapshot, nil
}

// Pause stops all strategies at their next batch boundary. Pausing twice succeeds.
func (c *Coordinator) Pause(_ context.Context) (coordinator.CommandResult, error) {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	prev, err := c.control.TransitionTo(coordinator.StatePaused)
	if err != nil {
		metrics.CommandInc("pause", "error")
		return coordinator.CommandResult{}, err
	}

	metrics.CommandInc("pause", "ok")

	if prev == coordinator.StatePaused {
		return coordinator.CommandResult{OK: true, Msg: "already paused"}, nil
	}

	c.log.Infof("indexing paused (was %s)", prev)

	return coordinator.CommandResult{OK: true, Msg: "paused"}, nil
}

// Resume lets strategies continue from their last committed block. It returns to
// reindexing when a reindex run is still active. Resuming a running system succeeds.
func (c *Coordinator) Resume(_ context.Context) (coordinator.CommandResult, error) {
	c.cmdMu.Lock()
	defer c.cmdMu.Unlock()

	c.lastErr.Store(nil)
	for _, w := range c.workers {
		if w.halted.CompareAndSwap(true, false) {
			w.wake()
		}
	}

	if state := c.control.Load(); state != coordinator.StatePaused {
		metrics.CommandInc("resume", "ok")
		return coordinator.CommandResult{OK: true, Msg: "already " + string(state)}, nil
	}

	target := coordinator.StateRunning
	if c.reindexing.Size() > 0 {
		target = coordinator.StateReindexing
	}

	if _, err := c.control.CompareAndTransition(coordinator.StatePaused, target); err != nil {
		metrics.CommandInc("resume", "error")
		return coordinator.CommandResult{}, err
	}

	metrics.CommandInc("resume", "ok")
	c.log.Infof("indexing resumed (%s)", target)

	return coordinator.CommandResult{OK: true, Msg: "resumed"}, nil
}

func (c *Coordinator) setLastError(err error) {
	msg := err.Error()
	c.lastErr.Store(&msg)
}
