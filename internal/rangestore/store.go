package rangestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/coordinator"
	pkgrangestore "github.com/goran-ethernal/RangeIndexor/pkg/rangestore"
	"github.com/puzpuzpuz/xsync/v4"
	"github.com/russross/meddler"
)

// Compile-time check to ensure Store implements pkgrangestore.Store interface.
var _ pkgrangestore.Store = (*Store)(nil)

type (
	StrategyRange = pkgrangestore.StrategyRange
	ReindexRun    = pkgrangestore.ReindexRun
)

const (
	rangesTable = "indexed_ranges"
	runsTable   = "reindex_runs"
)

// Store persists indexed ranges and the reindex journal.
// Writes for one strategy are serialized by a per-strategy mutex and run inside a transaction.
type Store struct {
	db          *db.DB
	meddler     *meddler.Database
	log         *logger.Logger
	maintenance db.Maintenance

	locks *xsync.Map[string, *sync.Mutex]
	now   func() time.Time
}

// New creates a Store on an already migrated database.
func New(database *db.DB, maintenance db.Maintenance, log *logger.Logger) *Store {
	if maintenance == nil {
		maintenance = &db.NoOpMaintenance{}
	}

	return &Store{
		db:          database,
		meddler:     database.Dialect.Meddler(),
		log:         log.WithComponent(common.ComponentRangeStore),
		maintenance: maintenance,
		locks:       xsync.NewMap[string, *sync.Mutex](),
		now:         time.Now,
	}
}

func (s *Store) lock(strategy string) func() {
	mu, _ := s.locks.LoadOrStore(strategy, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// Get returns the stored range of the strategy, or nil when no row exists.
func (s *Store) Get(ctx context.Context, strategy string) (*StrategyRange, error) {
	return s.get(ctx, s.db, strategy)
}

func (s *Store) get(_ context.Context, q meddler.DB, strategy string) (*StrategyRange, error) {
	var r StrategyRange
	err := s.meddler.QueryRow(q, &r,
		s.db.Rebind(`SELECT * FROM indexed_ranges WHERE strategy_name = ?`), strategy)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get range for %s: %w", strategy, err)
	}

	return &r, nil
}

// List returns all stored ranges ordered by strategy name.
func (s *Store) List(_ context.Context) ([]StrategyRange, error) {
	var rows []*StrategyRange
	if err := s.meddler.QueryAll(s.db, &rows,
		`SELECT * FROM indexed_ranges ORDER BY strategy_name`); err != nil {
		return nil, fmt.Errorf("failed to list ranges: %w", err)
	}

	ranges := make([]StrategyRange, 0, len(rows))
	for _, r := range rows {
		ranges = append(ranges, *r)
	}
	return ranges, nil
}

// Commit records that blocks [from, to] were processed.
//
// The first commit creates the row. Later commits must not move to_block backwards
// (RegressionError) and must start at most one block past the stored to_block
// (ErrRangeGap). Re-committing the current to_block is accepted.
func (s *Store) Commit(ctx context.Context, strategy string, from, to uint64) error {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := s.commitTx(ctx, tx, strategy, from, to); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Errorf("failed to rollback commit of %s: %v", strategy, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit range of %s: %w", strategy, err)
	}

	return nil
}

// CommitTx is Commit inside a transaction owned by the caller.
// The caller holds the maintenance operation lock for the lifetime of tx.
func (s *Store) CommitTx(ctx context.Context, tx *sql.Tx, strategy string, from, to uint64) error {
	return s.commitTx(ctx, tx, strategy, from, to)
}

func (s *Store) commitTx(ctx context.Context, tx *sql.Tx, strategy string, from, to uint64) error {
	if from > to {
		return coordinator.NewValidationError("range",
			fmt.Sprintf("from_block %d is greater than to_block %d", from, to))
	}

	unlock := s.lock(strategy)
	defer unlock()

	current, err := s.get(ctx, tx, strategy)
	if err != nil {
		return err
	}

	now := s.now().Unix()

	if current == nil {
		_, err = tx.ExecContext(ctx, s.db.Rebind(`
			INSERT INTO indexed_ranges (strategy_name, from_block, to_block, last_updated)
			VALUES (?, ?, ?, ?)
		`), strategy, from, to, now)
		if err != nil {
			return fmt.Errorf("failed to insert range for %s: %w", strategy, err)
		}

		s.committed(strategy, from, to)
		return nil
	}

	if to < current.ToBlock {
		RejectionInc(strategy, "regression")
		return coordinator.NewRegressionError(strategy, current.ToBlock, to)
	}

	if from > current.ToBlock+1 {
		RejectionInc(strategy, "gap")
		return fmt.Errorf("%w: strategy %s stored to_block %d, batch starts at %d",
			coordinator.ErrRangeGap, strategy, current.ToBlock, from)
	}

	newFrom := min(from, current.FromBlock)

	_, err = tx.ExecContext(ctx, s.db.Rebind(`
		UPDATE indexed_ranges SET from_block = ?, to_block = ?, last_updated = ?
		WHERE strategy_name = ?
	`), newFrom, to, now, strategy)
	if err != nil {
		return fmt.Errorf("failed to update range for %s: %w", strategy, err)
	}

	s.committed(strategy, newFrom, to)
	return nil
}

func (s *Store) committed(strategy string, from, to uint64) {
	CommitInc(strategy)
	RangeLog(strategy, from, to)
	s.log.Debugf("committed range: strategy=%s, from_block=%d, to_block=%d", strategy, from, to)
}

// Reset overwrites the stored range of the strategy.
func (s *Store) Reset(ctx context.Context, strategy string, from, to uint64) error {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.resetTx(ctx, tx, strategy, from, to)
	})
}

func (s *Store) resetTx(ctx context.Context, tx *sql.Tx, strategy string, from, to uint64) error {
	if from > to {
		return coordinator.NewValidationError("range",
			fmt.Sprintf("from_block %d is greater than to_block %d", from, to))
	}

	unlock := s.lock(strategy)
	defer unlock()

	_, err := tx.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO indexed_ranges (strategy_name, from_block, to_block, last_updated)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (strategy_name) DO UPDATE SET
			from_block = excluded.from_block,
			to_block = excluded.to_block,
			last_updated = excluded.last_updated
	`), strategy, from, to, s.now().Unix())
	if err != nil {
		return fmt.Errorf("failed to reset range for %s: %w", strategy, err)
	}

	RangeLog(strategy, from, to)
	s.log.Infof("range reset: strategy=%s, from_block=%d, to_block=%d", strategy, from, to)

	return nil
}

// StartRun journals a new reindex run for the strategy.
func (s *Store) StartRun(ctx context.Context, strategy string, from, to uint64) (*ReindexRun, error) {
	if from > to {
		return nil, coordinator.NewValidationError("range",
			fmt.Sprintf("from_block %d is greater than to_block %d", from, to))
	}

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	run := &ReindexRun{
		ID:           uuid.NewString(),
		StrategyName: strategy,
		FromBlock:    from,
		ToBlock:      to,
		CurrentBlock: from,
		Status:       pkgrangestore.RunRunning,
		StartedAt:    s.now().Unix(),
	}

	_, err := s.db.ExecContext(ctx, s.db.Rebind(`
		INSERT INTO reindex_runs (id, strategy_name, from_block, to_block, current_block, status, error, started_at)
		VALUES (?, ?, ?, ?, ?, ?, '', ?)
	`), run.ID, run.StrategyName, run.FromBlock, run.ToBlock, run.CurrentBlock, string(run.Status), run.StartedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to journal reindex run for %s: %w", strategy, err)
	}

	s.log.Infof("reindex run started: id=%s, strategy=%s, from_block=%d, to_block=%d",
		run.ID, strategy, from, to)

	return run, nil
}

// UpdateRunProgress moves the current marker of a running reindex run.
func (s *Store) UpdateRunProgress(ctx context.Context, runID string, current uint64) error {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	return s.updateRunProgress(ctx, s.db, runID, current)
}

// UpdateRunProgressTx is UpdateRunProgress inside a transaction owned by the caller.
func (s *Store) UpdateRunProgressTx(ctx context.Context, tx *sql.Tx, runID string, current uint64) error {
	return s.updateRunProgress(ctx, tx, runID, current)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) updateRunProgress(ctx context.Context, e execer, runID string, current uint64) error {
	_, err := e.ExecContext(ctx, s.db.Rebind(`
		UPDATE reindex_runs SET current_block = ? WHERE id = ? AND status = ?
	`), current, runID, string(pkgrangestore.RunRunning))
	if err != nil {
		return fmt.Errorf("failed to update reindex run %s: %w", runID, err)
	}
	return nil
}

// CompleteRun resets the range of the run's strategy to [from, to] and marks the run
// completed in one transaction.
func (s *Store) CompleteRun(ctx context.Context, runID string, from, to uint64) error {
	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		run, err := s.getRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("reindex run %s not found", runID)
		}

		if err := s.resetTx(ctx, tx, run.StrategyName, from, to); err != nil {
			return err
		}

		return s.finishRun(ctx, tx, runID, pkgrangestore.RunCompleted, "", run.ToBlock)
	})
	if err != nil {
		return err
	}

	ReindexRunInc(string(pkgrangestore.RunCompleted))
	return nil
}

// FinishRun marks a run failed or interrupted. The stored range is left untouched.
func (s *Store) FinishRun(ctx context.Context, runID string, status pkgrangestore.RunStatus, reason string) error {
	if status == pkgrangestore.RunRunning || status == pkgrangestore.RunCompleted {
		return fmt.Errorf("invalid terminal status %q, use CompleteRun for completed runs", status)
	}

	unlock := s.maintenance.AcquireOperationLock()
	defer unlock()

	err := s.withTx(ctx, func(tx *sql.Tx) error {
		run, err := s.getRun(ctx, tx, runID)
		if err != nil {
			return err
		}
		if run == nil {
			return fmt.Errorf("reindex run %s not found", runID)
		}
		return s.finishRun(ctx, tx, runID, status, reason, run.CurrentBlock)
	})
	if err != nil {
		return err
	}

	ReindexRunInc(string(status))
	s.log.Warnf("reindex run finished: id=%s, status=%s, reason=%s", runID, status, reason)
	return nil
}

func (s *Store) finishRun(ctx context.Context, tx *sql.Tx, runID string,
	status pkgrangestore.RunStatus, reason string, current uint64) error {
	_, err := tx.ExecContext(ctx, s.db.Rebind(`
		UPDATE reindex_runs SET status = ?, error = ?, current_block = ?, finished_at = ?
		WHERE id = ?
	`), string(status), reason, current, s.now().Unix(), runID)
	if err != nil {
		return fmt.Errorf("failed to finish reindex run %s: %w", runID, err)
	}
	return nil
}

// GetRun returns the journaled run, or nil when it does not exist.
func (s *Store) GetRun(ctx context.Context, runID string) (*ReindexRun, error) {
	return s.getRun(ctx, s.db, runID)
}

func (s *Store) getRun(_ context.Context, q meddler.DB, runID string) (*ReindexRun, error) {
	var run ReindexRun
	err := s.meddler.QueryRow(q, &run, s.db.Rebind(`SELECT * FROM reindex_runs WHERE id = ?`), runID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get reindex run %s: %w", runID, err)
	}
	return &run, nil
}

// PendingRuns returns the runs left in the running state, oldest first.
// After a restart these are runs interrupted by the crash.
func (s *Store) PendingRuns(_ context.Context) ([]ReindexRun, error) {
	var rows []*ReindexRun
	err := s.meddler.QueryAll(s.db, &rows, s.db.Rebind(`
		SELECT * FROM reindex_runs WHERE status = ? ORDER BY started_at, strategy_name
	`), string(pkgrangestore.RunRunning))
	if err != nil {
		return nil, fmt.Errorf("failed to list pending reindex runs: %w", err)
	}

	runs := make([]ReindexRun, 0, len(rows))
	for _, r := range rows {
		runs = append(runs, *r)
	}
	return runs, nil
}

func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			s.log.Errorf("failed to rollback transaction: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
