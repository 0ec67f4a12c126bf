package rangestore

import (
	"context"
	"database/sql"
)

// StrategyRange is the accumulated, contiguous block range a strategy has fully processed.
// Uses meddler tags for automatic struct-to-db mapping.
type StrategyRange struct {
	StrategyName string `meddler:"strategy_name" json:"strategy_name"`
	FromBlock    uint64 `meddler:"from_block" json:"from_block"`
	ToBlock      uint64 `meddler:"to_block" json:"to_block"`
	LastUpdated  int64  `meddler:"last_updated" json:"last_updated"`
}

// RunStatus is the lifecycle state of a journaled reindex run.
type RunStatus string

const (
	RunRunning     RunStatus = "running"
	RunCompleted   RunStatus = "completed"
	RunFailed      RunStatus = "failed"
	RunInterrupted RunStatus = "interrupted"
)

// ReindexRun is a journaled reindex of [FromBlock, ToBlock] for one strategy.
// CurrentBlock is the last block the run finished; it does not touch the accumulated range
// until the run completes.
type ReindexRun struct {
	ID           string    `meddler:"id" json:"id"`
	StrategyName string    `meddler:"strategy_name" json:"strategy_name"`
	FromBlock    uint64    `meddler:"from_block" json:"from_block"`
	ToBlock      uint64    `meddler:"to_block" json:"to_block"`
	CurrentBlock uint64    `meddler:"current_block" json:"current_block"`
	Status       RunStatus `meddler:"status" json:"status"`
	Error        string    `meddler:"error" json:"error,omitempty"`
	StartedAt    int64     `meddler:"started_at" json:"started_at"`
	FinishedAt   int64     `meddler:"finished_at,zeroisnull" json:"finished_at,omitempty"`
}

// Store persists per-strategy indexed ranges and the reindex journal.
type Store interface {
	// Get returns the range of the strategy, or nil when nothing was committed yet.
	Get(ctx context.Context, strategy string) (*StrategyRange, error)

	// List returns all ranges ordered by strategy name.
	List(ctx context.Context) ([]StrategyRange, error)

	// Commit records that [from, to] has been processed, extending the accumulated range.
	Commit(ctx context.Context, strategy string, from, to uint64) error

	// CommitTx is Commit inside a caller-owned transaction.
	CommitTx(ctx context.Context, tx *sql.Tx, strategy string, from, to uint64) error

	// Reset overwrites the accumulated range.
	Reset(ctx context.Context, strategy string, from, to uint64) error

	// StartRun journals a new reindex run.
	StartRun(ctx context.Context, strategy string, from, to uint64) (*ReindexRun, error)

	// UpdateRunProgress moves the run's current marker.
	UpdateRunProgress(ctx context.Context, runID string, current uint64) error

	// UpdateRunProgressTx is UpdateRunProgress inside a caller-owned transaction.
	UpdateRunProgressTx(ctx context.Context, tx *sql.Tx, runID string, current uint64) error

	// CompleteRun resets the strategy range to [from, to] and marks the run completed atomically.
	CompleteRun(ctx context.Context, runID string, from, to uint64) error

	// FinishRun marks the run failed or interrupted without touching the range.
	FinishRun(ctx context.Context, runID string, status RunStatus, reason string) error

	// GetRun returns a journaled run, or nil.
	GetRun(ctx context.Context, runID string) (*ReindexRun, error)

	// PendingRuns returns runs still marked running, oldest first.
	PendingRuns(ctx context.Context) ([]ReindexRun, error)
}
