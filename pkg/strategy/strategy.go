package strategy

import (
	"context"
	"database/sql"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/rpc"
)

// Strategy defines the interface that all indexing strategies must implement.
// The coordinator walks a strategy over contiguous block ranges and records the
// accumulated range it has processed.
type Strategy interface {
	// Name returns the unique strategy name. It keys the strategy's indexed range.
	Name() string

	// Type returns the registered strategy type.
	Type() string

	// FromBlock returns the first block the strategy cares about.
	// Batches ending before it are skipped.
	FromBlock() uint64

	// Idempotent reports whether processing the same range twice yields the same state.
	// Only idempotent strategies have failed batches retried.
	Idempotent() bool

	// ProcessRange processes blocks [from, to] inclusive.
	ProcessRange(ctx context.Context, from, to uint64) (Stats, error)
}

// TxStrategy is implemented by strategies whose writes can share a transaction with the
// range commit, so output rows and the indexed range land atomically.
//
// Processing is split in two: FetchRange reads the chain without touching storage and
// runs outside any transaction, ApplyTx only writes. The write lock is held for ApplyTx alone.
type TxStrategy interface {
	Strategy

	// FetchRange reads the chain data of blocks [from, to] inclusive.
	FetchRange(ctx context.Context, from, to uint64) (*Batch, error)

	// ApplyTx writes batch through tx.
	// Implementations must not commit or roll back tx.
	ApplyTx(ctx context.Context, tx *sql.Tx, batch *Batch) (Stats, error)
}

// Batch is the chain data of [From, To] fetched ahead of a write.
type Batch struct {
	From uint64
	To   uint64
	Logs []types.Log
}

// Stats describes one processed batch.
type Stats struct {
	LogsFound   int
	RowsWritten int
	FromBlock   uint64
	ToBlock     uint64
	Took        time.Duration
}

// Add accumulates other into s, widening the block span.
func (s *Stats) Add(other Stats) {
	if s.FromBlock == 0 && s.ToBlock == 0 {
		s.FromBlock = other.FromBlock
	} else {
		s.FromBlock = min(s.FromBlock, other.FromBlock)
	}
	s.ToBlock = max(s.ToBlock, other.ToBlock)
	s.LogsFound += other.LogsFound
	s.RowsWritten += other.RowsWritten
	s.Took += other.Took
}

// Deps are the shared resources handed to strategy factories.
type Deps struct {
	DB          *db.DB
	Client      rpc.EthClient
	Maintenance db.Maintenance
	Log         *logger.Logger
}
