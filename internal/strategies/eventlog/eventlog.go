// Package eventlog is a strategy storing the raw logs of configured contracts.
package eventlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	internalcommon "github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/internal/strategies/eventlog/migrations"
	"github.com/goran-ethernal/RangeIndexor/internal/strategies/logfilter"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/rpc"
	"github.com/goran-ethernal/RangeIndexor/pkg/strategy"
	"github.com/russross/meddler"
)

// Type is the registered strategy type.
const Type = "eventlog"

const table = "event_logs"

// Compile-time check to ensure Strategy implements strategy.TxStrategy interface.
var _ strategy.TxStrategy = (*Strategy)(nil)

func init() {
	strategy.Register(Type, New)
}

// EventLog is a stored log.
type EventLog struct {
	StrategyName string         `meddler:"strategy_name" json:"strategy_name"`
	BlockNumber  uint64         `meddler:"block_number" json:"block_number"`
	BlockHash    common.Hash    `meddler:"block_hash,hash" json:"block_hash"`
	TxHash       common.Hash    `meddler:"tx_hash,hash" json:"tx_hash"`
	TxIndex      uint           `meddler:"tx_index" json:"tx_index"`
	LogIndex     uint           `meddler:"log_index" json:"log_index"`
	Address      common.Address `meddler:"address,address" json:"address"`
	Topic0       *common.Hash   `meddler:"topic0,hash" json:"topic0,omitempty"`
	Topics       []common.Hash  `meddler:"topics,json" json:"topics"`
	Data         string         `meddler:"data" json:"data"`
}

// Strategy stores every log matched by its filter.
type Strategy struct {
	cfg     config.StrategyConfig
	db      *db.DB
	meddler *meddler.Database
	client  rpc.EthClient
	filter  *logfilter.Filter
	log     *logger.Logger
}

// New creates an eventlog strategy and migrates its table.
func New(cfg config.StrategyConfig, deps strategy.Deps) (strategy.Strategy, error) {
	if deps.DB == nil || deps.Client == nil {
		return nil, errors.New("eventlog strategy requires a database and an RPC client")
	}

	filter, err := logfilter.New(cfg.Contracts)
	if err != nil {
		return nil, err
	}

	log := deps.Log
	if log == nil {
		log = logger.GetDefaultLogger()
	}
	log = log.WithComponent(internalcommon.ComponentStrategy).WithFields("strategy", cfg.Name)

	if err := migrations.RunMigrations(log, deps.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &Strategy{
		cfg:     cfg,
		db:      deps.DB,
		meddler: deps.DB.Dialect.Meddler(),
		client:  deps.Client,
		filter:  filter,
		log:     log,
	}, nil
}

func (s *Strategy) Name() string      { return s.cfg.Name }
func (s *Strategy) Type() string      { return Type }
func (s *Strategy) FromBlock() uint64 { return s.cfg.FromBlock }

// Idempotent is true: a range is replaced, never appended to.
func (s *Strategy) Idempotent() bool { return true }

// ProcessRange stores the logs of [from, to] in its own transaction.
func (s *Strategy) ProcessRange(ctx context.Context, from, to uint64) (strategy.Stats, error) {
	batch, err := s.FetchRange(ctx, from, to)
	if err != nil {
		return strategy.Stats{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return strategy.Stats{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.log.Errorf("failed to rollback transaction: %v", err)
		}
	}()

	stats, err := s.ApplyTx(ctx, tx, batch)
	if err != nil {
		return stats, err
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return stats, nil
}

// FetchRange reads the matching logs of [from, to].
func (s *Strategy) FetchRange(ctx context.Context, from, to uint64) (*strategy.Batch, error) {
	logs, err := s.filter.Fetch(ctx, s.client, from, to)
	if err != nil {
		return nil, err
	}
	return &strategy.Batch{From: from, To: to, Logs: logs}, nil
}

// ApplyTx replaces the stored logs of the batch range through tx.
func (s *Strategy) ApplyTx(ctx context.Context, tx *sql.Tx, batch *strategy.Batch) (strategy.Stats, error) {
	start := time.Now()

	if _, err := tx.ExecContext(ctx, s.db.Rebind(`
		DELETE FROM event_logs WHERE strategy_name = ? AND block_number BETWEEN ? AND ?
	`), s.cfg.Name, batch.From, batch.To); err != nil {
		return strategy.Stats{}, fmt.Errorf("failed to clear logs of [%d, %d]: %w", batch.From, batch.To, err)
	}

	logs := batch.Logs
	for i := range logs {
		if err := s.meddler.Insert(tx, table, s.toRow(&logs[i])); err != nil {
			return strategy.Stats{}, fmt.Errorf("failed to insert log %s:%d: %w",
				logs[i].TxHash.Hex(), logs[i].Index, err)
		}
	}

	return strategy.Stats{
		LogsFound:   len(logs),
		RowsWritten: len(logs),
		FromBlock:   batch.From,
		ToBlock:     batch.To,
		Took:        time.Since(start),
	}, nil
}

func (s *Strategy) toRow(l *types.Log) *EventLog {
	row := &EventLog{
		StrategyName: s.cfg.Name,
		BlockNumber:  l.BlockNumber,
		BlockHash:    l.BlockHash,
		TxHash:       l.TxHash,
		TxIndex:      l.TxIndex,
		LogIndex:     l.Index,
		Address:      l.Address,
		Topics:       l.Topics,
		Data:         hexutil.Encode(l.Data),
	}
	if row.Topics == nil {
		row.Topics = []common.Hash{}
	}
	if len(l.Topics) > 0 {
		topic0 := l.Topics[0]
		row.Topic0 = &topic0
	}
	return row
}

// Logs returns the stored logs of the strategy in [from, to].
func (s *Strategy) Logs(_ context.Context, from, to uint64) ([]*EventLog, error) {
	var rows []*EventLog
	err := s.meddler.QueryAll(s.db, &rows, s.db.Rebind(`
		SELECT * FROM event_logs
		WHERE strategy_name = ? AND block_number BETWEEN ? AND ?
		ORDER BY block_number, log_index
	`), s.cfg.Name, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs: %w", err)
	}
	return rows, nil
}
