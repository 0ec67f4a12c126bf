// Package erc20 is a strategy indexing ERC20 Transfer and Approval events.
package erc20

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	internalcommon "github.com/goran-ethernal/RangeIndexor/internal/common"
	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/internal/strategies/erc20/migrations"
	"github.com/goran-ethernal/RangeIndexor/internal/strategies/logfilter"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/rpc"
	"github.com/goran-ethernal/RangeIndexor/pkg/strategy"
	"github.com/russross/meddler"
	"github.com/shopspring/decimal"
)

// Type is the registered strategy type.
const Type = "erc20"

const (
	TransferEvent = "Transfer(address,address,uint256)"
	ApprovalEvent = "Approval(address,address,uint256)"

	transfersTable = "erc20_transfers"
	approvalsTable = "erc20_approvals"

	// ERC20 events carry the signature and two indexed addresses as topics and a uint256 as data.
	expectedTopicsCount = 3
	expectedDataSize    = 32
)

var (
	transferTopic = logfilter.EventTopic(TransferEvent)
	approvalTopic = logfilter.EventTopic(ApprovalEvent)
)

// Compile-time check to ensure Strategy implements strategy.TxStrategy interface.
var _ strategy.TxStrategy = (*Strategy)(nil)

func init() {
	strategy.Register(Type, New)
}

// Transfer represents an ERC20 Transfer event.
type Transfer struct {
	StrategyName string          `meddler:"strategy_name" json:"strategy_name"`
	BlockNumber  uint64          `meddler:"block_number" json:"block_number"`
	BlockHash    common.Hash     `meddler:"block_hash,hash" json:"block_hash"`
	TxHash       common.Hash     `meddler:"tx_hash,hash" json:"tx_hash"`
	TxIndex      uint            `meddler:"tx_index" json:"tx_index"`
	LogIndex     uint            `meddler:"log_index" json:"log_index"`
	Token        common.Address  `meddler:"token_address,address" json:"token"`
	From         common.Address  `meddler:"from_address,address" json:"from"`
	To           common.Address  `meddler:"to_address,address" json:"to"`
	Value        decimal.Decimal `meddler:"value,decimal" json:"value"`
}

// Approval represents an ERC20 Approval event.
type Approval struct {
	StrategyName string          `meddler:"strategy_name" json:"strategy_name"`
	BlockNumber  uint64          `meddler:"block_number" json:"block_number"`
	BlockHash    common.Hash     `meddler:"block_hash,hash" json:"block_hash"`
	TxHash       common.Hash     `meddler:"tx_hash,hash" json:"tx_hash"`
	TxIndex      uint            `meddler:"tx_index" json:"tx_index"`
	LogIndex     uint            `meddler:"log_index" json:"log_index"`
	Token        common.Address  `meddler:"token_address,address" json:"token"`
	Owner        common.Address  `meddler:"owner_address,address" json:"owner"`
	Spender      common.Address  `meddler:"spender_address,address" json:"spender"`
	Value        decimal.Decimal `meddler:"value,decimal" json:"value"`
}

// Strategy indexes ERC20 Transfer and Approval events of the configured tokens.
type Strategy struct {
	cfg     config.StrategyConfig
	db      *db.DB
	meddler *meddler.Database
	client  rpc.EthClient
	filter  *logfilter.Filter
	log     *logger.Logger
}

// New creates an ERC20 strategy and migrates its tables.
// Contracts without events default to Transfer and Approval.
func New(cfg config.StrategyConfig, deps strategy.Deps) (strategy.Strategy, error) {
	if deps.DB == nil || deps.Client == nil {
		return nil, errors.New("erc20 strategy requires a database and an RPC client")
	}

	contracts := make([]config.ContractConfig, 0, len(cfg.Contracts))
	for _, c := range cfg.Contracts {
		if len(c.Events) == 0 {
			c.Events = []string{TransferEvent, ApprovalEvent}
		}
		contracts = append(contracts, c)
	}

	filter, err := logfilter.New(contracts)
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
func (s *Strategy) Idempotent() bool  { return true }

// ProcessRange indexes [from, to] in its own transaction.
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

// FetchRange reads the Transfer and Approval logs of [from, to].
func (s *Strategy) FetchRange(ctx context.Context, from, to uint64) (*strategy.Batch, error) {
	logs, err := s.filter.Fetch(ctx, s.client, from, to)
	if err != nil {
		return nil, err
	}
	return &strategy.Batch{From: from, To: to, Logs: logs}, nil
}

// ApplyTx replaces the transfers and approvals of the batch range through tx.
func (s *Strategy) ApplyTx(ctx context.Context, tx *sql.Tx, batch *strategy.Batch) (strategy.Stats, error) {
	start := time.Now()
	from, to, logs := batch.From, batch.To, batch.Logs

	for _, table := range []string{transfersTable, approvalsTable} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE strategy_name = ? AND block_number BETWEEN ? AND ?`, table)
		if _, err := tx.ExecContext(ctx, s.db.Rebind(query), s.cfg.Name, from, to); err != nil {
			return strategy.Stats{}, fmt.Errorf("failed to clear %s of [%d, %d]: %w", table, from, to, err)
		}
	}

	transferCount := 0
	approvalCount := 0

	for i := range logs {
		l := &logs[i]
		if len(l.Topics) == 0 {
			continue
		}

		switch l.Topics[0] {
		case transferTopic:
			transfer, err := s.parseTransfer(l)
			if err != nil {
				s.log.Warnf("failed to parse Transfer event at block %d, tx %s: %v",
					l.BlockNumber, l.TxHash.Hex(), err)
				continue
			}

			if err := s.meddler.Insert(tx, transfersTable, transfer); err != nil {
				return strategy.Stats{}, fmt.Errorf("failed to insert transfer: %w", err)
			}
			transferCount++

		case approvalTopic:
			approval, err := s.parseApproval(l)
			if err != nil {
				s.log.Warnf("failed to parse Approval event at block %d, tx %s: %v",
					l.BlockNumber, l.TxHash.Hex(), err)
				continue
			}

			if err := s.meddler.Insert(tx, approvalsTable, approval); err != nil {
				return strategy.Stats{}, fmt.Errorf("failed to insert approval: %w", err)
			}
			approvalCount++
		}
	}

	if transferCount+approvalCount > 0 {
		s.log.Debugf("indexed %d transfers and %d approvals in [%d, %d]", transferCount, approvalCount, from, to)
	}

	return strategy.Stats{
		LogsFound:   len(logs),
		RowsWritten: transferCount + approvalCount,
		FromBlock:   from,
		ToBlock:     to,
		Took:        time.Since(start),
	}, nil
}

// Transfers returns the stored transfers of the strategy in [from, to].
func (s *Strategy) Transfers(_ context.Context, from, to uint64) ([]*Transfer, error) {
	var rows []*Transfer
	err := s.meddler.QueryAll(s.db, &rows, s.db.Rebind(`
		SELECT * FROM erc20_transfers
		WHERE strategy_name = ? AND block_number BETWEEN ? AND ?
		ORDER BY block_number, log_index
	`), s.cfg.Name, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query transfers: %w", err)
	}
	return rows, nil
}

// Approvals returns the stored approvals of the strategy in [from, to].
func (s *Strategy) Approvals(_ context.Context, from, to uint64) ([]*Approval, error) {
	var rows []*Approval
	err := s.meddler.QueryAll(s.db, &rows, s.db.Rebind(`
		SELECT * FROM erc20_approvals
		WHERE strategy_name = ? AND block_number BETWEEN ? AND ?
		ORDER BY block_number, log_index
	`), s.cfg.Name, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query approvals: %w", err)
	}
	return rows, nil
}

// parseTransfer parses a Transfer event from a log.
// Transfer event signature: Transfer(address indexed from, address indexed to, uint256 value)
func (s *Strategy) parseTransfer(l *types.Log) (*Transfer, error) {
	if err := checkShape(l); err != nil {
		return nil, err
	}

	return &Transfer{
		StrategyName: s.cfg.Name,
		BlockNumber:  l.BlockNumber,
		BlockHash:    l.BlockHash,
		TxHash:       l.TxHash,
		TxIndex:      l.TxIndex,
		LogIndex:     l.Index,
		Token:        l.Address,
		From:         common.BytesToAddress(l.Topics[1].Bytes()),
		To:           common.BytesToAddress(l.Topics[2].Bytes()),
		Value:        decimal.NewFromBigInt(new(big.Int).SetBytes(l.Data), 0),
	}, nil
}

// parseApproval parses an Approval event from a log.
// Approval event signature: Approval(address indexed owner, address indexed spender, uint256 value)
func (s *Strategy) parseApproval(l *types.Log) (*Approval, error) {
	if err := checkShape(l); err != nil {
		return nil, err
	}

	return &Approval{
		StrategyName: s.cfg.Name,
		BlockNumber:  l.BlockNumber,
		BlockHash:    l.BlockHash,
		TxHash:       l.TxHash,
		TxIndex:      l.TxIndex,
		LogIndex:     l.Index,
		Token:        l.Address,
		Owner:        common.BytesToAddress(l.Topics[1].Bytes()),
		Spender:      common.BytesToAddress(l.Topics[2].Bytes()),
		Value:        decimal.NewFromBigInt(new(big.Int).SetBytes(l.Data), 0),
	}, nil
}

// checkShape rejects logs that share a topic with ERC20 events but not their layout,
// such as ERC721 transfers with an indexed token id.
func checkShape(l *types.Log) error {
	if len(l.Topics) != expectedTopicsCount {
		return fmt.Errorf("expected %d topics, got %d", expectedTopicsCount, len(l.Topics))
	}
	if len(l.Data) != expectedDataSize {
		return fmt.Errorf("expected %d bytes of data, got %d", expectedDataSize, len(l.Data))
	}
	return nil
}
