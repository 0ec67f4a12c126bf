package rpc

import (
	"context"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// EthClient is the chain access the indexer needs: head lookups for the head
// tracker and batched log queries for strategies.
type EthClient interface {
	Close()

	// BlockNumber returns the number of the most recent block.
	BlockNumber(ctx context.Context) (uint64, error)

	// GetFinalizedBlockHeader returns the header tagged finalized.
	GetFinalizedBlockHeader(ctx context.Context) (*types.Header, error)

	// GetSafeBlockHeader returns the header tagged safe.
	GetSafeBlockHeader(ctx context.Context) (*types.Header, error)

	// BatchGetLogs runs one eth_getLogs per query in a single batch request.
	// Results are in query order.
	BatchGetLogs(ctx context.Context, queries []ethereum.FilterQuery) ([][]types.Log, error)
}
