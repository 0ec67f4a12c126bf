package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/goran-ethernal/RangeIndexor/internal/retry"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	pkgrpc "github.com/goran-ethernal/RangeIndexor/pkg/rpc"
	"go.uber.org/ratelimit"
)

// Compile-time check to ensure Client implements pkgrpc.EthClient interface.
var _ pkgrpc.EthClient = (*Client)(nil)

// Client wraps the Ethereum RPC client with rate limiting, retries and metrics.
type Client struct {
	eth     *ethclient.Client
	rpc     *rpc.Client
	limiter ratelimit.Limiter
	retry   *config.RetryConfig
}

// NewClient creates a new RPC client connected to the chain endpoint.
func NewClient(ctx context.Context, cfg config.ChainConfig) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", cfg.RPCURL, err)
	}

	return newClient(rpcClient, cfg), nil
}

func newClient(rpcClient *rpc.Client, cfg config.ChainConfig) *Client {
	limiter := ratelimit.NewUnlimited()
	if cfg.RateLimit > 0 {
		limiter = ratelimit.New(cfg.RateLimit)
	}

	return &Client{
		eth:     ethclient.NewClient(rpcClient),
		rpc:     rpcClient,
		limiter: limiter,
		retry:   cfg.Retry,
	}
}

// Close closes the RPC client connection.
func (c *Client) Close() {
	c.eth.Close()
}

// call runs one RPC method through the limiter and the retry policy.
func (c *Client) call(ctx context.Context, method string, fn func() error) error {
	defer observeCall(method, time.Now())

	return retry.DoIf(ctx, c.retry, method, shouldRetry, func() error {
		c.limiter.Take()

		err := fn()
		observeAttempt(method, err)
		return err
	})
}

// shouldRetry leaves range-too-large errors to the caller, which shrinks the batch instead.
func shouldRetry(err error) bool {
	return retry.IsRetryable(err) && !IsChunkSizeError(err)
}

// BlockNumber returns the number of the most recent block.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	var num uint64
	err := c.call(ctx, "eth_blockNumber", func() (err error) {
		num, err = c.eth.BlockNumber(ctx)
		return err
	})
	return num, err
}

// GetFinalizedBlockHeader retrieves the finalized block header.
func (c *Client) GetFinalizedBlockHeader(ctx context.Context) (*types.Header, error) {
	return c.headerByNumber(ctx, big.NewInt(int64(rpc.FinalizedBlockNumber)))
}

// GetSafeBlockHeader retrieves the safe block header.
func (c *Client) GetSafeBlockHeader(ctx context.Context) (*types.Header, error) {
	return c.headerByNumber(ctx, big.NewInt(int64(rpc.SafeBlockNumber)))
}

func (c *Client) headerByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	var header *types.Header
	err := c.call(ctx, "eth_getBlockByNumber", func() (err error) {
		header, err = c.eth.HeaderByNumber(ctx, number)
		return err
	})
	return header, err
}

// BatchGetLogs retrieves logs for multiple filter queries in a single batch call.
func (c *Client) BatchGetLogs(ctx context.Context, queries []ethereum.FilterQuery) ([][]types.Log, error) {
	var results [][]types.Log

	err := c.call(ctx, "eth_getLogs_batch", func() error {
		batch := make([]rpc.BatchElem, len(queries))
		results = make([][]types.Log, len(queries))

		for i, query := range queries {
			batch[i] = rpc.BatchElem{
				Method: "eth_getLogs",
				Args:   []any{toFilterArg(query)},
				Result: &results[i],
			}
		}

		if err := c.rpc.BatchCallContext(ctx, batch); err != nil {
			return err
		}

		for _, elem := range batch {
			if elem.Error != nil {
				return elem.Error
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return results, nil
}

// toFilterArg converts ethereum.FilterQuery to the format expected by eth_getLogs.
func toFilterArg(q ethereum.FilterQuery) any {
	arg := map[string]any{
		"topics": q.Topics,
	}

	if q.BlockHash != nil {
		arg["blockHash"] = *q.BlockHash
	} else {
		if q.FromBlock != nil {
			arg["fromBlock"] = toBlockNumArg(q.FromBlock.Uint64())
		}
		if q.ToBlock != nil {
			arg["toBlock"] = toBlockNumArg(q.ToBlock.Uint64())
		}
	}

	if len(q.Addresses) > 0 {
		if len(q.Addresses) == 1 {
			arg["address"] = q.Addresses[0]
		} else {
			arg["address"] = q.Addresses
		}
	}

	return arg
}

// toBlockNumArg converts a block number to hex format.
func toBlockNumArg(blockNum uint64) string {
	return fmt.Sprintf("0x%x", blockNum)
}
