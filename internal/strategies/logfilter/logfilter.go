// Package logfilter turns strategy contract configuration into log queries.
package logfilter

import (
	"context"
	"fmt"
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/rpc"
)

// Filter selects logs of a set of contracts and event signatures.
type Filter struct {
	contracts []contract
}

type contract struct {
	address common.Address
	topics  []common.Hash
}

// New builds a filter. A contract without events matches every log it emits.
func New(contracts []config.ContractConfig) (*Filter, error) {
	if len(contracts) == 0 {
		return nil, fmt.Errorf("at least one contract is required")
	}

	f := &Filter{contracts: make([]contract, 0, len(contracts))}
	for _, c := range contracts {
		if !common.IsHexAddress(c.Address) {
			return nil, fmt.Errorf("invalid contract address %q", c.Address)
		}

		topics := make([]common.Hash, 0, len(c.Events))
		for _, sig := range c.Events {
			topics = append(topics, EventTopic(sig))
		}

		f.contracts = append(f.contracts, contract{
			address: common.HexToAddress(c.Address),
			topics:  topics,
		})
	}

	return f, nil
}

// EventTopic returns the topic hash of an event signature like "Transfer(address,address,uint256)".
func EventTopic(signature string) common.Hash {
	return crypto.Keccak256Hash([]byte(signature))
}

// Queries returns one filter query per contract for blocks [from, to].
func (f *Filter) Queries(from, to uint64) []ethereum.FilterQuery {
	queries := make([]ethereum.FilterQuery, 0, len(f.contracts))
	for _, c := range f.contracts {
		q := ethereum.FilterQuery{
			FromBlock: new(big.Int).SetUint64(from),
			ToBlock:   new(big.Int).SetUint64(to),
			Addresses: []common.Address{c.address},
		}
		if len(c.topics) > 0 {
			q.Topics = [][]common.Hash{c.topics}
		}
		queries = append(queries, q)
	}
	return queries
}

// Fetch retrieves the matching logs of [from, to] in one batch call, ordered by
// block number and log index. Removed logs are dropped.
func (f *Filter) Fetch(ctx context.Context, client rpc.EthClient, from, to uint64) ([]types.Log, error) {
	results, err := client.BatchGetLogs(ctx, f.Queries(from, to))
	if err != nil {
		return nil, fmt.Errorf("failed to get logs for blocks [%d, %d]: %w", from, to, err)
	}

	var logs []types.Log
	for _, batch := range results {
		for _, l := range batch {
			if !l.Removed {
				logs = append(logs, l)
			}
		}
	}

	slices.SortFunc(logs, func(a, b types.Log) int {
		if a.BlockNumber != b.BlockNumber {
			if a.BlockNumber < b.BlockNumber {
				return -1
			}
			return 1
		}
		return int(a.Index) - int(b.Index)
	})

	return logs, nil
}
