package headtracker

import (
	"context"
	"fmt"

	"github.com/goran-ethernal/RangeIndexor/internal/common"
	pkgrpc "github.com/goran-ethernal/RangeIndexor/pkg/rpc"
)

// Finality selects which chain tag bounds the indexable head.
type Finality string

const (
	FinalityFinalized Finality = "finalized"
	FinalitySafe      Finality = "safe"
	// FinalityLatest trails the latest block by the configured confirmations.
	FinalityLatest Finality = "latest"
)

// ParseFinality parses a configured finality mode. Empty means latest.
func ParseFinality(s string) (Finality, error) {
	switch f := Finality(common.ToLowerWithTrim(s)); f {
	case FinalityFinalized, FinalitySafe, FinalityLatest:
		return f, nil
	case "":
		return FinalityLatest, nil
	default:
		return "", fmt.Errorf("invalid block finality: %s (must be one of: finalized, safe, latest)", s)
	}
}

// Resolve returns the highest indexable block under this finality mode.
func (f Finality) Resolve(ctx context.Context, client pkgrpc.EthClient, confirmations uint64) (uint64, error) {
	switch f {
	case FinalityFinalized:
		header, err := client.GetFinalizedBlockHeader(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get finalized block header: %w", err)
		}
		return header.Number.Uint64(), nil

	case FinalitySafe:
		header, err := client.GetSafeBlockHeader(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get safe block header: %w", err)
		}
		return header.Number.Uint64(), nil

	default:
		number, err := client.BlockNumber(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to get block number: %w", err)
		}
		return common.SaturatingSub(number, confirmations), nil
	}
}
