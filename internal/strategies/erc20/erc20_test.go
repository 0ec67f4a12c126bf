package erc20

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/rpc/mocks"
	"github.com/goran-ethernal/RangeIndexor/pkg/strategy"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	token   = common.HexToAddress("0xC668583dcbDc9ae6FA3CE46462758188adfdfC24")
	alice   = common.HexToAddress("0x1111111111111111111111111111111111111111")
	bob     = common.HexToAddress("0x2222222222222222222222222222222222222222")
	oneCELO = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
)

func newTestStrategy(t *testing.T) (*Strategy, *mocks.EthClient, *db.DB) {
	t.Helper()

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "erc20.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	client := mocks.NewEthClient(t)

	s, err := strategy.Create(config.StrategyConfig{
		Name:      "stcelo_transfers",
		Type:      "ERC20",
		FromBlock: 100,
		Contracts: []config.ContractConfig{{Address: token.Hex()}},
	}, strategy.Deps{DB: database, Client: client, Log: logger.NewNopLogger()})
	require.NoError(t, err)

	return s.(*Strategy), client, database
}

func eventLog(topic common.Hash, a, b common.Address, value *big.Int, block uint64, index uint) types.Log {
	return types.Log{
		Address:     token,
		Topics:      []common.Hash{topic, common.BytesToHash(a.Bytes()), common.BytesToHash(b.Bytes())},
		Data:        common.LeftPadBytes(value.Bytes(), expectedDataSize),
		BlockNumber: block,
		BlockHash:   common.BigToHash(new(big.Int).SetUint64(block)),
		TxHash:      common.BigToHash(new(big.Int).SetUint64(block*1000 + uint64(index))),
		Index:       index,
	}
}

func TestStrategy_Metadata(t *testing.T) {
	t.Parallel()

	s, _, _ := newTestStrategy(t)

	require.Equal(t, "stcelo_transfers", s.Name())
	require.Equal(t, Type, s.Type())
	require.Equal(t, uint64(100), s.FromBlock())
	require.True(t, s.Idempotent())
}

func TestStrategy_ProcessRange(t *testing.T) {
	t.Parallel()

	s, client, _ := newTestStrategy(t)
	ctx := context.Background()

	malformed := eventLog(transferTopic, alice, bob, oneCELO, 120, 9)
	malformed.Topics = append(malformed.Topics, common.Hash{})

	client.EXPECT().BatchGetLogs(mock.Anything, mock.Anything).Return([][]types.Log{{
		eventLog(transferTopic, alice, bob, oneCELO, 110, 0),
		eventLog(approvalTopic, alice, bob, big.NewInt(5), 111, 1),
		malformed,
	}}, nil).Twice()

	stats, err := s.ProcessRange(ctx, 100, 199)
	require.NoError(t, err)
	require.Equal(t, 3, stats.LogsFound)
	require.Equal(t, 2, stats.RowsWritten)
	require.Equal(t, uint64(100), stats.FromBlock)
	require.Equal(t, uint64(199), stats.ToBlock)

	// processing the same range again does not duplicate rows
	_, err = s.ProcessRange(ctx, 100, 199)
	require.NoError(t, err)

	transfers, err := s.Transfers(ctx, 100, 199)
	require.NoError(t, err)
	require.Len(t, transfers, 1)
	require.Equal(t, alice, transfers[0].From)
	require.Equal(t, bob, transfers[0].To)
	require.Equal(t, token, transfers[0].Token)
	require.True(t, decimal.NewFromBigInt(oneCELO, 0).Equal(transfers[0].Value))
	require.Equal(t, "1000000000000000000", transfers[0].Value.String())

	approvals, err := s.Approvals(ctx, 100, 199)
	require.NoError(t, err)
	require.Len(t, approvals, 1)
	require.Equal(t, alice, approvals[0].Owner)
	require.Equal(t, bob, approvals[0].Spender)
	require.Equal(t, int64(5), approvals[0].Value.IntPart())
}

func TestStrategy_ApplyTxRollsBackWithCaller(t *testing.T) {
	t.Parallel()

	s, client, database := newTestStrategy(t)
	ctx := context.Background()

	client.EXPECT().BatchGetLogs(mock.Anything, mock.Anything).Return([][]types.Log{{
		eventLog(transferTopic, alice, bob, oneCELO, 150, 0),
	}}, nil).Once()

	batch, err := s.FetchRange(ctx, 100, 199)
	require.NoError(t, err)
	require.Len(t, batch.Logs, 1)

	tx, err := database.BeginTx(ctx, nil)
	require.NoError(t, err)

	stats, err := s.ApplyTx(ctx, tx, batch)
	require.NoError(t, err)
	require.Equal(t, 1, stats.RowsWritten)
	require.NoError(t, tx.Rollback())

	transfers, err := s.Transfers(ctx, 0, 1000)
	require.NoError(t, err)
	require.Empty(t, transfers)
}

func TestStrategy_ProcessRangeRPCError(t *testing.T) {
	t.Parallel()

	s, client, _ := newTestStrategy(t)

	cause := errors.New("query returned more than 10000 results")
	client.EXPECT().BatchGetLogs(mock.Anything, mock.Anything).Return(nil, cause).Once()

	_, err := s.ProcessRange(context.Background(), 100, 100000)
	require.ErrorIs(t, err, cause)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "erc20.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	_, err = New(config.StrategyConfig{Name: "x", Type: Type}, strategy.Deps{})
	require.ErrorContains(t, err, "requires a database")

	_, err = New(config.StrategyConfig{Name: "x", Type: Type, Contracts: []config.ContractConfig{{Address: "nope"}}},
		strategy.Deps{DB: database, Client: mocks.NewEthClient(t)})
	require.ErrorContains(t, err, "invalid contract address")
}
