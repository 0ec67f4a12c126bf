package migrations_test

import (
	"path/filepath"
	"testing"

	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	"github.com/goran-ethernal/RangeIndexor/internal/migrations"
	"github.com/goran-ethernal/RangeIndexor/internal/strategies/erc20"
	"github.com/goran-ethernal/RangeIndexor/internal/strategies/eventlog"
	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	"github.com/goran-ethernal/RangeIndexor/pkg/rpc/mocks"
	"github.com/goran-ethernal/RangeIndexor/pkg/strategy"
	"github.com/stretchr/testify/require"
)

func TestRunMigrations_WithStrategySchemas(t *testing.T) {
	t.Parallel()

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "indexer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	cfgs := []config.StrategyConfig{
		{
			Name:      "celo_transfers",
			Type:      erc20.Type,
			FromBlock: 100,
			Contracts: []config.ContractConfig{{Address: "0x471EcE3750Da237f93B8E339c536989b8978a438"}},
		},
		{
			Name:      "badges_minted",
			Type:      eventlog.Type,
			FromBlock: 100,
			Contracts: []config.ContractConfig{{Address: "0x58f5805b5072C3Dd157805132714E1dF40E79c66"}},
		},
	}

	// startup order of the service, twice to cover a restart on the same file
	for range 2 {
		require.NoError(t, migrations.RunMigrations(logger.NewNopLogger(), database))

		strategies, err := strategy.CreateAll(cfgs, strategy.Deps{
			DB:     database,
			Client: mocks.NewEthClient(t),
			Log:    logger.NewNopLogger(),
		})
		require.NoError(t, err)
		require.Len(t, strategies, 2)
	}

	for _, table := range []string{"indexed_ranges", "reindex_runs", "erc20_transfers", "erc20_approvals", "event_logs"} {
		var n int
		require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n), table)
		require.Zero(t, n, table)
	}

	for set, want := range map[string]int{migrations.Set: 2, erc20.Type: 1, eventlog.Type: 1} {
		var n int
		require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM "+db.MigrationTable(set)).Scan(&n))
		require.Equal(t, want, n, set)
	}
}
