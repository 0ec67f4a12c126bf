package migrations

import (
	_ "embed"

	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
)

//go:embed 001_initial.sql
var mig001 string

// RunMigrations runs all migrations for the ERC20 strategy tables.
func RunMigrations(log *logger.Logger, database *db.DB) error {
	migrations := []db.Migration{
		{
			ID:  "erc20_001_initial.sql",
			SQL: mig001,
		},
	}

	return db.RunMigrations(log, database, "erc20", migrations)
}
