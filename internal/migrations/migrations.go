package migrations

import (
	_ "embed"

	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
)

//go:embed 001_indexed_ranges.sql
var mig001 string

//go:embed 002_reindex_runs.sql
var mig002 string

// Set names the core schema's migration set.
const Set = "core"

// RunMigrations creates the range store and reindex journal tables.
func RunMigrations(log *logger.Logger, database *db.DB) error {
	migrations := []db.Migration{
		{
			ID:  "001_indexed_ranges.sql",
			SQL: mig001,
		},
		{
			ID:  "002_reindex_runs.sql",
			SQL: mig002,
		},
	}

	return db.RunMigrations(log, database, Set, migrations)
}
