package migrations

import (
	_ "embed"

	"github.com/goran-ethernal/RangeIndexor/internal/db"
	"github.com/goran-ethernal/RangeIndexor/internal/logger"
)

//go:embed 001_event_logs.sql
var mig001 string

// RunMigrations creates the event_logs table shared by all eventlog strategies.
func RunMigrations(log *logger.Logger, database *db.DB) error {
	migrations := []db.Migration{
		{
			ID:  "eventlog_001_event_logs.sql",
			SQL: mig001,
		},
	}

	return db.RunMigrations(log, database, "eventlog", migrations)
}
