package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goran-ethernal/RangeIndexor/internal/logger"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	UpDownSeparator     = "-- +migrate Up"
	downMarker          = "-- +migrate Down"
	dbPrefixReplacer    = "/*dbprefix*/"
	NoLimitMigrations   = 0 // indicate that there is no limit on the number of migrations to run
	migrationDirections = 2

	migrationTablePrefix = "gorp_migrations_"
)

type Migration struct {
	ID     string
	SQL    string
	Prefix string
}

// RunMigrations will execute pending migrations if needed to keep
// the database updated with the latest changes.
//
// Every set is tracked in its own table (gorp_migrations_<set>), so the core
// schema and each strategy's schema migrate independently on one database.
func RunMigrations(log *logger.Logger, db *DB, set string, migrations []Migration) error {
	return RunMigrationsExtended(log, db, set, migrations, migrate.Up, NoLimitMigrations)
}

// RunMigrationsExtended is an extended version of RunMigrations that allows
// dir: can be migrate.Up or migrate.Down
// maxMigrations: Will apply at most `max` migrations. Pass 0 for no limit
func RunMigrationsExtended(log *logger.Logger,
	db *DB,
	set string,
	migrationsParam []Migration,
	dir migrate.MigrationDirection,
	maxMigrations int) error {
	if log == nil {
		log = logger.GetDefaultLogger()
	}
	if set == "" {
		return errors.New("migration set name is required")
	}

	migs, err := buildMigrationSource(migrationsParam)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(migs.Migrations))
	for _, m := range migs.Migrations {
		ids = append(ids, m.Id)
	}
	listMigrations := strings.Join(ids, ", ")

	log.Debugf("running %s migrations: (max %d/%d) migrations: %s", set, maxMigrations,
		len(migs.Migrations), listMigrations)

	ms := migrate.MigrationSet{TableName: MigrationTable(set)}
	nMigrations, err := ms.ExecMax(db.DB, db.Dialect.migrateDialect(), migs, dir, maxMigrations)
	if err != nil {
		return fmt.Errorf("error executing migration (max %d/%d) migrations: %s . Err: %w",
			maxMigrations, len(migs.Migrations), listMigrations, err)
	}

	log.Infof("successfully ran %d %s migrations from migrations: %s", nMigrations, set, listMigrations)
	return nil
}

// MigrationTable returns the table tracking the applied migrations of set.
func MigrationTable(set string) string {
	return migrationTablePrefix + set
}

// buildMigrationSource splits every migration into its Down and Up sections.
// The Down section comes first, the Up section follows the Up separator.
func buildMigrationSource(migrationsParam []Migration) (*migrate.MemoryMigrationSource, error) {
	migs := &migrate.MemoryMigrationSource{Migrations: make([]*migrate.Migration, 0, len(migrationsParam))}

	for _, m := range migrationsParam {
		prefixed := strings.ReplaceAll(m.SQL, dbPrefixReplacer, m.Prefix)
		splitted := strings.Split(prefixed, UpDownSeparator)

		if len(splitted) < migrationDirections {
			return nil, fmt.Errorf("migration %s missing '%s' separator", m.ID, UpDownSeparator)
		}

		downSQL := splitted[0]
		if idx := strings.Index(downSQL, downMarker); idx != -1 {
			downSQL = downSQL[idx+len(downMarker):]
		}

		migs.Migrations = append(migs.Migrations, &migrate.Migration{
			Id:   m.Prefix + m.ID,
			Up:   splitStatements(splitted[1]),
			Down: splitStatements(downSQL),
		})
	}

	return migs, nil
}

// splitStatements breaks a section into single statements; the pgx driver
// rejects multi-statement Exec calls that carry no arguments in extended mode.
func splitStatements(section string) []string {
	parts := strings.Split(section, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			stmts = append(stmts, p+";")
		}
	}
	return stmts
}
