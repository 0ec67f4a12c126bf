package db

import (
	"database/sql"
	"fmt"

	"github.com/goran-ethernal/RangeIndexor/pkg/config"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

// Dialect is the database/sql driver name a DB was opened with.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite3"
	DialectPostgres Dialect = "pgx"
)

// Rebind converts a query written with '?' placeholders to the dialect's bind style.
func (d Dialect) Rebind(query string) string {
	return sqlx.Rebind(sqlx.BindType(string(d)), query)
}

// Meddler returns the meddler database flavour for the dialect.
func (d Dialect) Meddler() *meddler.Database {
	if d == DialectPostgres {
		return meddler.PostgreSQL
	}
	return meddler.SQLite
}

// migrateDialect returns the sql-migrate dialect name.
func (d Dialect) migrateDialect() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite3"
}

// DB is a *sql.DB that remembers which dialect it speaks.
type DB struct {
	*sql.DB

	Dialect Dialect
	// Path is the SQLite file path; empty for postgres.
	Path string
}

// Rebind converts a '?' placeholder query to the dialect of the DB.
func (d *DB) Rebind(query string) string {
	return d.Dialect.Rebind(query)
}

// Open opens the database selected by cfg.Driver.
func Open(cfg config.DatabaseConfig) (*DB, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		sqlDB, err := NewPostgresDBFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		return &DB{DB: sqlDB, Dialect: DialectPostgres}, nil
	case config.DriverSQLite, "":
		sqlDB, err := NewSQLiteDBFromConfig(cfg)
		if err != nil {
			return nil, err
		}
		return &DB{DB: sqlDB, Dialect: DialectSQLite, Path: cfg.Path}, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
}

// NewSQLiteDB creates a new SQLite DB with default settings.
func NewSQLiteDB(dbPath string) (*DB, error) {
	cfg := config.DatabaseConfig{Driver: config.DriverSQLite, Path: dbPath}
	cfg.ApplyDefaults()
	return Open(cfg)
}

// NewSQLiteDBFromConfig creates a new SQLite DB with the given configuration.
func NewSQLiteDBFromConfig(cfg config.DatabaseConfig) (*sql.DB, error) {
	foreignKeys := "off"
	if cfg.EnableForeignKeys {
		foreignKeys = "on"
	}

	connStr := fmt.Sprintf(
		"file:%s?_txlock=immediate&_foreign_keys=%s&_journal_mode=%s&_busy_timeout=%d",
		cfg.Path,
		foreignKeys,
		cfg.JournalMode,
		cfg.BusyTimeout,
	)

	db, err := sql.Open(string(DialectSQLite), connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)

	pragmas := []string{
		fmt.Sprintf("PRAGMA synchronous = %s", cfg.Synchronous),
		fmt.Sprintf("PRAGMA cache_size = %d", cfg.CacheSize),
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	return db, nil
}

// NewPostgresDBFromConfig opens a PostgreSQL database through the pgx stdlib driver.
func NewPostgresDBFromConfig(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(string(DialectPostgres), cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return db, nil
}
