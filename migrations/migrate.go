// Package migrations embeds the SQL schema of the record store, one
// directory per dialect, and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// Supported dialects.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

var (
	errNilDB          = errors.New("db is nil")
	errUnknownDialect = errors.New("unknown migration dialect")
)

// Migrate applies every pending migration for dialect to db.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Version returns the current schema version of db.
func Version(ctx context.Context, db *sql.DB, dialect string) (int64, error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", errNilDB)
	}

	provider, err := newProvider(db, dialect)
	if err != nil {
		return 0, err
	}

	return provider.GetDBVersion(ctx)
}

func newProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	var (
		gooseDialect goose.Dialect
		dir          string
	)
	switch dialect {
	case DialectSQLite:
		gooseDialect, dir = goose.DialectSQLite3, "sqlite"
	case DialectPostgres:
		gooseDialect, dir = goose.DialectPostgres, "postgres"
	default:
		return nil, fmt.Errorf("migration error: %w: %q", errUnknownDialect, dialect)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}
