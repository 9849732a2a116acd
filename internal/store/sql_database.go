// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/migrations"
)

// DB wraps *sql.DB with the pieces every repository needs: the driver
// name, a squirrel builder using that driver's placeholder format and an
// error classifier for that driver's error codes.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.Driver and pings it.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownDBDriver, cfg.Driver)
	}
}

func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case config.DriverPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Driver returns the name of the database driver in use.
func (db *DB) Driver() string {
	return db.driver
}

// Migrate applies the embedded schema migrations for the current driver.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB, db.driver); err != nil {
		db.logger.Err(err).Str("func", "*DB.Migrate").Msg("error migrating database")
		return fmt.Errorf("%w: %w", ErrMigrating, err)
	}

	db.logger.Info().Str("func", "*DB.Migrate").Str("driver", db.driver).Msg("database migrated")
	return nil
}

// classify returns op wrapped around err, escalated to [ErrUnavailable] when
// the driver reports the database as unavailable.
func (db *DB) classify(op error, err error) error {
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Unavailable {
		return fmt.Errorf("%w: %w: %w", ErrUnavailable, op, err)
	}
	return fmt.Errorf("%w: %w", op, err)
}

func (db *DB) classification(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
