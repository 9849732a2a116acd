package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/crypto"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

// Storages bundles the repositories handed to the service layer together
// with the connection they share.
type Storages struct {
	CategoryRepository CategoryRepository
	QuestionRepository QuestionRepository
	ScoreRepository    ScoreRepository

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds every repository around cipher.
func NewStorages(ctx context.Context, cfg config.Storage, cipher crypto.Cipher, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return NewStoragesFromDB(db, cipher, log), nil
}

// NewStoragesFromDB builds the repositories on an already opened and
// migrated database.
func NewStoragesFromDB(db *DB, cipher crypto.Cipher, log *logger.Logger) *Storages {
	ids := utils.NewUUIDGenerator()

	return &Storages{
		CategoryRepository: NewCategoryRepository(db, log),
		QuestionRepository: NewQuestionRepository(db, cipher, ids, log),
		ScoreRepository:    NewScoreRepository(db, cipher, ids, log),
		db:                 db,
	}
}

// Ping reports whether the underlying database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return s.db.classify(ErrConnecting, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Storages) Close() error {
	return s.db.Close()
}
