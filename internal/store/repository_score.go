package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-quiz-keeper/internal/crypto"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// scoreRepository is the SQL implementation of [ScoreRepository].
type scoreRepository struct {
	db     *DB
	cipher crypto.Cipher
	ids    IDGenerator
	logger *logger.Logger
}

// NewScoreRepository constructs a [ScoreRepository].
func NewScoreRepository(db *DB, cipher crypto.Cipher, ids IDGenerator, logger *logger.Logger) ScoreRepository {
	logger.Debug().Msg("creating score repository")
	return &scoreRepository{
		db:     db,
		cipher: cipher,
		ids:    ids,
		logger: logger,
	}
}

func (r *scoreRepository) PutScore(ctx context.Context, s models.Score) (models.Score, error) {
	log := logger.FromContext(ctx)

	if s.ID == "" {
		s.ID = r.ids.Generate()
	}
	if s.CompletedAt.IsZero() {
		s.CompletedAt = time.Now()
	}
	s.CompletedAt = s.CompletedAt.UTC().Truncate(time.Microsecond)

	blob, err := r.cipher.Seal(s.Payload(), crypto.RecordAAD(recordKindScore, s.ID))
	if err != nil {
		return models.Score{}, err
	}

	query, args, err := r.db.builder.
		Insert(scoresTable).
		Columns(scoreColumns...).
		Values(s.ID, s.CategoryID, blob, s.CompletedAt).
		ToSql()
	if err != nil {
		return models.Score{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*scoreRepository.PutScore").Str("score_id", s.ID).Msg("failed to insert score")
		if r.db.classification(err) == UniqueViolation {
			return models.Score{}, ErrScoreAlreadyExists
		}
		return models.Score{}, r.db.classify(ErrExecutingStatement, err)
	}

	return s, nil
}

func (r *scoreRepository) GetScore(ctx context.Context, id string) (models.Score, error) {
	query, args, err := r.db.builder.
		Select(scoreColumns...).
		From(scoresTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Score{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	s, err := r.scanScore(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Score{}, ErrScoreNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scoreRepository.GetScore").Str("score_id", id).Msg("failed to get score")
		return models.Score{}, err
	}

	return s, nil
}

func (r *scoreRepository) ListScores(ctx context.Context, filter models.ScoreFilter) ([]models.Score, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListScoresQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*scoreRepository.ListScores").Msg("failed to execute query for listing scores")
		return nil, r.db.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	scores := make([]models.Score, 0, 64)
	for rows.Next() {
		s, err := r.scanScore(rows)
		if err != nil {
			log.Err(err).Str("func", "*scoreRepository.ListScores").Msg("failed to read score row")
			return nil, err
		}
		scores = append(scores, s)
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.classify(ErrScanningRows, err)
	}

	return scores, nil
}

func (r *scoreRepository) UpdateScore(ctx context.Context, id string, s models.Score) (models.Score, error) {
	s.ID = id
	if s.CompletedAt.IsZero() {
		s.CompletedAt = time.Now()
	}
	s.CompletedAt = s.CompletedAt.UTC().Truncate(time.Microsecond)

	blob, err := r.cipher.Seal(s.Payload(), crypto.RecordAAD(recordKindScore, s.ID))
	if err != nil {
		return models.Score{}, err
	}

	query, args, err := r.db.builder.
		Update(scoresTable).
		Set("category_id", s.CategoryID).
		Set("encrypted_data", blob).
		Set("completed_at", s.CompletedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Score{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scoreRepository.UpdateScore").Str("score_id", id).Msg("failed to update score")
		return models.Score{}, r.db.classify(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Score{}, r.db.classify(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Score{}, ErrScoreNotFound
	}

	return s, nil
}

func (r *scoreRepository) DeleteScore(ctx context.Context, id string) error {
	query, args, err := r.db.builder.Delete(scoresTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*scoreRepository.DeleteScore").Str("score_id", id).Msg("failed to delete score")
		return r.db.classify(ErrExecutingStatement, err)
	}

	return nil
}

func (r *scoreRepository) scanScore(row rowScanner) (models.Score, error) {
	var (
		s    models.Score
		blob string
	)

	err := row.Scan(&s.ID, &s.CategoryID, &blob, &s.CompletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Score{}, err
	}
	if err != nil {
		return models.Score{}, r.db.classify(ErrScanningRow, err)
	}

	var payload models.ScorePayload
	if err := r.cipher.Open(blob, crypto.RecordAAD(recordKindScore, s.ID), &payload); err != nil {
		return models.Score{}, fmt.Errorf("score %s: %w", s.ID, err)
	}

	return s.WithPayload(payload), nil
}
