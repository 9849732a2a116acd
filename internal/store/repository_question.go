// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

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

// questionRepository is the SQL implementation of [QuestionRepository].
// Payloads are sealed with the shared [crypto.Cipher] before they reach the
// "questions" table.
type questionRepository struct {
	db     *DB
	cipher crypto.Cipher
	ids    IDGenerator
	logger *logger.Logger
}

// NewQuestionRepository constructs a [QuestionRepository].
func NewQuestionRepository(db *DB, cipher crypto.Cipher, ids IDGenerator, logger *logger.Logger) QuestionRepository {
	logger.Debug().Msg("creating question repository")
	return &questionRepository{
		db:     db,
		cipher: cipher,
		ids:    ids,
		logger: logger,
	}
}

// PutQuestion implements [QuestionRepository].
//
// Error handling:
//   - unique violation on id → [ErrQuestionAlreadyExists]
//   - unknown category id → [ErrCategoryNotFound]
//   - anything else from the driver → [ErrExecutingStatement]
func (r *questionRepository) PutQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	if q.ID == "" {
		q.ID = r.ids.Generate()
	}
	if q.Difficulty == "" {
		q.Difficulty = models.DifficultyMedium
	}
	now := time.Now().UTC().Truncate(time.Microsecond)
	q.CreatedAt, q.UpdatedAt = now, now

	blob, err := r.cipher.Seal(q.Payload(), crypto.RecordAAD(recordKindQuestion, q.ID))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.PutQuestion").Str("question_id", q.ID).Msg("failed to seal question payload")
		return models.Question{}, err
	}

	query, args, err := r.db.builder.
		Insert(questionsTable).
		Columns(questionColumns...).
		Values(q.ID, q.CategoryID, q.Difficulty, blob, q.CreatedAt, q.UpdatedAt).
		ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*questionRepository.PutQuestion").Str("question_id", q.ID).Msg("failed to insert question")

		switch r.db.classification(err) {
		case UniqueViolation:
			return models.Question{}, ErrQuestionAlreadyExists
		case ForeignKeyViolation:
			return models.Question{}, ErrCategoryNotFound
		default:
			return models.Question{}, r.db.classify(ErrExecutingStatement, err)
		}
	}

	log.Debug().Str("func", "*questionRepository.PutQuestion").Str("question_id", q.ID).Msg("question saved")
	return q, nil
}

// GetQuestion implements [QuestionRepository].
func (r *questionRepository) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select(questionColumns...).
		From(questionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	q, err := r.scanQuestion(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.GetQuestion").Str("question_id", id).Msg("failed to get question")
		return models.Question{}, err
	}

	return q, nil
}

// ListQuestions implements [QuestionRepository].
func (r *questionRepository) ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuestionsQuery(r.db.builder, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*questionRepository.ListQuestions").
			Int64("category_id", filter.CategoryID).
			Msg("failed to execute query for listing questions")
		return nil, r.db.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	questions := make([]models.Question, 0, filter.Limit)
	for rows.Next() {
		q, err := r.scanQuestion(rows)
		if err != nil {
			log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("failed to read question row")
			return nil, err
		}
		questions = append(questions, q)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*questionRepository.ListQuestions").Msg("error occurred during rows iteration")
		return nil, r.db.classify(ErrScanningRows, err)
	}

	return questions, nil
}

// UpdateQuestion implements [QuestionRepository]. The payload is sealed
// again with a fresh nonce; created_at is preserved.
func (r *questionRepository) UpdateQuestion(ctx context.Context, id string, q models.Question) (models.Question, error) {
	log := logger.FromContext(ctx)

	q.ID = id
	if q.Difficulty == "" {
		q.Difficulty = models.DifficultyMedium
	}
	q.UpdatedAt = time.Now().UTC().Truncate(time.Microsecond)

	blob, err := r.cipher.Seal(q.Payload(), crypto.RecordAAD(recordKindQuestion, q.ID))
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.UpdateQuestion").Str("question_id", id).Msg("failed to seal question payload")
		return models.Question{}, err
	}

	query, args, err := r.db.builder.
		Update(questionsTable).
		Set("category_id", q.CategoryID).
		Set("difficulty", q.Difficulty).
		Set("encrypted_data", blob).
		Set("updated_at", q.UpdatedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	createdAtQuery, createdAtArgs, err := r.db.builder.
		Select("created_at").
		From(questionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.UpdateQuestion").Msg("failed to begin transaction")
		return models.Question{}, r.db.classify(ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.UpdateQuestion").Str("question_id", id).Msg("failed to update question")
		if r.db.classification(err) == ForeignKeyViolation {
			return models.Question{}, ErrCategoryNotFound
		}
		return models.Question{}, r.db.classify(ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Question{}, r.db.classify(ErrExecutingStatement, err)
	}
	if affected == 0 {
		return models.Question{}, ErrQuestionNotFound
	}

	if err = tx.QueryRowContext(ctx, createdAtQuery, createdAtArgs...).Scan(&q.CreatedAt); err != nil {
		log.Err(err).Str("func", "*questionRepository.UpdateQuestion").Str("question_id", id).Msg("failed to read created_at")
		return models.Question{}, r.db.classify(ErrScanningRow, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*questionRepository.UpdateQuestion").Msg("failed to commit transaction")
		return models.Question{}, r.db.classify(ErrCommittingTransaction, err)
	}

	return q, nil
}

// DeleteQuestion implements [QuestionRepository].
func (r *questionRepository) DeleteQuestion(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.Delete(questionsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*questionRepository.DeleteQuestion").Str("question_id", id).Msg("failed to delete question")
		return r.db.classify(ErrExecutingStatement, err)
	}

	return nil
}

// CountByCategory implements [QuestionRepository].
func (r *questionRepository) CountByCategory(ctx context.Context) (map[int64]int, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, countQuestionsByCategory)
	if err != nil {
		log.Err(err).Str("func", "*questionRepository.CountByCategory").Msg("failed to count questions")
		return nil, r.db.classify(ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var (
			categoryID int64
			count      int
		)
		if err := rows.Scan(&categoryID, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[categoryID] = count
	}

	if err := rows.Err(); err != nil {
		return nil, r.db.classify(ErrScanningRows, err)
	}

	return counts, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanQuestion reads one row in questionColumns order and opens its payload.
// sql.ErrNoRows is returned unwrapped so callers can map it to not found.
func (r *questionRepository) scanQuestion(row rowScanner) (models.Question, error) {
	var (
		q    models.Question
		blob string
	)

	err := row.Scan(&q.ID, &q.CategoryID, &q.Difficulty, &blob, &q.CreatedAt, &q.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Question{}, err
	}
	if err != nil {
		return models.Question{}, r.db.classify(ErrScanningRow, err)
	}

	var payload models.QuestionPayload
	if err := r.cipher.Open(blob, crypto.RecordAAD(recordKindQuestion, q.ID), &payload); err != nil {
		return models.Question{}, fmt.Errorf("question %s: %w", q.ID, err)
	}

	return q.WithPayload(payload), nil
}
