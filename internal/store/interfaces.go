package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-quiz-keeper/models"
)

// CategoryRepository stores quiz categories. Categories are not sensitive
// and are kept in clear.
type CategoryRepository interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	GetCategory(ctx context.Context, id int64) (models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
}

// QuestionRepository is the encrypted record store for questions.
//
// Only the id, category id, difficulty and timestamps are stored in clear;
// the prompt, options, answer and explanation are sealed with a fresh nonce
// on every write. Reads that fail authentication return an error matching
// crypto.ErrDecryption and never partial plaintext.
type QuestionRepository interface {
	// PutQuestion inserts q. An empty id is replaced by a new UUIDv7.
	PutQuestion(ctx context.Context, q models.Question) (models.Question, error)
	// GetQuestion returns the question with id or [ErrQuestionNotFound].
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	// ListQuestions returns every question matching filter. A single
	// undecryptable row fails the whole listing.
	ListQuestions(ctx context.Context, filter models.QuestionFilter) ([]models.Question, error)
	// UpdateQuestion rewrites the whole record stored under id.
	UpdateQuestion(ctx context.Context, id string, q models.Question) (models.Question, error)
	// DeleteQuestion removes id. Deleting a missing id is not an error.
	DeleteQuestion(ctx context.Context, id string) error
	// CountByCategory returns the number of questions per category id.
	CountByCategory(ctx context.Context) (map[int64]int, error)
}

// ScoreRepository is the encrypted record store for quiz results. The
// player name and the score are sealed; the category id and completion
// time stay in clear.
type ScoreRepository interface {
	PutScore(ctx context.Context, s models.Score) (models.Score, error)
	GetScore(ctx context.Context, id string) (models.Score, error)
	ListScores(ctx context.Context, filter models.ScoreFilter) ([]models.Score, error)
	UpdateScore(ctx context.Context, id string, s models.Score) (models.Score, error)
	DeleteScore(ctx context.Context, id string) error
}

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}
