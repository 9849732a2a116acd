package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-quiz-keeper/models"
)

type AuthService interface {
	// Login checks password against the admin credential and issues an
	// admin session token.
	Login(ctx context.Context, password string) (models.Token, error)
	// ParseToken verifies an admin session token.
	ParseToken(ctx context.Context, tokenString string) (models.Session, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, category models.Category) (models.Category, error)
}

// QuestionService is the admin side of the question store. Every method
// requires an admin session in ctx.
type QuestionService interface {
	CreateQuestion(ctx context.Context, q models.Question) (models.Question, error)
	GetQuestion(ctx context.Context, id string) (models.Question, error)
	ListQuestions(ctx context.Context, categoryID int64) ([]models.Question, error)
	UpdateQuestion(ctx context.Context, id string, q models.Question) (models.Question, error)
	DeleteQuestion(ctx context.Context, id string) error
}

// QuizService runs quizzes for players. The quiz token returned by
// StartQuiz is the only state carried between calls.
type QuizService interface {
	StartQuiz(ctx context.Context, req models.StartQuizRequest) (models.Quiz, error)
	CheckAnswer(ctx context.Context, req models.CheckAnswerRequest) (models.AnswerResult, error)
	SubmitQuiz(ctx context.Context, req models.SubmitQuizRequest) (models.QuizResult, error)
}

type LeaderboardService interface {
	// GetLeaderboard returns the ranking for categoryID, or the overall
	// ranking when categoryID is nil. A non-positive limit uses the
	// configured default.
	GetLeaderboard(ctx context.Context, categoryID *int64, limit int) (models.Leaderboard, error)
	// DeleteScore removes a score record. Requires an admin session.
	DeleteScore(ctx context.Context, id string) error
}

type StatsService interface {
	GetStatistics(ctx context.Context) (models.Statistics, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
