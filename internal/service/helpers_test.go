package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

var testAppConfig = config.App{
	TokenSignKey:       "test-sign-key",
	TokenIssuer:        "quiz-test",
	AdminTokenDuration: time.Hour,
	QuizTokenDuration:  time.Hour,
	Version:            "test",
}

var testQuizConfig = config.Quiz{
	QuestionLimit:    15,
	LeaderboardLimit: 20,
}

func adminCtx() context.Context {
	return utils.WithSession(context.Background(), models.Session{Subject: models.AdminSubject})
}

func testQuestion(id string, categoryID int64, correct int) models.Question {
	return models.Question{
		ID:            id,
		CategoryID:    categoryID,
		Difficulty:    models.DifficultyMedium,
		Prompt:        "Question " + id,
		Options:       []string{"A", "B", "C", "D"},
		CorrectAnswer: correct,
		Explanation:   "because " + id,
	}
}
