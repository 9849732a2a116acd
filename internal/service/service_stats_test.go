package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/mock"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
	"github.com/MKhiriev/go-quiz-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsService_GetStatistics(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := mock.NewMockCategoryRepository(ctrl)
	questions := mock.NewMockQuestionRepository(ctrl)
	scores := mock.NewMockScoreRepository(ctrl)
	svc := NewStatsService(categories, questions, scores, logger.Nop())

	categories.EXPECT().ListCategories(gomock.Any()).Return([]models.Category{
		{ID: 1, Name: "Character Knowledge"},
		{ID: 2, Name: "Romantic Moments"},
	}, nil)
	questions.EXPECT().CountByCategory(gomock.Any()).Return(map[int64]int{1: 4}, nil)
	scores.EXPECT().ListScores(gomock.Any(), models.ScoreFilter{}).Return([]models.Score{
		{Username: "kwan", Score: 1, TotalQuestions: 3},
		{Username: "kwan", Score: 3, TotalQuestions: 3},
		{Username: "pond", Score: 1, TotalQuestions: 2},
	}, nil)

	stats, err := svc.GetStatistics(adminCtx())
	require.NoError(t, err)

	assert.Equal(t, []models.CategoryStat{
		{CategoryID: 1, Name: "Character Knowledge", QuestionCount: 4},
		{CategoryID: 2, Name: "Romantic Moments", QuestionCount: 0},
	}, stats.CategoryStats)
	assert.Equal(t, 4, stats.TotalQuestions)
	assert.Equal(t, 3, stats.TotalScores)
	assert.Equal(t, 2, stats.UniqueUsers)
	assert.Equal(t, 61.1, stats.AverageScore)
}

func TestStatsService_EmptyStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := mock.NewMockCategoryRepository(ctrl)
	questions := mock.NewMockQuestionRepository(ctrl)
	scores := mock.NewMockScoreRepository(ctrl)
	svc := NewStatsService(categories, questions, scores, logger.Nop())

	categories.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
	questions.EXPECT().CountByCategory(gomock.Any()).Return(map[int64]int{}, nil)
	scores.EXPECT().ListScores(gomock.Any(), gomock.Any()).Return(nil, nil)

	stats, err := svc.GetStatistics(adminCtx())
	require.NoError(t, err)
	assert.Zero(t, stats.AverageScore)
	assert.Zero(t, stats.UniqueUsers)
}

func TestStatsService_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	categories := mock.NewMockCategoryRepository(ctrl)
	questions := mock.NewMockQuestionRepository(ctrl)
	scores := mock.NewMockScoreRepository(ctrl)
	svc := NewStatsService(categories, questions, scores, logger.Nop())

	_, err := svc.GetStatistics(context.Background())
	assert.ErrorIs(t, err, ErrAdminSessionRequired)

	categories.EXPECT().ListCategories(gomock.Any()).Return(nil, nil)
	questions.EXPECT().CountByCategory(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	_, err = svc.GetStatistics(adminCtx())
	assert.ErrorIs(t, err, store.ErrStorage)
}
