package http

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

func TestGetLeaderboard_Overall(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})
	m.leaderboard.EXPECT().GetLeaderboard(gomock.Any(), gomock.Nil(), 0).Return(models.Leaderboard{
		Overall: []models.OverallLeaderboardEntry{
			{Username: "pete", AveragePercentage: 87.5, QuizzesTaken: 2, LastQuiz: time.Unix(1000, 0).UTC()},
		},
	}, nil)

	rec := serve(h, http.MethodGet, "/api/leaderboard", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	board := decodeBody[models.Leaderboard](t, rec)
	assert.Nil(t, board.CategoryID)
	require.Len(t, board.Overall, 1)
	assert.Equal(t, 87.5, board.Overall[0].AveragePercentage)
}

func TestGetLeaderboard_Category(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})

	categoryID := int64(2)
	m.leaderboard.EXPECT().
		GetLeaderboard(gomock.Any(), gomock.Eq(&categoryID), 5).
		Return(models.Leaderboard{CategoryID: &categoryID, Entries: []models.LeaderboardEntry{{Username: "ae", Score: 9, TotalQuestions: 10, Percentage: 90}}}, nil)

	rec := serve(h, http.MethodGet, "/api/leaderboard?category_id=2&limit=5", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	board := decodeBody[models.Leaderboard](t, rec)
	require.NotNil(t, board.CategoryID)
	assert.Equal(t, int64(2), *board.CategoryID)
	assert.Len(t, board.Entries, 1)
}

func TestGetLeaderboard_AllCategoriesIsExplicit(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})

	all := models.AllCategoriesID
	m.leaderboard.EXPECT().GetLeaderboard(gomock.Any(), gomock.Eq(&all), 0).Return(models.Leaderboard{CategoryID: &all}, nil)

	rec := serve(h, http.MethodGet, "/api/leaderboard?category_id=0", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetLeaderboard_BadParams(t *testing.T) {
	for _, target := range []string{
		"/api/leaderboard?category_id=x",
		"/api/leaderboard?limit=ten",
		"/api/leaderboard?limit=-1",
	} {
		t.Run(target, func(t *testing.T) {
			h, _ := newTestHandler(t, config.StructuredConfig{})

			rec := serve(h, http.MethodGet, target, nil, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeleteScore(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})
	m.expectAdmin()
	m.leaderboard.EXPECT().DeleteScore(gomock.Any(), "s1").Return(nil)

	rec := serve(h, http.MethodDelete, "/api/admin/scores/s1", nil, adminHeader())

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteScore_StorageFailure(t *testing.T) {
	h, m := newTestHandler(t, config.StructuredConfig{})
	m.expectAdmin()
	m.leaderboard.EXPECT().DeleteScore(gomock.Any(), "s1").Return(store.ErrExecutingStatement)

	rec := serve(h, http.MethodDelete, "/api/admin/scores/s1", nil, adminHeader())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
