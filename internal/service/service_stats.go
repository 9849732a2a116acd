package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

type statsService struct {
	categoryRepository store.CategoryRepository
	questionRepository store.QuestionRepository
	scoreRepository    store.ScoreRepository

	logger *logger.Logger
}

func NewStatsService(
	categoryRepository store.CategoryRepository,
	questionRepository store.QuestionRepository,
	scoreRepository store.ScoreRepository,
	logger *logger.Logger,
) StatsService {
	return &statsService{
		categoryRepository: categoryRepository,
		questionRepository: questionRepository,
		scoreRepository:    scoreRepository,
		logger:             logger,
	}
}

// GetStatistics summarises the store for the admin dashboard. Requires an
// admin session.
func (s *statsService) GetStatistics(ctx context.Context) (models.Statistics, error) {
	if err := requireAdmin(ctx); err != nil {
		return models.Statistics{}, err
	}
	log := logger.FromContext(ctx)

	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		return models.Statistics{}, fmt.Errorf("error listing categories: %w", err)
	}

	counts, err := s.questionRepository.CountByCategory(ctx)
	if err != nil {
		log.Err(err).Str("func", "*statsService.GetStatistics").Msg("failed to count questions")
		return models.Statistics{}, fmt.Errorf("error counting questions: %w", err)
	}

	scores, err := s.scoreRepository.ListScores(ctx, models.ScoreFilter{})
	if err != nil {
		log.Err(err).Str("func", "*statsService.GetStatistics").Msg("failed to list scores")
		return models.Statistics{}, fmt.Errorf("error listing scores: %w", err)
	}

	stats := models.Statistics{
		CategoryStats: make([]models.CategoryStat, 0, len(categories)),
		TotalScores:   len(scores),
	}
	for _, c := range categories {
		stats.CategoryStats = append(stats.CategoryStats, models.CategoryStat{
			CategoryID:    c.ID,
			Name:          c.Name,
			QuestionCount: counts[c.ID],
		})
	}
	for _, n := range counts {
		stats.TotalQuestions += n
	}

	users := make(map[string]struct{}, len(scores))
	var total float64
	for _, sc := range scores {
		users[sc.Username] = struct{}{}
		total += sc.Percentage()
	}
	stats.UniqueUsers = len(users)
	if len(scores) > 0 {
		stats.AverageScore = roundToOneDecimal(total / float64(len(scores)))
	}

	return stats, nil
}
