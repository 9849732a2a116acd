package service

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// leaderboardService ranks scores in memory: player names and scores are
// encrypted at rest, so the database cannot sort or group them.
type leaderboardService struct {
	scoreRepository store.ScoreRepository
	defaultLimit    int

	logger *logger.Logger
}

func NewLeaderboardService(scoreRepository store.ScoreRepository, cfg config.Quiz, logger *logger.Logger) LeaderboardService {
	return &leaderboardService{
		scoreRepository: scoreRepository,
		defaultLimit:    cfg.LeaderboardLimit,
		logger:          logger,
	}
}

func (s *leaderboardService) GetLeaderboard(ctx context.Context, categoryID *int64, limit int) (models.Leaderboard, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	if categoryID != nil && *categoryID < models.AllCategoriesID {
		return models.Leaderboard{}, ErrInvalidDataProvided
	}

	scores, err := s.scoreRepository.ListScores(ctx, models.ScoreFilter{CategoryID: categoryID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*leaderboardService.GetLeaderboard").Msg("failed to list scores")
		return models.Leaderboard{}, fmt.Errorf("error listing scores: %w", err)
	}

	if categoryID != nil {
		return models.Leaderboard{
			CategoryID: categoryID,
			Entries:    rankCategory(scores, limit),
		}, nil
	}

	return models.Leaderboard{Overall: rankOverall(scores, limit)}, nil
}

// DeleteScore removes a score record. Requires an admin session.
func (s *leaderboardService) DeleteScore(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.scoreRepository.DeleteScore(ctx, id); err != nil {
		return fmt.Errorf("error deleting score: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*leaderboardService.DeleteScore").Str("score_id", id).Msg("score deleted")
	return nil
}

// rankCategory orders attempts by displayed (one decimal) percentage, best
// first; among equal percentages the earlier attempt wins.
func rankCategory(scores []models.Score, limit int) []models.LeaderboardEntry {
	ranked := slices.Clone(scores)
	slices.SortStableFunc(ranked, func(a, b models.Score) int {
		if c := cmp.Compare(roundToOneDecimal(b.Percentage()), roundToOneDecimal(a.Percentage())); c != 0 {
			return c
		}
		return a.CompletedAt.Compare(b.CompletedAt)
	})

	entries := make([]models.LeaderboardEntry, 0, min(limit, len(ranked)))
	for _, sc := range ranked[:min(limit, len(ranked))] {
		entries = append(entries, models.LeaderboardEntry{
			Username:       sc.Username,
			Score:          sc.Score,
			TotalQuestions: sc.TotalQuestions,
			Percentage:     roundToOneDecimal(sc.Percentage()),
			CompletedAt:    sc.CompletedAt,
		})
	}
	return entries
}

// rankOverall groups attempts per player and orders players by average
// percentage; among equal averages the player whose last quiz came first
// wins.
func rankOverall(scores []models.Score, limit int) []models.OverallLeaderboardEntry {
	type aggregate struct {
		total    float64
		count    int
		lastQuiz models.Score
	}

	byUser := make(map[string]*aggregate)
	order := make([]string, 0)
	for _, sc := range scores {
		agg, ok := byUser[sc.Username]
		if !ok {
			agg = &aggregate{}
			byUser[sc.Username] = agg
			order = append(order, sc.Username)
		}
		agg.total += sc.Percentage()
		agg.count++
		if sc.CompletedAt.After(agg.lastQuiz.CompletedAt) {
			agg.lastQuiz = sc
		}
	}

	entries := make([]models.OverallLeaderboardEntry, 0, len(order))
	for _, username := range order {
		agg := byUser[username]
		entries = append(entries, models.OverallLeaderboardEntry{
			Username:          username,
			AveragePercentage: agg.total / float64(agg.count),
			QuizzesTaken:      agg.count,
			LastQuiz:          agg.lastQuiz.CompletedAt,
		})
	}

	slices.SortStableFunc(entries, func(a, b models.OverallLeaderboardEntry) int {
		if c := cmp.Compare(b.AveragePercentage, a.AveragePercentage); c != 0 {
			return c
		}
		return a.LastQuiz.Compare(b.LastQuiz)
	})

	entries = entries[:min(limit, len(entries))]
	for i := range entries {
		entries[i].AveragePercentage = roundToOneDecimal(entries[i].AveragePercentage)
	}
	return entries
}
