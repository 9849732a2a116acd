package service

import (
	"fmt"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/crypto"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
)

type Services struct {
	AuthService        AuthService
	CategoryService    CategoryService
	QuestionService    QuestionService
	QuizService        QuizService
	LeaderboardService LeaderboardService
	StatsService       StatsService
	AppInfoService     AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:        NewAuthService(crypto.NewSecretChecker(cfg.Admin.Password), cfg.App, logger),
		CategoryService:    NewCategoryService(storages.CategoryRepository, logger),
		QuestionService:    NewQuestionService(storages.QuestionRepository, storages.CategoryRepository, logger),
		QuizService:        NewQuizService(storages.QuestionRepository, storages.CategoryRepository, storages.ScoreRepository, cfg.App, cfg.Quiz, logger),
		LeaderboardService: NewLeaderboardService(storages.ScoreRepository, cfg.Quiz, logger),
		StatsService:       NewStatsService(storages.CategoryRepository, storages.QuestionRepository, storages.ScoreRepository, logger),
		AppInfoService:     appInfoService,
	}, nil
}
