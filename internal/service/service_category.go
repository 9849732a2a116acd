package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
	"github.com/MKhiriev/go-quiz-keeper/internal/validators"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

type categoryService struct {
	categoryRepository store.CategoryRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewCategoryService(categoryRepository store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{
		categoryRepository: categoryRepository,
		validator:          validators.NewQuizValidator(),
		logger:             logger,
	}
}

func (s *categoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	categories, err := s.categoryRepository.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a category. Requires an admin session.
func (s *categoryService) CreateCategory(ctx context.Context, category models.Category) (models.Category, error) {
	if err := requireAdmin(ctx); err != nil {
		return models.Category{}, err
	}

	category.Name = strings.TrimSpace(category.Name)
	category.Description = strings.TrimSpace(category.Description)
	if err := s.validator.Validate(ctx, category); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.categoryRepository.CreateCategory(ctx, category)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*categoryService.CreateCategory").Str("name", category.Name).Msg("failed to create category")
		return models.Category{}, fmt.Errorf("error creating category: %w", err)
	}

	return created, nil
}
