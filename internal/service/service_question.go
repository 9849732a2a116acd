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

// questionService exposes the full question records, answers included, to
// the administrator.
type questionService struct {
	questionRepository store.QuestionRepository
	categoryRepository store.CategoryRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewQuestionService(questionRepository store.QuestionRepository, categoryRepository store.CategoryRepository, logger *logger.Logger) QuestionService {
	return &questionService{
		questionRepository: questionRepository,
		categoryRepository: categoryRepository,
		validator:          validators.NewQuizValidator(),
		logger:             logger,
	}
}

func (s *questionService) CreateQuestion(ctx context.Context, q models.Question) (models.Question, error) {
	if err := requireAdmin(ctx); err != nil {
		return models.Question{}, err
	}

	q = normalizeQuestion(q)
	if err := s.validator.Validate(ctx, q); err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	saved, err := s.questionRepository.PutQuestion(ctx, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*questionService.CreateQuestion").Int64("category_id", q.CategoryID).Msg("failed to save question")
		return models.Question{}, fmt.Errorf("error saving question: %w", err)
	}

	return saved, nil
}

func (s *questionService) GetQuestion(ctx context.Context, id string) (models.Question, error) {
	if err := requireAdmin(ctx); err != nil {
		return models.Question{}, err
	}
	if id == "" {
		return models.Question{}, ErrInvalidDataProvided
	}

	q, err := s.questionRepository.GetQuestion(ctx, id)
	if err != nil {
		return models.Question{}, fmt.Errorf("error getting question: %w", err)
	}
	return q, nil
}

// ListQuestions returns the questions of one category, or of every category
// when categoryID is [models.AllCategoriesID].
func (s *questionService) ListQuestions(ctx context.Context, categoryID int64) ([]models.Question, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	if categoryID < models.AllCategoriesID {
		return nil, ErrInvalidDataProvided
	}

	if categoryID != models.AllCategoriesID {
		if _, err := s.categoryRepository.GetCategory(ctx, categoryID); err != nil {
			return nil, fmt.Errorf("error getting category: %w", err)
		}
	}

	questions, err := s.questionRepository.ListQuestions(ctx, models.QuestionFilter{CategoryID: categoryID})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*questionService.ListQuestions").Int64("category_id", categoryID).Msg("failed to list questions")
		return nil, fmt.Errorf("error listing questions: %w", err)
	}
	return questions, nil
}

func (s *questionService) UpdateQuestion(ctx context.Context, id string, q models.Question) (models.Question, error) {
	if err := requireAdmin(ctx); err != nil {
		return models.Question{}, err
	}
	if id == "" {
		return models.Question{}, ErrInvalidDataProvided
	}

	q = normalizeQuestion(q)
	if err := s.validator.Validate(ctx, q); err != nil {
		return models.Question{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updated, err := s.questionRepository.UpdateQuestion(ctx, id, q)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*questionService.UpdateQuestion").Str("question_id", id).Msg("failed to update question")
		return models.Question{}, fmt.Errorf("error updating question: %w", err)
	}
	return updated, nil
}

// DeleteQuestion removes id. Deleting a question that does not exist
// succeeds.
func (s *questionService) DeleteQuestion(ctx context.Context, id string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}
	if id == "" {
		return ErrInvalidDataProvided
	}

	if err := s.questionRepository.DeleteQuestion(ctx, id); err != nil {
		return fmt.Errorf("error deleting question: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*questionService.DeleteQuestion").Str("question_id", id).Msg("question deleted")
	return nil
}

func normalizeQuestion(q models.Question) models.Question {
	q.Prompt = strings.TrimSpace(q.Prompt)
	q.Explanation = strings.TrimSpace(q.Explanation)

	options := make([]string, len(q.Options))
	for i, o := range q.Options {
		options[i] = strings.TrimSpace(o)
	}
	q.Options = options

	return q
}
