package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-quiz-keeper/models"
)

const (
	FieldPrompt        = "question"
	FieldOptions       = "options"
	FieldCorrectAnswer = "correct_answer"
	FieldCategoryID    = "category_id"
	FieldDifficulty    = "difficulty"
	FieldUsername      = "username"
	FieldLimit         = "limit"
	FieldScore         = "score"
	FieldTotal         = "total_questions"
	FieldName          = "name"
)

// Bounds enforced by [QuizValidator].
const (
	MinOptions        = 2
	MaxOptions        = 6
	MaxUsernameLength = 64
	MaxCategoryName   = 100
	MaxQuestionLimit  = 50
)

var allowedDifficulties = []models.Difficulty{
	models.DifficultyEasy,
	models.DifficultyMedium,
	models.DifficultyHard,
}

// QuizValidator validates questions, quiz start requests, scores and
// categories.
type QuizValidator struct {
}

func NewQuizValidator() Validator {
	return &QuizValidator{}
}

func (v *QuizValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Question:
		return v.validateQuestion(ctx, value, fields...)
	case *models.Question:
		return v.validateQuestion(ctx, *value, fields...)

	case models.StartQuizRequest:
		return v.validateStartRequest(ctx, value, fields...)
	case *models.StartQuizRequest:
		return v.validateStartRequest(ctx, *value, fields...)

	case models.Score:
		return v.validateScore(ctx, value, fields...)
	case *models.Score:
		return v.validateScore(ctx, *value, fields...)

	case models.Category:
		return v.validateCategory(ctx, value, fields...)
	case *models.Category:
		return v.validateCategory(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func isValidDifficulty(d models.Difficulty) bool {
	for _, allowed := range allowedDifficulties {
		if d == allowed {
			return true
		}
	}
	return false
}

func (v *QuizValidator) validateQuestion(_ context.Context, q models.Question, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPrompt, FieldOptions, FieldCorrectAnswer, FieldCategoryID, FieldDifficulty}
	}

	for _, f := range fields {
		switch f {
		case FieldPrompt:
			if strings.TrimSpace(q.Prompt) == "" {
				return ErrEmptyPrompt
			}
		case FieldOptions:
			if len(q.Options) < MinOptions {
				return ErrTooFewOptions
			}
			if len(q.Options) > MaxOptions {
				return ErrTooManyOptions
			}
			for _, o := range q.Options {
				if strings.TrimSpace(o) == "" {
					return ErrEmptyOption
				}
			}
		case FieldCorrectAnswer:
			if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
				return ErrAnswerOutOfRange
			}
		case FieldCategoryID:
			if q.CategoryID <= 0 {
				return ErrInvalidCategoryID
			}
		case FieldDifficulty:
			// empty falls back to medium in the store
			if q.Difficulty != "" && !isValidDifficulty(q.Difficulty) {
				return ErrInvalidDifficulty
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QuizValidator) validateStartRequest(_ context.Context, r models.StartQuizRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldCategoryID, FieldLimit}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(r.Username); err != nil {
				return err
			}
		case FieldCategoryID:
			if r.CategoryID < models.AllCategoriesID {
				return ErrInvalidCategoryID
			}
		case FieldLimit:
			if r.Limit > MaxQuestionLimit {
				return ErrInvalidLimit
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QuizValidator) validateScore(_ context.Context, s models.Score, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldCategoryID, FieldTotal, FieldScore}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := validateUsername(s.Username); err != nil {
				return err
			}
		case FieldCategoryID:
			if s.CategoryID < models.AllCategoriesID {
				return ErrInvalidCategoryID
			}
		case FieldTotal:
			if s.TotalQuestions <= 0 {
				return ErrInvalidTotal
			}
		case FieldScore:
			if s.Score < 0 || s.Score > s.TotalQuestions {
				return ErrInvalidScore
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *QuizValidator) validateCategory(_ context.Context, c models.Category, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name := strings.TrimSpace(c.Name)
			if name == "" {
				return ErrEmptyCategoryName
			}
			if utf8.RuneCountInString(name) > MaxCategoryName {
				return ErrCategoryNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUsername expects an already trimmed name.
func validateUsername(username string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if utf8.RuneCountInString(username) > MaxUsernameLength {
		return ErrUsernameTooLong
	}
	return nil
}
