package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyPrompt         = errors.New("question text is required")
	ErrTooFewOptions       = errors.New("at least two answer options are required")
	ErrTooManyOptions      = errors.New("too many answer options")
	ErrEmptyOption         = errors.New("answer options cannot be empty")
	ErrAnswerOutOfRange    = errors.New("correct answer must point at one of the options")
	ErrInvalidCategoryID   = errors.New("invalid category ID")
	ErrInvalidDifficulty   = errors.New("invalid difficulty")
	ErrEmptyUsername       = errors.New("username is required")
	ErrUsernameTooLong     = errors.New("username is too long")
	ErrInvalidLimit        = errors.New("invalid question limit")
	ErrInvalidScore        = errors.New("score must be between zero and the number of questions")
	ErrInvalidTotal        = errors.New("total questions must be positive")
	ErrEmptyCategoryName   = errors.New("category name is required")
	ErrCategoryNameTooLong = errors.New("category name is too long")
)
