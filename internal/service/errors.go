package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrAdminSessionRequired    = errors.New("admin session required")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrNoQuestionsAvailable = errors.New("no questions available for this category")
	ErrQuestionNotInQuiz    = errors.New("question does not belong to this quiz")
	ErrQuizAlreadySubmitted = errors.New("quiz has already been submitted")
)
