package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-quiz-keeper/internal/crypto"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/service"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

// genericFailureMessage is the only body a client sees for storage and
// integrity failures, so the two cannot be told apart from outside.
const genericFailureMessage = "the request could not be completed, please try again later"

// errorStatusMap is consulted in order: specific sentinels first, their
// roots after them.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrQuestionNotInQuiz, http.StatusBadRequest},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrAdminSessionRequired, http.StatusForbidden},
	{service.ErrNoQuestionsAvailable, http.StatusNotFound},
	{service.ErrQuizAlreadySubmitted, http.StatusConflict},

	{store.ErrQuestionNotFound, http.StatusNotFound},
	{store.ErrScoreNotFound, http.StatusNotFound},
	{store.ErrCategoryNotFound, http.StatusNotFound},
	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrQuestionAlreadyExists, http.StatusConflict},
	{store.ErrCategoryAlreadyExists, http.StatusConflict},
	{store.ErrAlreadyExists, http.StatusConflict},

	{store.ErrStorage, http.StatusInternalServerError},
	{crypto.ErrDecryption, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client facing text for err. Client errors
// expose the matched sentinel, never the wrapped details.
func messageFromError(err error) string {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			if e.status >= http.StatusInternalServerError {
				return genericFailureMessage
			}
			return e.target.Error()
		}
	}
	return genericFailureMessage
}

// writeServiceError logs err with the request logger and writes the mapped
// status and message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")

	utils.WriteError(w, messageFromError(err), status)
}
