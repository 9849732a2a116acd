package http

import (
	"net/http"

	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// startQuiz draws the questions of a new quiz. The answers are withheld; the
// returned quiz token is needed by the check and submit routes.
func (h *Handler) startQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.StartQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quiz, err := h.services.QuizService.StartQuiz(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.startQuiz")
		return
	}

	utils.WriteJSON(w, quiz, http.StatusOK)
}

func (h *Handler) checkAnswer(w http.ResponseWriter, r *http.Request) {
	var req models.CheckAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.QuizService.CheckAnswer(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.checkAnswer")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) submitQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitQuizRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := h.services.QuizService.SubmitQuiz(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.submitQuiz")
		return
	}

	utils.WriteJSON(w, result, http.StatusCreated)
}
