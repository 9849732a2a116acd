package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

// listQuestions returns every question, or the questions of one category
// when category_id is given.
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	categoryID, _, err := queryInt64(r, "category_id")
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.listQuestions").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	questions, err := h.services.QuestionService.ListQuestions(r.Context(), categoryID)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listQuestions")
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}

	utils.WriteJSON(w, questions, http.StatusOK)
}

func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	question, err := h.services.QuestionService.GetQuestion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getQuestion")
		return
	}

	utils.WriteJSON(w, question, http.StatusOK)
}

func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	var question models.Question
	if !decodeJSON(w, r, &question) {
		return
	}

	created, err := h.services.QuestionService.CreateQuestion(r.Context(), question)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createQuestion")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// updateQuestion replaces the stored question; the id from the path wins
// over any id in the body.
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	var question models.Question
	if !decodeJSON(w, r, &question) {
		return
	}

	updated, err := h.services.QuestionService.UpdateQuestion(r.Context(), chi.URLParam(r, "id"), question)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updateQuestion")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// deleteQuestion answers 204 whether or not the question existed.
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	if err := h.services.QuestionService.DeleteQuestion(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteQuestion")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
