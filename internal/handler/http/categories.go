package http

import (
	"net/http"

	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
	"github.com/MKhiriev/go-quiz-keeper/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.ListCategories(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listCategories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if !decodeJSON(w, r, &category) {
		return
	}

	created, err := h.services.CategoryService.CreateCategory(r.Context(), category)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createCategory")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
