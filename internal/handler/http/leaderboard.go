package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

// getLeaderboard serves the ranking of one category (category_id) or the
// overall ranking when the parameter is absent.
func (h *Handler) getLeaderboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	categoryID, hasCategory, err := queryInt64(r, "category_id")
	if err != nil {
		log.Err(err).Str("func", "*Handler.getLeaderboard").Send()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}
	limit, _, err := queryInt64(r, "limit")
	if err != nil || limit < 0 {
		log.Err(err).Str("func", "*Handler.getLeaderboard").Int64("limit", limit).Msg("bad limit")
		utils.WriteError(w, ErrInvalidQueryParam.Error()+": limit", http.StatusBadRequest)
		return
	}

	var category *int64
	if hasCategory {
		category = &categoryID
	}

	leaderboard, err := h.services.LeaderboardService.GetLeaderboard(r.Context(), category, int(limit))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getLeaderboard")
		return
	}

	utils.WriteJSON(w, leaderboard, http.StatusOK)
}

func (h *Handler) deleteScore(w http.ResponseWriter, r *http.Request) {
	if err := h.services.LeaderboardService.DeleteScore(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteScore")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
