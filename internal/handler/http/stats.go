package http

import (
	"net/http"

	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

func (h *Handler) getStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatsService.GetStatistics(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getStatistics")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
