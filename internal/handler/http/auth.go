package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-quiz-keeper/models"
)

// login exchanges the admin password for a bearer token returned in the
// Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	token, err := h.services.AuthService.Login(r.Context(), req.Password)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.login")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
