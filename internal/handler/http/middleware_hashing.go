package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

// verifyBodyHash rejects admin writes whose body does not match the
// HashSHA256 header. It is a no-op when the server has no hash key.
func (h *Handler) verifyBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hasher == nil {
			next.ServeHTTP(w, r)
			return
		}

		h.logger.Debug().Str("func", "*Handler.verifyBodyHash").Msg("checking hash begins")

		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.verifyBodyHash").Msg("failed to read request body")
			utils.WriteError(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Verify(body, r.Header.Get(utils.HashHeader)) {
			h.logger.Error().Str("func", "*Handler.verifyBodyHash").Msg("hashes are not equal")
			utils.WriteError(w, ErrIntegrityCheckFailed.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
