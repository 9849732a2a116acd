package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID attaches a trace id to the request: the one sent by the client
// in X-Trace-ID, or a fresh UUID. The id is echoed in the response header and
// carried by the request logger.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		_, ctx := h.logger.WithTraceID(r.Context(), traceID)
		ctx = utils.WithTraceID(ctx, traceID)

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
