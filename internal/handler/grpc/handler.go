// Package grpc exposes the liveness and readiness of the quiz server over the
// standard grpc.health.v1 protocol.
package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
)

// ServiceName is the name reported to health checks next to the overall ""
// service.
const ServiceName = "quizkeeper.v1.QuizKeeper"

// Handler is the root gRPC transport handler. It owns the health server
// whose status follows the store: SERVING once the store is open and
// NOT_SERVING from the start of shutdown.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler returns a handler reporting NOT_SERVING until [Handler.SetServing]
// is called.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing marks the server ready.
func (h *Handler) SetServing() {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("func", "*Handler.SetServing").Msg("gRPC health: serving")
}

// Shutdown marks every service NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Str("func", "*Handler.Shutdown").Msg("gRPC health: not serving")
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
