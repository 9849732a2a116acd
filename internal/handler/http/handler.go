package http

import (
	"time"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/service"
	"github.com/MKhiriev/go-quiz-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher verifies the HashSHA256 header of admin writes. Nil when no
	// hash key is configured.
	hasher *utils.Hasher

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.App.HashKey != "" {
		h.hasher = utils.NewHasher(cfg.App.HashKey)
	}

	logger.Info().Bool("body_hash_check", h.hasher != nil).Msg("http handler created")
	return h
}
