package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-quiz-keeper/internal/config"
	"github.com/MKhiriev/go-quiz-keeper/internal/crypto"
	"github.com/MKhiriev/go-quiz-keeper/internal/handler"
	"github.com/MKhiriev/go-quiz-keeper/internal/logger"
	"github.com/MKhiriev/go-quiz-keeper/internal/server"
	"github.com/MKhiriev/go-quiz-keeper/internal/service"
	"github.com/MKhiriev/go-quiz-keeper/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("quiz-keeper-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// a release build reports its own version unless one is configured
	if buildVersion != "N/A" && cfg.App.Version == "dev" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	key, err := crypto.DeriveFromConfig(cfg.Crypto)
	if err != nil {
		log.Fatal().Err(err).Msg("error deriving encryption key")
	}

	cipher, err := crypto.NewCipher(key)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating cipher")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, cipher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
