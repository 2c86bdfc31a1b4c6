package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/voice-notes/internal/config"
	"github.com/MKhiriev/voice-notes/internal/handler"
	"github.com/MKhiriev/voice-notes/internal/logger"
	"github.com/MKhiriev/voice-notes/internal/metrics"
	"github.com/MKhiriev/voice-notes/internal/server"
	"github.com/MKhiriev/voice-notes/internal/service"
	"github.com/MKhiriev/voice-notes/internal/store"
	"github.com/MKhiriev/voice-notes/internal/workers"
	"github.com/MKhiriev/voice-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("voice-notes-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("driver", cfg.Storage.DB.Driver).Str("http", cfg.Server.HTTPAddress).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	buildInfo := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	services, err := service.NewServices(store.NewRepositories(db, log), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	m := metrics.New()
	handlers, err := handler.NewHandlers(services, cfg, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, workers.NewWorkers(services, cfg.Workers, m, log), log)
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
