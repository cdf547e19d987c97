package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shubhamkr/streamtube-backend/internal/adapter"
	"github.com/shubhamkr/streamtube-backend/internal/config"
	"github.com/shubhamkr/streamtube-backend/internal/handler"
	"github.com/shubhamkr/streamtube-backend/internal/logger"
	"github.com/shubhamkr/streamtube-backend/internal/server"
	"github.com/shubhamkr/streamtube-backend/internal/service"
	"github.com/shubhamkr/streamtube-backend/internal/store"
	"github.com/shubhamkr/streamtube-backend/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("streamtube-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error closing database connection")
		}
	}()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	uploader, err := adapter.NewHTTPImageHostAdapter(cfg.Uploads, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating image host adapter")
	}

	services := service.NewServices(storages, uploader, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, cfg.Uploads, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewTempDirCleaner(cfg.Uploads.TempDir, time.Hour, 15*time.Minute, log),
	)
	backgroundWorkers.Run()

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
