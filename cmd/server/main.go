package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/stack-underflow/internal/config"
	"github.com/MKhiriev/stack-underflow/internal/handler"
	"github.com/MKhiriev/stack-underflow/internal/logger"
	"github.com/MKhiriev/stack-underflow/internal/server"
	"github.com/MKhiriev/stack-underflow/internal/service"
	"github.com/MKhiriev/stack-underflow/internal/store"
	"github.com/MKhiriev/stack-underflow/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const role = "stack-underflow-server"

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger(role,
		logger.WithLevel(cfg.Logging.Level),
		logger.WithFile(cfg.Logging.FilePath, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups, cfg.Logging.MaxAgeDays),
	)
	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("log_level", cfg.Logging.Level).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, buildInfo, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	runErr := srv.RunServer()

	if err = storages.Close(); err != nil {
		log.Err(err).Msg("error closing storages")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
