package main

import (
	"fmt"

	"github.com/MKhiriev/go-personal-blog/internal/config"
	"github.com/MKhiriev/go-personal-blog/internal/handler"
	"github.com/MKhiriev/go-personal-blog/internal/logger"
	"github.com/MKhiriev/go-personal-blog/internal/server"
	"github.com/MKhiriev/go-personal-blog/internal/service"
	"github.com/MKhiriev/go-personal-blog/internal/session"
	"github.com/MKhiriev/go-personal-blog/internal/store"
	"github.com/MKhiriev/go-personal-blog/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-blog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, cfg.App, log)

	secureCookies := cfg.App.Environment == "production"
	sessions := session.NewManager(cfg.App.SessionDuration, secureCookies, log)

	handlers, err := handler.NewHandlers(services, sessions, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(sessions, cfg.Workers, log)
	backgroundWorkers.Run()
	defer backgroundWorkers.Stop()

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
