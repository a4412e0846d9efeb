package main

import (
	"context"
	"fmt"

	"github.com/devconnector/devconnector/internal/adapter"
	"github.com/devconnector/devconnector/internal/config"
	handlerhttp "github.com/devconnector/devconnector/internal/handler/http"
	"github.com/devconnector/devconnector/internal/logger"
	"github.com/devconnector/devconnector/internal/server"
	"github.com/devconnector/devconnector/internal/service"
	"github.com/devconnector/devconnector/internal/store"
	"github.com/devconnector/devconnector/migrations"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is fine, real deployments configure via the
	// environment directly
	_ = godotenv.Load()

	log := logger.NewLogger("devconnector-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)
	services := service.NewServices(storages, cfg, log)
	githubAdapter := adapter.NewGithubAdapter(cfg.Github, log)
	handler := handlerhttp.NewHandler(services, githubAdapter, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
