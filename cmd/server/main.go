package main

import (
	"context"
	"fmt"

	"github.com/mkorolev/salary-service/internal/config"
	"github.com/mkorolev/salary-service/internal/handler"
	"github.com/mkorolev/salary-service/internal/logger"
	"github.com/mkorolev/salary-service/internal/server"
	"github.com/mkorolev/salary-service/internal/service"
	"github.com/mkorolev/salary-service/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("salary-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := store.NewRepositories(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	services, err := service.NewServices(repositories, cfg.Auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers := handler.NewHandlers(services, log)

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
