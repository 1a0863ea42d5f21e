package main

import (
	"context"
	"fmt"

	"github.com/jmoreno/datebook/internal/config"
	"github.com/jmoreno/datebook/internal/handler"
	"github.com/jmoreno/datebook/internal/logger"
	"github.com/jmoreno/datebook/internal/server"
	"github.com/jmoreno/datebook/internal/service"
	"github.com/jmoreno/datebook/internal/store"
	"github.com/jmoreno/datebook/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("datebook-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	var db *store.DB
	switch cfg.Storage.DB.Driver {
	case migrations.DriverSQLite:
		db, err = store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	default:
		db, err = store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	repositories := store.NewRepositories(db, log)

	services, err := service.NewServices(repositories, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
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
