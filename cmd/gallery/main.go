package main

import (
	"context"
	"fmt"

	"github.com/VladDatsenko/3d/internal/client"
	"github.com/VladDatsenko/3d/internal/config"
	"github.com/VladDatsenko/3d/internal/logger"
	"github.com/VladDatsenko/3d/internal/service"
	"github.com/VladDatsenko/3d/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleAppLogger("3d-gallery")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to local database")
	}
	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	persistence := store.NewAdapter(store.NewKVRepository(db, log), log)
	services := service.NewServices(ctx, persistence, *cfg, log)

	if err = client.NewApp(services, log).Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("gallery run error")
	}
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
