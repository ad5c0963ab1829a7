package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/osavchuk/todostack/internal/adapter"
	"github.com/osavchuk/todostack/internal/config"
	myHTTP "github.com/osavchuk/todostack/internal/handler/http"
	"github.com/osavchuk/todostack/internal/logger"
	"github.com/osavchuk/todostack/internal/server"
	"github.com/osavchuk/todostack/internal/service"
	"github.com/osavchuk/todostack/internal/store"
	"github.com/osavchuk/todostack/internal/websession"
	"github.com/osavchuk/todostack/internal/workers"
	"github.com/osavchuk/todostack/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("todostack-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	buildInfo := models.AppBuildInfo{
		Version: cfg.App.Version,
		Date:    buildDate,
		Commit:  buildCommit,
	}
	if buildInfo.Version == "" {
		buildInfo.Version = buildVersion
	}

	services := service.NewServices(storages, buildInfo, log)

	sessionManager, err := websession.NewManager(cfg.App.SecretKeyBase, services.SessionService, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating web session manager")
	}

	geoClient := adapter.NewGeoClient(cfg.Adapter, log)
	requestInfo := adapter.NewRequestInfoProvider(geoClient, log)

	handler := myHTTP.NewHandler(services, sessionManager, requestInfo, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	backgroundWorkers := workers.NewWorkers(cfg.Workers, storages, log)
	go backgroundWorkers.Run(ctx)

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
