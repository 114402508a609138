package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-bus-finder/internal/config"
	"github.com/MKhiriev/go-bus-finder/internal/handler"
	"github.com/MKhiriev/go-bus-finder/internal/logger"
	"github.com/MKhiriev/go-bus-finder/internal/server"
	"github.com/MKhiriev/go-bus-finder/internal/service"
	"github.com/MKhiriev/go-bus-finder/internal/store"
	"github.com/MKhiriev/go-bus-finder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("go-bus-finder-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	leveled, err := log.WithLevel(cfg.App.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	log = leveled

	log.Debug().
		Str("address", cfg.Server.Address()).
		Str("db_driver", cfg.Storage.DB.Driver).
		Int("db_max_open_conns", cfg.Storage.DB.MaxOpenConns).
		Bool("db_auto_migrate", cfg.Storage.DB.AutoMigrate).
		Str("static_dir", cfg.Server.StaticDir).
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services := service.NewServices(storages, cfg.App, log)

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
