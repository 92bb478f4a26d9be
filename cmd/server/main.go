package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fin360/internal/adapter"
	"github.com/MKhiriev/fin360/internal/config"
	"github.com/MKhiriev/fin360/internal/crypto"
	"github.com/MKhiriev/fin360/internal/handler"
	"github.com/MKhiriev/fin360/internal/logger"
	"github.com/MKhiriev/fin360/internal/server"
	"github.com/MKhiriev/fin360/internal/service"
	"github.com/MKhiriev/fin360/internal/store"
	"github.com/MKhiriev/fin360/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("fin360-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevelForEnv(cfg.App.Env)

	for _, warning := range cfg.Warnings() {
		log.Warn().Msg(warning)
	}

	cipher, err := crypto.NewFieldCipher(cfg.App.CryptoSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating field cipher")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Error().Err(err).Msg("error closing storages")
		}
	}()

	adapters, err := adapter.NewAdapters(ctx, cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapters")
	}

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, adapters, cipher, cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
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
