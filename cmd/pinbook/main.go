package main

import (
	"fmt"

	"pinbook/internal/adapter"
	"pinbook/internal/client"
	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/service"
	"pinbook/internal/store"
	"pinbook/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("pinbook")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	adapters, err := buildAdapters(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create adapters")
	}

	services := service.NewClientServices(cfg, storages, adapters, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func buildAdapters(cfg *config.ClientConfig, log *logger.Logger) (service.Adapters, error) {
	geocoder, err := adapter.NewGoogleGeocoder(cfg.Maps, log)
	if err != nil {
		return service.Adapters{}, fmt.Errorf("create geocoder: %w", err)
	}

	places, err := adapter.NewGooglePlaces(cfg.Maps, log)
	if err != nil {
		return service.Adapters{}, fmt.Errorf("create places client: %w", err)
	}

	cleaner, err := adapter.NewGeminiCleaner(cfg.Cleanup, log)
	if err != nil {
		return service.Adapters{}, fmt.Errorf("create text cleaner: %w", err)
	}

	location := adapter.NewUnavailableLocationProvider()
	if cfg.Location.Endpoint != "" {
		location, err = adapter.NewIPLocationProvider(cfg.Location, log)
		if err != nil {
			return service.Adapters{}, fmt.Errorf("create location provider: %w", err)
		}
	}

	return service.Adapters{
		Geocoder:   geocoder,
		Places:     places,
		Location:   location,
		Cleaner:    cleaner,
		Recognizer: adapter.NewCommandRecognizer(cfg.Speech, log),
	}, nil
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
