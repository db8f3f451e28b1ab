package service

import (
	"pinbook/internal/adapter"
	"pinbook/internal/config"
	"pinbook/internal/logger"
	"pinbook/internal/store"
)

// Adapters bundles the outbound capabilities the services depend on.
type Adapters struct {
	Geocoder   adapter.Geocoder
	Places     adapter.PlacesClient
	Location   adapter.LocationProvider
	Cleaner    adapter.TextCleaner
	Recognizer adapter.SpeechRecognizer
}

// ClientServices is the full client service layer, constructed once at
// startup and handed to the TUI.
type ClientServices struct {
	Places     *PlaceService
	Tabs       *TabService
	Settings   *SettingsService
	Search     *SearchService
	Dictation  *DictationService
	Navigation *NavigationService
}

// NewClientServices wires the services over the storages and adapters.
func NewClientServices(cfg *config.ClientConfig, storages *store.ClientStorages, adapters Adapters, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Places:     NewPlaceService(storages.Places, storages.Tabs, adapters.Location, adapters.Geocoder, logger),
		Tabs:       NewTabService(storages.Tabs, storages.Places, logger),
		Settings:   NewSettingsService(storages.Settings, logger),
		Search:     NewSearchService(cfg.Maps, adapters.Places, adapters.Location, storages.History, logger),
		Dictation:  NewDictationService(adapters.Recognizer, adapters.Cleaner, logger),
		Navigation: NewNavigationService(cfg.Navigation, storages.Settings, logger),
	}
}
