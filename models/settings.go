package models

// TravelMode is the navigation profile passed to the external map
// application.
type TravelMode string

const (
	TravelModeDriving TravelMode = "driving"
	TravelModeTransit TravelMode = "transit"
	TravelModeWalking TravelMode = "walking"
)

// Valid reports whether m is one of the three supported modes.
func (m TravelMode) Valid() bool {
	switch m {
	case TravelModeDriving, TravelModeTransit, TravelModeWalking:
		return true
	}
	return false
}

// Settings is the singleton application settings record. It is created with
// defaults on first read and overwritten wholesale on save.
type Settings struct {
	TravelMode TravelMode `json:"travel_mode"`
}

// DefaultSettings returns the settings used when none are stored yet.
func DefaultSettings() Settings {
	return Settings{TravelMode: TravelModeDriving}
}
