package models

// Position is a device location reading.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	// Accuracy is the estimated radius of the reading in meters.
	Accuracy float64 `json:"accuracy"`
}

// GeocodeResult is the outcome of a reverse-geocoding lookup.
type GeocodeResult struct {
	Address    string `json:"address"`
	PlaceName  string `json:"place_name,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// Suggestion is a single autocomplete candidate. PlaceID resolves to full
// coordinates via a place-details call within the same search session.
type Suggestion struct {
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
	PlaceID     string `json:"place_id"`
}

// PlaceDetails is a resolved autocomplete candidate.
type PlaceDetails struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
