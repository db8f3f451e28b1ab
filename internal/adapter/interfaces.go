package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"pinbook/models"
)

// Geocoder resolves coordinates into a human-readable address.
//
// ReverseGeocode is fail-open by contract: on any network failure or empty
// result set it returns a plain "{lat}, {lng}" address instead of an error,
// because the result feeds a form field the user can always edit manually.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) models.GeocodeResult
}

// PlacesClient wraps the autocomplete and place-details endpoints of the
// mapping service.
//
// One session token spans a sequence of Predictions calls and the Details
// call that resolves one of them; the token is rotated after each
// successful Details call. This is the upstream service's billing/session
// contract, not a local design choice.
type PlacesClient interface {
	// Predictions returns autocomplete candidates for input, biased around
	// origin when non-nil. Empty input or a missing API key yield an empty
	// slice, never an error.
	Predictions(ctx context.Context, input string, origin *models.Position) ([]models.Suggestion, error)

	// Details resolves a prediction into full coordinates. Returns
	// ErrPlaceNotFound when the service no longer knows the id.
	Details(ctx context.Context, placeID string) (models.PlaceDetails, error)
}

// LocationProvider reports the device's current position.
//
// Implementations must map every failure onto a [*LocationError] so the UI
// can show a distinct message per denial reason.
type LocationProvider interface {
	Current(ctx context.Context) (models.Position, error)
}

// TextCleaner rewrites a raw dictation transcript into clean prose.
//
// Clean never fails: when the cleanup endpoint is unavailable or errors,
// the raw input is returned unchanged. Cleanup is an enhancement, not a
// gate.
type TextCleaner interface {
	Clean(ctx context.Context, text string) string
}

// SpeechRecognizer is the feature-detected speech-to-text capability.
type SpeechRecognizer interface {
	// Available reports whether the capability exists on this platform.
	Available() bool

	// Capture records until the source finishes and returns the full
	// transcript (all partial results concatenated). Canceling ctx stops
	// the recording and yields whatever was captured so far. Returns
	// ErrSpeechUnsupported when the capability is unavailable.
	Capture(ctx context.Context) (string, error)
}
