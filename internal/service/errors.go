package service

import "errors"

var (
	// ErrNameRequired is returned when a place is saved with an empty name.
	ErrNameRequired = errors.New("place name is required")

	// ErrCoordinates is returned when a latitude or longitude falls outside
	// the valid range.
	ErrCoordinates = errors.New("coordinates out of range")

	// ErrTabNameRequired is returned when a tab is created or renamed with
	// an empty name.
	ErrTabNameRequired = errors.New("tab name is required")

	// ErrInvalidTravelMode is returned when an unknown travel mode is saved.
	ErrInvalidTravelMode = errors.New("invalid travel mode")
)
