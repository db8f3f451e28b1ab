package adapter

import (
	"errors"
	"fmt"
)

// LocationErrorCode classifies a failed location lookup.
type LocationErrorCode string

const (
	LocationPermissionDenied    LocationErrorCode = "permission-denied"
	LocationPositionUnavailable LocationErrorCode = "position-unavailable"
	LocationTimeout             LocationErrorCode = "timeout"
	LocationUnknown             LocationErrorCode = "unknown"
)

// LocationError wraps a location lookup failure with its taxonomy code.
type LocationError struct {
	Code LocationErrorCode
	Err  error
}

func (e *LocationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("location error: %s", e.Code)
	}
	return fmt.Sprintf("location error: %s: %v", e.Code, e.Err)
}

func (e *LocationError) Unwrap() error { return e.Err }

var (
	// ErrPlaceNotFound is returned by Details when the service no longer
	// resolves the given place id.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrSpeechUnsupported is returned when the platform has no
	// speech-recognition capability.
	ErrSpeechUnsupported = errors.New("speech recognition is not supported")

	// ErrSpeechPermissionDenied is returned when the recognizer exists but
	// microphone access was refused.
	ErrSpeechPermissionDenied = errors.New("microphone permission denied")

	// ErrNoSpeech is returned when capture finished without producing any
	// transcript.
	ErrNoSpeech = errors.New("no speech detected")
)
