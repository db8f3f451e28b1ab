package tui

import (
	"context"
	"errors"
	"fmt"

	"pinbook/internal/adapter"
	"pinbook/internal/app"
	"pinbook/internal/service"
	"pinbook/internal/store"
)

func saveErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrNameRequired):
		return app.MsgNameRequired
	case errors.Is(err, service.ErrCoordinates):
		return app.MsgCoordinatesOutOfRange
	case errors.Is(err, service.ErrTabNameRequired):
		return app.MsgTabNameRequired
	case errors.Is(err, store.ErrTabLimit):
		return app.MsgTabLimitReached
	case errors.Is(err, store.ErrBuiltinTab):
		return app.MsgBuiltinTabImmutable
	case errors.Is(err, store.ErrNotFound):
		return app.MsgPlaceNotFound
	default:
		return err.Error()
	}
}

func locationErrorMessage(err error) string {
	var locErr *adapter.LocationError
	if !errors.As(err, &locErr) {
		return err.Error()
	}

	switch locErr.Code {
	case adapter.LocationPermissionDenied:
		return app.MsgLocationPermissionDenied
	case adapter.LocationTimeout:
		return app.MsgLocationTimeout
	case adapter.LocationPositionUnavailable:
		return app.MsgLocationUnavailable
	default:
		return app.MsgLocationUnknown
	}
}

func dictationErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrSpeechUnsupported):
		return app.MsgSpeechUnsupported
	case errors.Is(err, adapter.ErrSpeechPermissionDenied):
		return app.MsgSpeechPermissionDenied
	case errors.Is(err, adapter.ErrNoSpeech):
		return app.MsgNoSpeechDetected
	case errors.Is(err, context.Canceled):
		// The user stopped the recording; nothing to report.
		return ""
	default:
		return fmt.Sprintf("音声入力エラー: %v", err)
	}
}
