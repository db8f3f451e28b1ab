package tui

import (
	"pinbook/models"
)

type listLoadedMsg struct {
	places []models.Place
	tabs   []models.Tab
	err    error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	err error
}

type draftMsg struct {
	place models.Place
	err   error
}

type linkCopiedMsg struct {
	err error
}

// debounceMsg fires after the search debounce interval. gen identifies the
// keystroke burst it belongs to; a stale tick is ignored.
type debounceMsg struct {
	gen   uint64
	query string
}

type suggestionsMsg struct {
	gen         uint64
	suggestions []models.Suggestion
	err         error
}

type historyLoadedMsg struct {
	entries []models.SearchHistoryEntry
	err     error
}

type resolvedMsg struct {
	details models.PlaceDetails
	err     error
}

type dictationDoneMsg struct {
	text string
	err  error
}

type tabSavedMsg struct {
	err error
}

type settingsLoadedMsg struct {
	settings models.Settings
	err      error
}

type settingsSavedMsg struct {
	err error
}
