package store

import "errors"

var (
	// ErrNotFound is returned by point lookups and updates targeting a
	// record that does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrTabLimit is returned when creating a sixth custom tab.
	ErrTabLimit = errors.New("custom tab limit reached")

	// ErrBuiltinTab is returned when renaming or deleting a built-in tab.
	ErrBuiltinTab = errors.New("built-in tab is immutable")
)
