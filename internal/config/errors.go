package config

import "errors"

var (
	// ErrInvalidStorageConfigs indicates an unknown storage backend or a
	// backend missing its required location setting.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAdapterConfigs indicates a missing or non-positive outbound
	// adapter setting after defaults were applied.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")

	// ErrInvalidNavigationConfigs indicates an empty deep-link base URL.
	ErrInvalidNavigationConfigs = errors.New("invalid navigation configs")
)
