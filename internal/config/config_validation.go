package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Defaults are applied
// later by the client view, so only values that can never be made valid are
// rejected here.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case "", "sqlite", "file":
	default:
		return ErrInvalidStorageConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.Backend {
	case "sqlite":
		if cfg.Storage.DSN == "" {
			return ErrInvalidStorageConfigs
		}
	case "file":
		if cfg.Storage.Dir == "" {
			return ErrInvalidStorageConfigs
		}
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Maps.BaseURL == "" || cfg.Maps.RequestTimeout <= 0 || cfg.Maps.DebounceInterval <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Navigation.BaseURL == "" {
		return ErrInvalidNavigationConfigs
	}
	if cfg.Location.CacheTTL <= 0 || cfg.Location.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
