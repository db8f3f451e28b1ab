package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"context"

	"pinbook/internal/config"
	"pinbook/internal/logger"
)

// fileKV is the filesystem implementation of [KV]: one JSON document per
// storage key under a data directory. Writes are full-document overwrites
// with 0600 permissions.
type fileKV struct {
	dir    string
	logger *logger.Logger

	mu sync.RWMutex
}

// NewFileKV constructs a file-backed [KV] rooted at cfg.Dir, creating the
// directory when missing.
func NewFileKV(cfg config.ClientStorage, log *logger.Logger) (KV, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &fileKV{dir: cfg.Dir, logger: log}, nil
}

func (f *fileKV) path(key string) string {
	// Keys carry a "prefix:" namespace; colons are not portable in file
	// names.
	name := strings.ReplaceAll(key, ":", "_") + ".json"
	return filepath.Join(f.dir, name)
}

func (f *fileKV) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read storage file (key=%s): %w", key, err)
	}

	return string(data), true, nil
}

func (f *fileKV) Put(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.WriteFile(f.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("write storage file (key=%s): %w", key, err)
	}

	return nil
}
