package persistence

import (
	"fmt"

	"github.com/xiaomi388/result-management/pkg/config"
	"github.com/xiaomi388/result-management/pkg/types"
)

// Store abstracts roster persistence.
type Store interface {
	LoadRoster() (*types.Roster, error)
	DumpRoster(roster *types.Roster) error
	Close() error
	// Path is where the roster lives.
	Path() string
}

// NewStoreWithBackend creates a Store for the given backend and optional path.
func NewStoreWithBackend(backend, path string) (Store, error) {
	return NewStore(config.StorageConfig{Backend: backend, Path: path})
}

// ResolvePath returns path, or the default file of backend when path is
// empty.
func ResolvePath(backend, path string) (string, error) {
	if path != "" {
		return path, nil
	}

	switch backend {
	case "", "json":
		return DefaultRosterPath, nil
	case "sqlite":
		return DefaultSQLitePath, nil
	default:
		return "", fmt.Errorf("unknown storage backend: %s", backend)
	}
}

// NewStore creates a Store based on the storage configuration.
func NewStore(cfg config.StorageConfig) (Store, error) {
	path, err := ResolvePath(cfg.Backend, cfg.Path)
	if err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case "", "json":
		return NewJSONStore(path), nil
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}
