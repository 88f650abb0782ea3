package database

import (
	"fmt"
	"path/filepath"

	"github.com/unicampus/portal/config"
	"github.com/unicampus/portal/store"
)

// OpenStore builds the scoped data store for the configured backend:
// postgres for real deployments, a JSON-file fallback when no database
// is configured, memory for throwaway runs.
func OpenStore(cfg *config.Config) (*store.Store, error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		db, err := Connect(cfg)
		if err != nil {
			return nil, err
		}
		return store.NewGorm(db), nil
	case config.StorageFile:
		return store.NewFile(filepath.Join(cfg.DataDir, "collections"))
	case config.StorageMemory:
		return store.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
