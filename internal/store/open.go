package store

import (
	"fmt"
	"time"
)

// Backend names accepted by Open
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Open creates the store for the configured backend. A positive cacheTTL
// puts a CachedStore in front of it.
func Open(backend, path string, cacheTTL time.Duration) (Store, error) {
	var s Store
	switch backend {
	case BackendSQLite, "":
		sqliteStore, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		s = sqliteStore
	case BackendMemory:
		s = NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", backend)
	}

	if cacheTTL > 0 {
		s = NewCachedStore(s, cacheTTL)
	}
	return s, nil
}
