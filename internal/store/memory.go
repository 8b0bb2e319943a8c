package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ytget/juice-tracker/internal/model"
)

// MemoryStore keeps entries in a map. It is used for tests and the "memory" backend.
type MemoryStore struct {
	juices      map[int64]model.Juice
	juicesMutex sync.RWMutex
	nextID      int64
	onUpdate    func() // callback for UI updates
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		juices: make(map[int64]model.Juice),
		nextID: 1,
	}
}

// SetUpdateCallback sets the callback function for store updates
func (s *MemoryStore) SetUpdateCallback(callback func()) {
	s.juicesMutex.Lock()
	s.onUpdate = callback
	s.juicesMutex.Unlock()
}

// List returns all entries ordered by id
func (s *MemoryStore) List(ctx context.Context) ([]model.Juice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.juicesMutex.RLock()
	defer s.juicesMutex.RUnlock()

	juices := make([]model.Juice, 0, len(s.juices))
	for _, j := range s.juices {
		juices = append(juices, j)
	}
	sort.Slice(juices, func(a, b int) bool { return juices[a].ID < juices[b].ID })
	return juices, nil
}

// FetchByID returns a copy of the entry with the given id
func (s *MemoryStore) FetchByID(ctx context.Context, id int64) (*model.Juice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.juicesMutex.RLock()
	defer s.juicesMutex.RUnlock()

	j, exists := s.juices[id]
	if !exists {
		return nil, fmt.Errorf("juice %d: %w", id, ErrNotFound)
	}
	return &j, nil
}

// Persist creates or updates an entry
func (s *MemoryStore) Persist(ctx context.Context, juice model.Juice) (model.Juice, error) {
	if err := ctx.Err(); err != nil {
		return model.Juice{}, err
	}
	if err := juice.Validate(); err != nil {
		return model.Juice{}, fmt.Errorf("%w: %v", ErrInvalidJuice, err)
	}

	s.juicesMutex.Lock()
	if juice.IsNew() {
		juice.ID = s.nextID
		s.nextID++
	} else if juice.ID >= s.nextID {
		s.nextID = juice.ID + 1
	}
	s.juices[juice.ID] = juice
	callback := s.onUpdate
	s.juicesMutex.Unlock()

	log.Debug().Int64("id", juice.ID).Msg("juice persisted in memory")
	notify(callback)
	return juice, nil
}

// Delete removes an entry by id
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.juicesMutex.Lock()
	if _, exists := s.juices[id]; !exists {
		s.juicesMutex.Unlock()
		return fmt.Errorf("juice %d: %w", id, ErrNotFound)
	}
	delete(s.juices, id)
	callback := s.onUpdate
	s.juicesMutex.Unlock()

	notify(callback)
	return nil
}

// Close is a no-op for the memory store
func (s *MemoryStore) Close() error {
	return nil
}

// notify calls the update callback if set. It runs outside store locks so the
// callback may read from the store.
func notify(callback func()) {
	if callback != nil {
		callback()
	}
}
