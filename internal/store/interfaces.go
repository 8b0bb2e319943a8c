package store

import (
	"context"
	"errors"

	"github.com/ytget/juice-tracker/internal/model"
)

var (
	// ErrNotFound is returned when no entry has the requested id.
	ErrNotFound = errors.New("juice not found")
	// ErrInvalidJuice is returned when an entry fails validation before a write.
	ErrInvalidJuice = errors.New("invalid juice")
)

// Store defines the interface for juice persistence.
type Store interface {
	// List returns all entries ordered by id.
	List(ctx context.Context) ([]model.Juice, error)

	// FetchByID returns the entry with the given id or ErrNotFound.
	FetchByID(ctx context.Context, id int64) (*model.Juice, error)

	// Persist creates the entry when its ID is 0 and updates it by id otherwise.
	// It returns the stored entry with its assigned id.
	Persist(ctx context.Context, juice model.Juice) (model.Juice, error)

	// Delete removes the entry with the given id or returns ErrNotFound.
	Delete(ctx context.Context, id int64) error

	// SetUpdateCallback sets the function called after every successful mutation.
	SetUpdateCallback(func())

	Close() error
}
