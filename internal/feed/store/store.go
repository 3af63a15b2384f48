package store

import (
	"context"
	"errors"

	"microfeed/internal/feed/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")

	// ErrCorrupt wraps parse failures on data that exists but cannot be
	// decoded. Callers treat it as recoverable and surface a server error
	// instead of crashing the process.
	ErrCorrupt = errors.New("store: corrupt data")
)

// Store is the root data access interface. Concrete drivers (jsonfile,
// sqlite) implement this. It exposes sub-repositories to keep concerns tidy
// and testable.
type Store interface {
	Users() Users
	Posts() Posts

	// ApplyMigrations prepares the backing storage: schema migrations for
	// sqlite, directory creation and an early corruption check for jsonfile.
	ApplyMigrations() error

	// Ping verifies the backing storage is reachable.
	Ping(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error
}

type Users interface {
	// GetByUsername returns a user by exact, case-sensitive username.
	// Returns ErrNotFound when absent.
	GetByUsername(ctx context.Context, username string) (domain.User, error)

	// Create inserts a new user. Returns ErrAlreadyExists when the
	// username is taken; the collection is unchanged in that case.
	Create(ctx context.Context, u domain.User) error

	// List returns every user in insertion order.
	List(ctx context.Context) ([]domain.User, error)
}

type Posts interface {
	// Create inserts a new post, assigning its id, and returns the stored
	// record.
	Create(ctx context.Context, username, content string) (domain.Post, error)

	// List returns the full collection in insertion order.
	List(ctx context.Context) ([]domain.Post, error)

	// ListByUsername filters the collection by exact owner match,
	// preserving insertion order.
	ListByUsername(ctx context.Context, username string) ([]domain.Post, error)

	// Delete removes any post with the given id. Deleting an id that does
	// not exist is a silent no-op, not an error.
	Delete(ctx context.Context, id int) error
}
