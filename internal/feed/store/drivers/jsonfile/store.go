// Package jsonfile persists each collection as a JSON sequence in a flat
// file under a single data directory. Every mutation is a whole-collection
// read-modify-write serialized behind a per-collection mutex, which bounds
// the driver to small datasets and a single process.
package jsonfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"microfeed/internal/feed/domain"
	"microfeed/internal/feed/store"
)

const (
	usersFile = "users.json"
	postsFile = "posts.json"
)

type Store struct {
	dir   string
	users *usersRepo
	posts *postsRepo
}

// NewStore returns a flat-file Store rooted at dir.
func NewStore(dir string) (*Store, error) {
	dir = filepath.Clean(dir)
	return &Store{
		dir:   dir,
		users: &usersRepo{path: filepath.Join(dir, usersFile)},
		posts: &postsRepo{path: filepath.Join(dir, postsFile)},
	}, nil
}

func (s *Store) Users() store.Users { return s.users }
func (s *Store) Posts() store.Posts { return s.posts }

// ApplyMigrations creates the data directory and fails fast on collections
// that exist but cannot be parsed, so corruption surfaces at startup rather
// than on the first request.
func (s *Store) ApplyMigrations() error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	var users []domain.User
	if err := readCollection(s.users.path, &users); err != nil {
		return err
	}

	var posts []domain.Post
	if err := readCollection(s.posts.path, &posts); err != nil {
		return err
	}

	return nil
}

// Ping verifies the data directory is still accessible.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := os.Stat(s.dir)
	return err
}

func (s *Store) Close() error { return nil }

var _ store.Store = (*Store)(nil)
