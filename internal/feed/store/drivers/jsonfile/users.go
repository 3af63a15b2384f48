package jsonfile

import (
	"context"
	"sync"

	"microfeed/internal/feed/domain"
	"microfeed/internal/feed/store"
)

type usersRepo struct {
	path string

	// mu serializes every read-modify-write cycle against the collection.
	// Two concurrent Creates would otherwise read the same snapshot and
	// the second save would silently discard the first's record.
	mu sync.Mutex
}

func (r *usersRepo) GetByUsername(ctx context.Context, username string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, store.ErrNotFound
}

func (r *usersRepo) Create(ctx context.Context, u domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	for _, existing := range users {
		if existing.Username == u.Username {
			return store.ErrAlreadyExists
		}
	}

	return writeCollection(r.path, append(users, u))
}

func (r *usersRepo) List(ctx context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *usersRepo) load() ([]domain.User, error) {
	var users []domain.User
	if err := readCollection(r.path, &users); err != nil {
		return nil, err
	}
	return users, nil
}
