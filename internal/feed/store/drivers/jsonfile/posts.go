package jsonfile

import (
	"context"
	"sync"
	"time"

	"microfeed/internal/feed/domain"
)

type postsRepo struct {
	path string
	mu   sync.Mutex
}

// Create assigns id = current count + 1 inside the critical section, so two
// concurrent creates cannot both observe the same count. Note that deleting
// posts shrinks the count, so ids of deleted posts can be reissued; id
// uniqueness holds only while no posts have been removed.
func (r *postsRepo) Create(ctx context.Context, username, content string) (domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		ID:        len(posts) + 1,
		Username:  username,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}

	if err := writeCollection(r.path, append(posts, post)); err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

func (r *postsRepo) List(ctx context.Context) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load()
}

func (r *postsRepo) ListByUsername(ctx context.Context, username string) ([]domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.Username == username {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// Delete filters out any post with the matching id. A miss leaves the
// collection unchanged and reports success.
func (r *postsRepo) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	posts, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if p.ID != id {
			kept = append(kept, p)
		}
	}

	if len(kept) == len(posts) {
		return nil // nothing matched, nothing to write
	}
	return writeCollection(r.path, kept)
}

func (r *postsRepo) load() ([]domain.Post, error) {
	var posts []domain.Post
	if err := readCollection(r.path, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
