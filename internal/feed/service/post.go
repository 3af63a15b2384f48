package service

import (
	"context"

	"microfeed/internal/feed/domain"
	"microfeed/internal/feed/store"
)

type PostService struct {
	Store store.Store
}

// Create stores a new post owned by the given identity and returns the
// record with its assigned id.
func (s *PostService) Create(ctx context.Context, owner, content string) (domain.Post, error) {
	return s.Store.Posts().Create(ctx, owner, content)
}

// List returns the full post collection in insertion order.
func (s *PostService) List(ctx context.Context) ([]domain.Post, error) {
	return s.Store.Posts().List(ctx)
}

// ListByOwner returns only posts whose owner exactly matches.
func (s *PostService) ListByOwner(ctx context.Context, owner string) ([]domain.Post, error) {
	return s.Store.Posts().ListByUsername(ctx, owner)
}

// Remove deletes a post by id. Removing an id that does not exist succeeds
// silently; the operation is idempotent from the caller's perspective.
func (s *PostService) Remove(ctx context.Context, id int) error {
	return s.Store.Posts().Delete(ctx, id)
}
