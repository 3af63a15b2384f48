package service

import (
	"context"
	"testing"

	"microfeed/internal/feed/store/drivers/jsonfile"

	"github.com/stretchr/testify/require"
)

func newPostService(t *testing.T) *PostService {
	t.Helper()

	st, err := jsonfile.NewStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	return &PostService{Store: st}
}

func TestPostService_CreateAssignsIDs(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "bob", "hi")
	require.NoError(t, err)
	require.Equal(t, 1, first.ID)
	require.Equal(t, "bob", first.Username)

	second, err := svc.Create(ctx, "bob", "more")
	require.NoError(t, err)
	require.Equal(t, 2, second.ID)
}

func TestPostService_ListByOwner(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "bob", "first")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "alice", "hers")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "bob", "second")
	require.NoError(t, err)

	posts, err := svc.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.Equal(t, "first", posts[0].Content)
	require.Equal(t, "second", posts[1].Content)
}

func TestPostService_RemoveIsSilentOnMiss(t *testing.T) {
	svc := newPostService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, "bob", "hi")
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, post.ID))
	require.NoError(t, svc.Remove(ctx, post.ID)) // second removal: no-op
	require.NoError(t, svc.Remove(ctx, 42))      // never existed: no-op

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, posts)
}
