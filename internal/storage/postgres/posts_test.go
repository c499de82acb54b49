package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestIntegration_CreatePost_And_PostByID(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")

	created, err := st.CreatePost(ctx, &models.Post{
		UserID:          alice,
		Content:         "hello",
		MediaURL:        ptr("posts/1/a.png"),
		CommentsEnabled: false,
	})
	require.NoError(t, err)
	require.Positive(t, created.ID)
	require.Equal(t, "hello", created.Content)
	require.Equal(t, "posts/1/a.png", *created.MediaURL)
	require.False(t, created.CommentsEnabled)
	require.Equal(t, "alice", created.AuthorUsername)
	require.Equal(t, "Display alice", created.AuthorDisplayName)
	require.WithinDuration(t, time.Now(), created.CreatedAt, 5*time.Second)

	got, err := st.PostByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.ID, got.ID)
	require.Equal(t, created.Content, got.Content)
}

func TestIntegration_CreatePost_UnknownOwner(t *testing.T) {
	st := startPostgres(t)

	_, err := st.CreatePost(context.Background(), &models.Post{UserID: 999, Content: "x"})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_PostsByUser_OrderCountAndSoftDelete(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	first := createPost(t, st, alice, "first")
	second := createPost(t, st, alice, "second")
	createPost(t, st, bob, "bob's")

	items, err := st.PostsByUser(ctx, alice, page(0, 10))
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, second.ID, items[0].ID, "новые первыми")

	n, err := st.CountPostsByUser(ctx, alice)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)

	// чужой пост не удаляется.
	ok, err := st.SoftDeletePost(ctx, first.ID, bob)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.SoftDeletePost(ctx, first.ID, alice)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.SoftDeletePost(ctx, first.ID, alice)
	require.NoError(t, err)
	require.False(t, ok, "повторное удаление")

	_, err = st.PostByID(ctx, first.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	items, err = st.PostsByUser(ctx, alice, page(0, 10))
	require.NoError(t, err)
	require.Len(t, items, 1)

	n, err = st.CountPostsByUser(ctx, alice)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestIntegration_UpdatePost(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	p := createPost(t, st, alice, "draft")

	updated, err := st.UpdatePost(ctx, p.ID, alice, storage.PostUpdate{
		Content:         ptr("final"),
		CommentsEnabled: ptr(false),
	})
	require.NoError(t, err)
	require.Equal(t, "final", updated.Content)
	require.False(t, updated.CommentsEnabled)
	require.Nil(t, updated.MediaURL)
	require.True(t, !updated.UpdatedAt.Before(p.UpdatedAt))

	_, err = st.UpdatePost(ctx, p.ID, bob, storage.PostUpdate{Content: ptr("hijack")})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_FeedPosts(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	carol := createUser(t, st, "carol")

	createPost(t, st, bob, "b1")
	b2 := createPost(t, st, bob, "b2")
	createPost(t, st, carol, "c1")

	_, err := st.AddFollow(ctx, alice, bob)
	require.NoError(t, err)

	items, err := st.FeedPosts(ctx, alice, page(0, 10))
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, b2.ID, items[0].ID)

	n, err := st.CountFeedPosts(ctx, alice)
	require.NoError(t, err)
	require.EqualValues(t, 2, n)
}
