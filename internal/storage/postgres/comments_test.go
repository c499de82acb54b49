package postgres

import (
	"context"
	"fmt"
	"testing"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestIntegration_CreateComment_CountsTopLevelOnly(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	p := createPost(t, st, alice, "post")

	root, n, err := st.CreateComment(ctx, &models.Comment{PostID: p.ID, UserID: alice, Content: "root"})
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
	require.True(t, root.IsTopLevel())
	require.Equal(t, "alice", root.AuthorUsername)

	reply, n, err := st.CreateComment(ctx, &models.Comment{PostID: p.ID, UserID: alice, Content: "reply", ParentID: &root.ID})
	require.NoError(t, err)
	require.EqualValues(t, 1, n, "ответы не входят в счётчик")
	require.Equal(t, root.ID, *reply.ParentID)

	replies, err := st.CountReplies(ctx, root.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, replies)
}

func TestIntegration_CreateComment_UnknownPost(t *testing.T) {
	st := startPostgres(t)
	alice := createUser(t, st, "alice")

	_, _, err := st.CreateComment(context.Background(), &models.Comment{PostID: 404, UserID: alice, Content: "x"})
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_TopLevelComments_Paging(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	p := createPost(t, st, alice, "post")

	var firstID int64
	for i := 0; i < 25; i++ {
		c, _, err := st.CreateComment(ctx, &models.Comment{PostID: p.ID, UserID: alice, Content: fmt.Sprintf("c%d", i)})
		require.NoError(t, err)
		if i == 0 {
			firstID = c.ID
		}
	}

	_, _, err := st.CreateComment(ctx, &models.Comment{PostID: p.ID, UserID: alice, Content: "r", ParentID: &firstID})
	require.NoError(t, err)

	items, err := st.TopLevelComments(ctx, p.ID, page(0, 20))
	require.NoError(t, err)
	require.Len(t, items, 20)
	require.Equal(t, firstID, items[0].ID, "старые первыми")
	require.EqualValues(t, 1, items[0].ReplyCount)

	items, err = st.TopLevelComments(ctx, p.ID, page(20, 20))
	require.NoError(t, err)
	require.Len(t, items, 5)

	n, err := st.CountTopLevelComments(ctx, p.ID)
	require.NoError(t, err)
	require.EqualValues(t, 25, n)
}

func TestIntegration_UpdateAndDeleteComment(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	p := createPost(t, st, alice, "post")

	c, _, err := st.CreateComment(ctx, &models.Comment{PostID: p.ID, UserID: alice, Content: "v1"})
	require.NoError(t, err)

	_, err = st.UpdateComment(ctx, c.ID, bob, "nope")
	require.ErrorIs(t, err, storage.ErrNotFound)

	upd, err := st.UpdateComment(ctx, c.ID, alice, "v2")
	require.NoError(t, err)
	require.Equal(t, "v2", upd.Content)

	ok, err := st.SoftDeleteComment(ctx, c.ID, alice)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.SoftDeleteComment(ctx, c.ID, alice)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = st.CommentByID(ctx, c.ID)
	require.ErrorIs(t, err, storage.ErrNotFound)

	items, err := st.Replies(ctx, c.ID, page(0, 10))
	require.NoError(t, err)
	require.Empty(t, items)
}
