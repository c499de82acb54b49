package postgres

import (
	"context"
	"testing"

	"github.com/pribylovaa/go-social-feed/internal/storage"
	"github.com/stretchr/testify/require"
)

func TestIntegration_AddFollow_Rules(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")

	f, err := st.AddFollow(ctx, alice, bob)
	require.NoError(t, err)
	require.Equal(t, alice, f.FollowerID)
	require.Equal(t, bob, f.FollowedID)

	_, err = st.AddFollow(ctx, alice, bob)
	require.ErrorIs(t, err, storage.ErrAlreadyExists)

	_, err = st.AddFollow(ctx, alice, alice)
	require.ErrorIs(t, err, storage.ErrConstraint)

	_, err = st.AddFollow(ctx, alice, 404)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestIntegration_FollowListsAndCounts(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	carol := createUser(t, st, "carol")

	for _, pair := range [][2]int64{{alice, bob}, {alice, carol}, {bob, alice}, {carol, alice}} {
		_, err := st.AddFollow(ctx, pair[0], pair[1])
		require.NoError(t, err)
	}

	following, err := st.Following(ctx, alice, page(0, 10))
	require.NoError(t, err)
	require.Len(t, following, 2)
	require.Equal(t, carol, following[0].UserID, "новые рёбра первыми")

	followers, err := st.Followers(ctx, alice, page(0, 1))
	require.NoError(t, err)
	require.Len(t, followers, 1)

	counts, err := st.CountFollows(ctx, alice)
	require.NoError(t, err)
	require.EqualValues(t, 2, counts.Following)
	require.EqualValues(t, 2, counts.Followers)

	ok, err := st.IsFollowing(ctx, alice, bob)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.RemoveFollow(ctx, alice, bob)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = st.RemoveFollow(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = st.IsFollowing(ctx, alice, bob)
	require.NoError(t, err)
	require.False(t, ok)
}
