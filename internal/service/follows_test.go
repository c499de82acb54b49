package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
	"github.com/pribylovaa/go-social-feed/mocks"
	"github.com/stretchr/testify/require"
)

// Подписка на себя -> ErrSelfFollow (Forbidden) без обращения к хранилищу.
func TestService_FollowUser_Self(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.FollowUser(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrSelfFollow)
	require.ErrorIs(t, err, ErrForbidden)

	_, err = s.UnfollowUser(context.Background(), 1, 1)
	require.ErrorIs(t, err, ErrSelfFollow)
}

func TestService_FollowUser_TargetNotFound(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(nil, storage.ErrNotFound)

	_, err := s.FollowUser(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrUserNotFound)
}

// Удалённый подписчик не создаёт рёбер: AddFollow не вызывается.
func TestService_FollowUser_FollowerDeleted(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2}, nil)
	ms.EXPECT().UserByID(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)

	_, err := s.FollowUser(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrUserNotFound)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_FollowUser_OKThenConflict(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc := mocks.NewMockCountsCache(ctrl)
	s.SetCountsCache(mc)

	ms.EXPECT().UserByID(gomock.Any(), int64(2)).Return(&models.User{ID: 2}, nil).Times(2)
	ms.EXPECT().UserByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil).Times(2)
	gomock.InOrder(
		ms.EXPECT().AddFollow(gomock.Any(), int64(1), int64(2)).Return(&models.Follow{FollowerID: 1, FollowedID: 2}, nil),
		ms.EXPECT().AddFollow(gomock.Any(), int64(1), int64(2)).Return(nil, storage.ErrAlreadyExists),
	)
	mc.EXPECT().Invalidate(gomock.Any(), int64(1), int64(2)).Return(nil)
	ms.EXPECT().CountFollows(gomock.Any(), int64(2)).Return(&models.FollowCounts{Followers: 1}, nil)

	got, err := s.FollowUser(context.Background(), 1, 2)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.FollowersCount)

	_, err = s.FollowUser(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrAlreadyFollowing)
	require.ErrorIs(t, err, ErrConflict)
}

func TestService_UnfollowUser(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	gomock.InOrder(
		ms.EXPECT().RemoveFollow(gomock.Any(), int64(1), int64(2)).Return(true, nil),
		ms.EXPECT().RemoveFollow(gomock.Any(), int64(1), int64(2)).Return(false, nil),
	)
	ms.EXPECT().CountFollows(gomock.Any(), int64(2)).Return(&models.FollowCounts{Followers: 0}, nil)

	n, err := s.UnfollowUser(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Zero(t, n)

	_, err = s.UnfollowUser(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrNotFollowing)
}

func TestService_ListFollowersAndFollowing(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	counts := &models.FollowCounts{Following: 1, Followers: 3}
	ms.EXPECT().CountFollows(gomock.Any(), int64(1)).Return(counts, nil).Times(2)
	ms.EXPECT().Followers(gomock.Any(), int64(1), models.PageParams{Limit: 2}).Return(make([]models.FollowEdge, 2), nil)
	ms.EXPECT().Following(gomock.Any(), int64(1), models.PageParams{Limit: 2}).Return(make([]models.FollowEdge, 1), nil)

	followers, err := s.ListFollowers(context.Background(), 1, models.PageParams{Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 3, followers.Total)
	require.True(t, followers.HasMore)

	following, err := s.ListFollowing(context.Background(), 1, models.PageParams{Limit: 2})
	require.NoError(t, err)
	require.EqualValues(t, 1, following.Total)
	require.False(t, following.HasMore)
}

func TestService_FollowCountsAndIsFollowing(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().CountFollows(gomock.Any(), int64(1)).Return(&models.FollowCounts{Following: 2, Followers: 5}, nil)
	c, err := s.FollowCounts(context.Background(), 1)
	require.NoError(t, err)
	require.EqualValues(t, 5, c.Followers)

	ms.EXPECT().IsFollowing(gomock.Any(), int64(1), int64(2)).Return(false, nil)
	ok, err := s.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	require.False(t, ok)
}
