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

// Профиль с 3 подписками, 2 подписчиками и 5 постами; IsFollowing true/false/nil.
func TestService_Profile_CountsAndIsFollowing(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	user := &models.User{ID: 1, Username: "alice"}
	counts := &models.ProfileCounts{Following: 3, Followers: 2, Posts: 5}

	ms.EXPECT().UserByID(gomock.Any(), int64(1)).Return(user, nil).Times(3)
	ms.EXPECT().ProfileCounts(gomock.Any(), int64(1)).Return(counts, nil).Times(3)
	ms.EXPECT().IsFollowing(gomock.Any(), int64(7), int64(1)).Return(true, nil)
	ms.EXPECT().IsFollowing(gomock.Any(), int64(8), int64(1)).Return(false, nil)

	p, err := s.Profile(context.Background(), 1, ptr(int64(7)))
	require.NoError(t, err)
	require.Equal(t, *counts, p.Counts)
	require.Equal(t, "alice", p.User.Username)
	require.NotNil(t, p.IsFollowing)
	require.True(t, *p.IsFollowing)

	p, err = s.Profile(context.Background(), 1, ptr(int64(8)))
	require.NoError(t, err)
	require.NotNil(t, p.IsFollowing)
	require.False(t, *p.IsFollowing)

	p, err = s.Profile(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Nil(t, p.IsFollowing)
}

func TestService_Profile_UserNotFound(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UserByID(gomock.Any(), int64(1)).Return(nil, storage.ErrNotFound)
	ms.EXPECT().ProfileCounts(gomock.Any(), int64(1)).Return(&models.ProfileCounts{}, nil).AnyTimes()

	_, err := s.Profile(context.Background(), 1, nil)
	require.ErrorIs(t, err, ErrUserNotFound)
}

// Попадание в кеш: ProfileCounts не вызывается.
func TestService_Profile_CacheHit(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc := mocks.NewMockCountsCache(ctrl)
	s.SetCountsCache(mc)

	counts := &models.ProfileCounts{Following: 1, Followers: 1, Posts: 1}
	ms.EXPECT().UserByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
	mc.EXPECT().Get(gomock.Any(), int64(1)).Return(counts, true, nil)

	p, err := s.Profile(context.Background(), 1, nil)
	require.NoError(t, err)
	require.Equal(t, *counts, p.Counts)
}

// Промах и сбой кеша: читаем из хранилища, ошибки кеша не всплывают.
func TestService_Profile_CacheMissAndErrors(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc := mocks.NewMockCountsCache(ctrl)
	s.SetCountsCache(mc)

	counts := &models.ProfileCounts{Posts: 2}
	ms.EXPECT().UserByID(gomock.Any(), int64(1)).Return(&models.User{ID: 1}, nil)
	mc.EXPECT().Get(gomock.Any(), int64(1)).Return(nil, false, errDB)
	ms.EXPECT().ProfileCounts(gomock.Any(), int64(1)).Return(counts, nil)
	mc.EXPECT().Set(gomock.Any(), int64(1), counts).Return(errDB)

	p, err := s.Profile(context.Background(), 1, nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, p.Counts.Posts)
}

func TestService_UpdateProfile_NoFields(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.UpdateProfile(context.Background(), 1, ProfileUpdate{})
	require.ErrorIs(t, err, ErrNoValidFields)
}

func TestService_UpdateProfile_InvalidEmail(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.UpdateProfile(context.Background(), 1, ProfileUpdate{Email: ptr("not-an-email")})
	require.ErrorIs(t, err, ErrInvalidEmail)
}

func TestService_UpdateProfile_EmailTakenAndOK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().UpdateUser(gomock.Any(), int64(1), gomock.Any()).Return(nil, storage.ErrAlreadyExists)
	_, err := s.UpdateProfile(context.Background(), 1, ProfileUpdate{Email: ptr("Bob@Example.com")})
	require.ErrorIs(t, err, ErrEmailTaken)

	ms.EXPECT().
		UpdateUser(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, u storage.UserUpdate) (*models.User, error) {
			require.Equal(t, "alice@example.com", *u.Email)
			require.Equal(t, "bio", *u.Bio)
			require.Nil(t, u.DisplayName)
			return &models.User{ID: 1, Email: *u.Email, Bio: *u.Bio}, nil
		})

	got, err := s.UpdateProfile(context.Background(), 1, ProfileUpdate{Email: ptr(" Alice@Example.com "), Bio: ptr(" bio ")})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got.Email)
}
