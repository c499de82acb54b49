package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// FollowCreated — созданное ребро и актуальное число подписчиков цели.
type FollowCreated struct {
	Follow         *models.Follow
	FollowersCount int64
}

// FollowUser подписывает followerID на followedID.
//
// Проверки по порядку:
//  1. followerID != followedID -> иначе ErrSelfFollow;
//  2. цель и подписчик — активные пользователи -> иначе ErrUserNotFound;
//  3. ребра ещё нет -> иначе ErrAlreadyFollowing (источник истины — уникальность в схеме).
func (s *Service) FollowUser(ctx context.Context, followerID, followedID int64) (*FollowCreated, error) {
	const op = "service/follows/FollowUser"
	lg := s.logger(ctx, op, "follower_id", followerID, "followed_id", followedID)

	if followerID <= 0 || followedID <= 0 {
		lg.Warn("invalid argument: ids")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if followerID == followedID {
		lg.Warn("self follow")

		return nil, fmt.Errorf("%s: %w", op, ErrSelfFollow)
	}

	if _, err := s.storage.UserByID(ctx, followedID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("target user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		lg.Error("storage error on UserByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if _, err := s.storage.UserByID(ctx, followerID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("follower not found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		lg.Error("storage error on UserByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	follow, err := s.storage.AddFollow(ctx, followerID, followedID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("already following")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyFollowing)
		case errors.Is(err, storage.ErrConstraint):
			lg.Warn("self follow rejected by schema")

			return nil, fmt.Errorf("%s: %w", op, ErrSelfFollow)
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		default:
			lg.Error("storage error on AddFollow", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	s.invalidateCounts(ctx, lg, followerID, followedID)

	counts, err := s.storage.CountFollows(ctx, followedID)
	if err != nil {
		lg.Error("storage error on CountFollows", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &FollowCreated{Follow: follow, FollowersCount: counts.Followers}, nil
}

// UnfollowUser удаляет подписку и возвращает актуальное число подписчиков цели.
// Ошибки: ErrSelfFollow, ErrNotFollowing, ErrInternal.
func (s *Service) UnfollowUser(ctx context.Context, followerID, followedID int64) (int64, error) {
	const op = "service/follows/UnfollowUser"
	lg := s.logger(ctx, op, "follower_id", followerID, "followed_id", followedID)

	if followerID <= 0 || followedID <= 0 {
		lg.Warn("invalid argument: ids")

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if followerID == followedID {
		lg.Warn("self unfollow")

		return 0, fmt.Errorf("%s: %w", op, ErrSelfFollow)
	}

	ok, err := s.storage.RemoveFollow(ctx, followerID, followedID)
	if err != nil {
		lg.Error("storage error on RemoveFollow", "err", err)

		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !ok {
		lg.Warn("not following")

		return 0, fmt.Errorf("%s: %w", op, ErrNotFollowing)
	}

	s.invalidateCounts(ctx, lg, followerID, followedID)

	counts, err := s.storage.CountFollows(ctx, followedID)
	if err != nil {
		lg.Error("storage error on CountFollows", "err", err)

		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return counts.Followers, nil
}

// ListFollowing возвращает тех, на кого подписан userID, новые рёбра первыми.
func (s *Service) ListFollowing(ctx context.Context, userID int64, p models.PageParams) (*models.Page[models.FollowEdge], error) {
	return s.listEdges(ctx, "service/follows/ListFollowing", userID, p, s.storage.Following,
		func(c *models.FollowCounts) int64 { return c.Following })
}

// ListFollowers возвращает подписчиков userID, новые рёбра первыми.
func (s *Service) ListFollowers(ctx context.Context, userID int64, p models.PageParams) (*models.Page[models.FollowEdge], error) {
	return s.listEdges(ctx, "service/follows/ListFollowers", userID, p, s.storage.Followers,
		func(c *models.FollowCounts) int64 { return c.Followers })
}

func (s *Service) listEdges(
	ctx context.Context,
	op string,
	userID int64,
	p models.PageParams,
	list func(ctx context.Context, userID int64, p models.PageParams) ([]models.FollowEdge, error),
	pick func(c *models.FollowCounts) int64,
) (*models.Page[models.FollowEdge], error) {
	lg := s.logger(ctx, op, "user_id", userID)

	if userID <= 0 {
		lg.Warn("invalid argument: user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p = s.page(p)

	page, err := collectPage(ctx, p,
		func(ctx context.Context) ([]models.FollowEdge, error) { return list(ctx, userID, p) },
		func(ctx context.Context) (int64, error) {
			counts, err := s.storage.CountFollows(ctx, userID)
			if err != nil {
				return 0, err
			}
			return pick(counts), nil
		},
	)
	if err != nil {
		lg.Error("storage error on list follows", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// FollowCounts возвращает счётчики подписок и подписчиков.
func (s *Service) FollowCounts(ctx context.Context, userID int64) (*models.FollowCounts, error) {
	const op = "service/follows/FollowCounts"
	lg := s.logger(ctx, op, "user_id", userID)

	if userID <= 0 {
		lg.Warn("invalid argument: user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	counts, err := s.storage.CountFollows(ctx, userID)
	if err != nil {
		lg.Error("storage error on CountFollows", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return counts, nil
}

// IsFollowing сообщает, подписан ли followerID на followedID.
func (s *Service) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	const op = "service/follows/IsFollowing"
	lg := s.logger(ctx, op, "follower_id", followerID, "followed_id", followedID)

	if followerID <= 0 || followedID <= 0 {
		lg.Warn("invalid argument: ids")

		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ok, err := s.storage.IsFollowing(ctx, followerID, followedID)
	if err != nil {
		lg.Error("storage error on IsFollowing", "err", err)

		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return ok, nil
}
