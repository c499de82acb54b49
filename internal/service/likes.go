package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// LikeCreated — созданный лайк и актуальное число лайков поста.
type LikeCreated struct {
	Like      *models.Like
	LikeCount int64
}

// LikePost ставит лайк.
//
// Поведение:
//   - пост должен быть активен -> иначе ErrPostNotFound;
//   - уникальность пары (user, post) обеспечивает схема: повтор -> ErrAlreadyLiked.
func (s *Service) LikePost(ctx context.Context, userID, postID int64) (*LikeCreated, error) {
	const op = "service/likes/LikePost"
	lg := s.logger(ctx, op, "user_id", userID, "post_id", postID)

	if userID <= 0 || postID <= 0 {
		lg.Warn("invalid argument: ids")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.PostByID(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post not found")

			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}

		lg.Error("storage error on PostByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	like, err := s.storage.AddLike(ctx, userID, postID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("post already liked")

			return nil, fmt.Errorf("%s: %w", op, ErrAlreadyLiked)
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user or post not found")

			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		default:
			lg.Error("storage error on AddLike", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	n, err := s.storage.CountLikes(ctx, postID)
	if err != nil {
		lg.Error("storage error on CountLikes", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &LikeCreated{Like: like, LikeCount: n}, nil
}

// UnlikePost снимает лайк и возвращает актуальное число лайков.
// Ошибки: ErrNotLiked, если лайка не было; ErrInternal.
func (s *Service) UnlikePost(ctx context.Context, userID, postID int64) (int64, error) {
	const op = "service/likes/UnlikePost"
	lg := s.logger(ctx, op, "user_id", userID, "post_id", postID)

	if userID <= 0 || postID <= 0 {
		lg.Warn("invalid argument: ids")

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ok, err := s.storage.RemoveLike(ctx, userID, postID)
	if err != nil {
		lg.Error("storage error on RemoveLike", "err", err)

		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !ok {
		lg.Warn("post not liked")

		return 0, fmt.Errorf("%s: %w", op, ErrNotLiked)
	}

	n, err := s.storage.CountLikes(ctx, postID)
	if err != nil {
		lg.Error("storage error on CountLikes", "err", err)

		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return n, nil
}

// HasLiked сообщает, лайкнул ли пользователь пост.
func (s *Service) HasLiked(ctx context.Context, userID, postID int64) (bool, error) {
	const op = "service/likes/HasLiked"
	lg := s.logger(ctx, op, "user_id", userID, "post_id", postID)

	if userID <= 0 || postID <= 0 {
		lg.Warn("invalid argument: ids")

		return false, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ok, err := s.storage.HasLiked(ctx, userID, postID)
	if err != nil {
		lg.Error("storage error on HasLiked", "err", err)

		return false, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return ok, nil
}

// LikeCount возвращает число лайков поста.
func (s *Service) LikeCount(ctx context.Context, postID int64) (int64, error) {
	const op = "service/likes/LikeCount"
	lg := s.logger(ctx, op, "post_id", postID)

	if postID <= 0 {
		lg.Warn("invalid argument: post_id")

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	n, err := s.storage.CountLikes(ctx, postID)
	if err != nil {
		lg.Error("storage error on CountLikes", "err", err)

		return 0, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return n, nil
}

// ListPostLikers возвращает лайкнувших пост, новые первыми.
// Пост должен быть активен -> иначе ErrPostNotFound.
func (s *Service) ListPostLikers(ctx context.Context, postID int64, p models.PageParams) (*models.Page[models.Like], error) {
	const op = "service/likes/ListPostLikers"
	lg := s.logger(ctx, op, "post_id", postID)

	if postID <= 0 {
		lg.Warn("invalid argument: post_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.PostByID(ctx, postID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post not found")

			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}

		lg.Error("storage error on PostByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	p = s.page(p)

	page, err := collectPage(ctx, p,
		func(ctx context.Context) ([]models.Like, error) { return s.storage.PostLikers(ctx, postID, p) },
		func(ctx context.Context) (int64, error) { return s.storage.CountLikes(ctx, postID) },
	)
	if err != nil {
		lg.Error("storage error on ListPostLikers", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// ListUserLikedPosts возвращает активные посты, лайкнутые пользователем, новые лайки первыми.
func (s *Service) ListUserLikedPosts(ctx context.Context, userID int64, p models.PageParams) (*models.Page[models.LikedPost], error) {
	const op = "service/likes/ListUserLikedPosts"
	lg := s.logger(ctx, op, "user_id", userID)

	if userID <= 0 {
		lg.Warn("invalid argument: user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p = s.page(p)

	page, err := collectPage(ctx, p,
		func(ctx context.Context) ([]models.LikedPost, error) { return s.storage.UserLikedPosts(ctx, userID, p) },
		func(ctx context.Context) (int64, error) { return s.storage.CountUserLikedPosts(ctx, userID) },
	)
	if err != nil {
		lg.Error("storage error on ListUserLikedPosts", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}
