package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// CreatePostInput — входные данные создания поста.
// CommentsEnabled == nil означает true.
type CreatePostInput struct {
	OwnerID         int64
	Content         string
	MediaRef        *string
	CommentsEnabled *bool
}

// CreatePost создаёт пост.
//
// Валидация:
//   - OwnerID > 0, иначе ErrInvalidArgument;
//   - Content после TrimSpace не пуст, иначе ErrEmptyContent.
//
// Ошибки:
//   - ErrUserNotFound, если владельца нет;
//   - иные ошибки хранилища -> ErrInternal.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*models.Post, error) {
	const op = "service/posts/CreatePost"
	lg := s.logger(ctx, op, "user_id", input.OwnerID)

	if input.OwnerID <= 0 {
		lg.Warn("invalid argument: owner_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	content := strings.TrimSpace(input.Content)
	if content == "" {
		lg.Warn("invalid argument: empty content")

		return nil, fmt.Errorf("%s: %w", op, ErrEmptyContent)
	}

	post := &models.Post{
		UserID:          input.OwnerID,
		Content:         content,
		MediaURL:        input.MediaRef,
		CommentsEnabled: true,
	}
	if input.CommentsEnabled != nil {
		post.CommentsEnabled = *input.CommentsEnabled
	}

	result, err := s.storage.CreatePost(ctx, post)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("owner not found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		lg.Error("storage error on CreatePost", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.invalidateCounts(ctx, lg, input.OwnerID)

	return result, nil
}

// PostByID возвращает активный пост.
// Ошибки: ErrInvalidArgument, ErrPostNotFound, ErrInternal.
func (s *Service) PostByID(ctx context.Context, id int64) (*models.Post, error) {
	const op = "service/posts/PostByID"
	lg := s.logger(ctx, op, "post_id", id)

	if id <= 0 {
		lg.Warn("invalid argument: post_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	post, err := s.storage.PostByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post not found")

			return nil, fmt.Errorf("%s: %w", op, ErrPostNotFound)
		}

		lg.Error("storage error on PostByID", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return post, nil
}

// ListPostsByUser возвращает активные посты пользователя, новые первыми.
// Страница и общее количество читаются параллельно; HasMore = offset+limit < total.
func (s *Service) ListPostsByUser(ctx context.Context, userID int64, p models.PageParams) (*models.Page[models.Post], error) {
	const op = "service/posts/ListPostsByUser"
	lg := s.logger(ctx, op, "user_id", userID)

	if userID <= 0 {
		lg.Warn("invalid argument: user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p = s.page(p)

	page, err := collectPage(ctx, p,
		func(ctx context.Context) ([]models.Post, error) { return s.storage.PostsByUser(ctx, userID, p) },
		func(ctx context.Context) (int64, error) { return s.storage.CountPostsByUser(ctx, userID) },
	)
	if err != nil {
		lg.Error("storage error on ListPostsByUser", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// ListFeed возвращает активные посты авторов, на которых подписан userID, новые первыми.
// Ранжирования нет.
func (s *Service) ListFeed(ctx context.Context, userID int64, p models.PageParams) (*models.Page[models.Post], error) {
	const op = "service/posts/ListFeed"
	lg := s.logger(ctx, op, "user_id", userID)

	if userID <= 0 {
		lg.Warn("invalid argument: user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	p = s.page(p)

	page, err := collectPage(ctx, p,
		func(ctx context.Context) ([]models.Post, error) { return s.storage.FeedPosts(ctx, userID, p) },
		func(ctx context.Context) (int64, error) { return s.storage.CountFeedPosts(ctx, userID) },
	)
	if err != nil {
		lg.Error("storage error on ListFeed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// UpdatePost выполняет частичное обновление поста владельцем.
//
// Валидация:
//   - все поля update пусты -> ErrNoValidFields;
//   - Content, если задан, после TrimSpace не пуст -> иначе ErrEmptyContent.
//
// Ошибки:
//   - ErrNotFoundOrUnauthorized, если поста нет, он удалён или принадлежит другому;
//   - иные ошибки хранилища -> ErrInternal.
func (s *Service) UpdatePost(ctx context.Context, id, requesterID int64, update storage.PostUpdate) (*models.Post, error) {
	const op = "service/posts/UpdatePost"
	lg := s.logger(ctx, op, "post_id", id, "user_id", requesterID)

	if update.IsEmpty() {
		lg.Warn("invalid argument: no fields to update")

		return nil, fmt.Errorf("%s: %w", op, ErrNoValidFields)
	}

	if id <= 0 || requesterID <= 0 {
		lg.Warn("invalid argument: ids")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if update.Content != nil {
		content := strings.TrimSpace(*update.Content)
		if content == "" {
			lg.Warn("invalid argument: empty content")

			return nil, fmt.Errorf("%s: %w", op, ErrEmptyContent)
		}
		update.Content = &content
	}

	post, err := s.storage.UpdatePost(ctx, id, requesterID, update)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("post not found or not owned")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFoundOrUnauthorized)
		}

		lg.Error("storage error on UpdatePost", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return post, nil
}

// DeletePost мягко удаляет пост владельца.
// Ошибки: ErrNotFoundOrUnauthorized, если нет активного поста requesterID; ErrInternal.
func (s *Service) DeletePost(ctx context.Context, id, requesterID int64) error {
	const op = "service/posts/DeletePost"
	lg := s.logger(ctx, op, "post_id", id, "user_id", requesterID)

	if id <= 0 || requesterID <= 0 {
		lg.Warn("invalid argument: ids")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	ok, err := s.storage.SoftDeletePost(ctx, id, requesterID)
	if err != nil {
		lg.Error("storage error on SoftDeletePost", "err", err)

		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if !ok {
		lg.Warn("post not found or not owned")

		return fmt.Errorf("%s: %w", op, ErrNotFoundOrUnauthorized)
	}

	s.invalidateCounts(ctx, lg, requesterID)

	return nil
}
