package storage

import (
	"context"

	"github.com/pribylovaa/go-social-feed/internal/models"
)

// PostUpdate — частичный апдейт поста.
// Обновляются только непустые указатели.
type PostUpdate struct {
	Content         *string
	MediaURL        *string
	CommentsEnabled *bool
}

// IsEmpty сообщает, что обновлять нечего.
func (u PostUpdate) IsEmpty() bool {
	return u.Content == nil && u.MediaURL == nil && u.CommentsEnabled == nil
}

// Posts — контракт репозитория постов. Мягко удалённые посты невидимы для всех методов.
type Posts interface {
	// CreatePost вставляет пост (UserID, Content, MediaURL, CommentsEnabled) и возвращает
	// сохранённую запись с данными автора.
	CreatePost(ctx context.Context, post *models.Post) (*models.Post, error)
	// PostByID возвращает активный пост. Ошибки: ErrNotFound.
	PostByID(ctx context.Context, id int64) (*models.Post, error)
	// PostsByUser возвращает посты пользователя, новые первыми.
	PostsByUser(ctx context.Context, userID int64, page models.PageParams) ([]models.Post, error)
	// CountPostsByUser возвращает число активных постов пользователя.
	CountPostsByUser(ctx context.Context, userID int64) (int64, error)
	// FeedPosts возвращает посты пользователей, на которых подписан userID, новые первыми.
	FeedPosts(ctx context.Context, userID int64, page models.PageParams) ([]models.Post, error)
	// CountFeedPosts возвращает размер ленты userID.
	CountFeedPosts(ctx context.Context, userID int64) (int64, error)
	// UpdatePost обновляет пост владельца. Ошибки: ErrNotFound, если нет активного поста ownerID.
	UpdatePost(ctx context.Context, id, ownerID int64, update PostUpdate) (*models.Post, error)
	// SoftDeletePost помечает пост удалённым; false — нет активного поста ownerID.
	SoftDeletePost(ctx context.Context, id, ownerID int64) (bool, error)
}
