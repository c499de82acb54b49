package storage

import (
	"context"

	"github.com/pribylovaa/go-social-feed/internal/models"
)

// Likes — контракт репозитория лайков.
type Likes interface {
	// AddLike создаёт ребро. Ошибки: ErrAlreadyExists, если ребро уже есть;
	// ErrNotFound, если пользователь или пост не существуют.
	AddLike(ctx context.Context, userID, postID int64) (*models.Like, error)
	// RemoveLike удаляет ребро; false — ребра не было.
	RemoveLike(ctx context.Context, userID, postID int64) (bool, error)
	// HasLiked сообщает, существует ли ребро.
	HasLiked(ctx context.Context, userID, postID int64) (bool, error)
	// CountLikes возвращает число лайков поста.
	CountLikes(ctx context.Context, postID int64) (int64, error)
	// PostLikers возвращает лайкнувших пост, новые первыми.
	PostLikers(ctx context.Context, postID int64, page models.PageParams) ([]models.Like, error)
	// UserLikedPosts возвращает активные посты, лайкнутые пользователем, новые лайки первыми.
	UserLikedPosts(ctx context.Context, userID int64, page models.PageParams) ([]models.LikedPost, error)
	// CountUserLikedPosts возвращает число активных постов, лайкнутых пользователем.
	CountUserLikedPosts(ctx context.Context, userID int64) (int64, error)
}
