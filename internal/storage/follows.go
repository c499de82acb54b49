package storage

import (
	"context"

	"github.com/pribylovaa/go-social-feed/internal/models"
)

// Follows — контракт репозитория подписок.
type Follows interface {
	// AddFollow создаёт ребро follower -> followed. Ошибки: ErrAlreadyExists, если ребро есть;
	// ErrConstraint при петле; ErrNotFound, если пользователь не существует.
	AddFollow(ctx context.Context, followerID, followedID int64) (*models.Follow, error)
	// RemoveFollow удаляет ребро; false — ребра не было.
	RemoveFollow(ctx context.Context, followerID, followedID int64) (bool, error)
	// IsFollowing сообщает, существует ли ребро.
	IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error)
	// Following возвращает тех, на кого подписан userID, новые рёбра первыми.
	Following(ctx context.Context, userID int64, page models.PageParams) ([]models.FollowEdge, error)
	// Followers возвращает подписчиков userID, новые рёбра первыми.
	Followers(ctx context.Context, userID int64, page models.PageParams) ([]models.FollowEdge, error)
	// CountFollows возвращает счётчики подписок и подписчиков.
	CountFollows(ctx context.Context, userID int64) (*models.FollowCounts, error)
}
