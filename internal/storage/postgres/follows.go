package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// AddFollow создаёт ребро follower -> followed.
// Ошибки: storage.ErrAlreadyExists, если ребро есть; storage.ErrConstraint при петле
// (CHECK follows_no_self_loop); storage.ErrNotFound, если пользователя нет.
func (s *Storage) AddFollow(ctx context.Context, followerID, followedID int64) (*models.Follow, error) {
	const op = "storage/postgres/follows/AddFollow"

	q := `
	INSERT INTO follows (follower_id, followed_id)
	VALUES ($1, $2)
	ON CONFLICT (follower_id, followed_id) DO NOTHING
	RETURNING follower_id, followed_id, created_at`

	result, err := queryOne[models.Follow](ctx, s.db, q, followerID, followedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// RemoveFollow удаляет ребро; false — ребра не было.
func (s *Storage) RemoveFollow(ctx context.Context, followerID, followedID int64) (bool, error) {
	const op = "storage/postgres/follows/RemoveFollow"

	tag, err := s.db.Exec(ctx, `DELETE FROM follows WHERE follower_id = $1 AND followed_id = $2`, followerID, followedID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

// IsFollowing сообщает, существует ли ребро.
func (s *Storage) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	const op = "storage/postgres/follows/IsFollowing"

	ok, err := exists(ctx, s.db, `
	SELECT EXISTS (SELECT 1 FROM follows WHERE follower_id = $1 AND followed_id = $2)`, followerID, followedID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// Following возвращает тех, на кого подписан userID, новые рёбра первыми.
func (s *Storage) Following(ctx context.Context, userID int64, page models.PageParams) ([]models.FollowEdge, error) {
	const op = "storage/postgres/follows/Following"

	q := `
	SELECT u.id, u.username, u.display_name, f.created_at AS followed_since
	FROM follows f JOIN users u ON u.id = f.followed_id
	WHERE f.follower_id = $1
	ORDER BY f.created_at DESC, u.id DESC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.FollowEdge](ctx, s.db, q, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// Followers возвращает подписчиков userID, новые рёбра первыми.
func (s *Storage) Followers(ctx context.Context, userID int64, page models.PageParams) ([]models.FollowEdge, error) {
	const op = "storage/postgres/follows/Followers"

	q := `
	SELECT u.id, u.username, u.display_name, f.created_at AS followed_since
	FROM follows f JOIN users u ON u.id = f.follower_id
	WHERE f.followed_id = $1
	ORDER BY f.created_at DESC, u.id DESC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.FollowEdge](ctx, s.db, q, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CountFollows возвращает счётчики подписок и подписчиков одним запросом.
func (s *Storage) CountFollows(ctx context.Context, userID int64) (*models.FollowCounts, error) {
	const op = "storage/postgres/follows/CountFollows"

	q := `
	SELECT
		(SELECT count(*) FROM follows WHERE follower_id = $1) AS following_count,
		(SELECT count(*) FROM follows WHERE followed_id = $1) AS followers_count`

	result, err := queryOne[models.FollowCounts](ctx, s.db, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
