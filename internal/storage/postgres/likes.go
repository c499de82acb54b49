package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// AddLike создаёт ребро (user_id, post_id).
// Уникальность обеспечивает первичный ключ: ON CONFLICT DO NOTHING без строки в ответе
// означает, что лайк уже есть.
// Ошибки: storage.ErrAlreadyExists; storage.ErrNotFound, если пользователя или поста нет.
func (s *Storage) AddLike(ctx context.Context, userID, postID int64) (*models.Like, error) {
	const op = "storage/postgres/likes/AddLike"

	q := `
	WITH l AS (
		INSERT INTO likes (user_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, post_id) DO NOTHING
		RETURNING user_id, post_id, created_at
	)
	SELECT l.user_id, l.post_id, l.created_at, u.username, u.display_name
	FROM l JOIN users u ON u.id = l.user_id`

	result, err := queryOne[models.Like](ctx, s.db, q, userID, postID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// RemoveLike удаляет ребро; false — ребра не было.
func (s *Storage) RemoveLike(ctx context.Context, userID, postID int64) (bool, error) {
	const op = "storage/postgres/likes/RemoveLike"

	tag, err := s.db.Exec(ctx, `DELETE FROM likes WHERE user_id = $1 AND post_id = $2`, userID, postID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}

// HasLiked сообщает, существует ли ребро.
func (s *Storage) HasLiked(ctx context.Context, userID, postID int64) (bool, error) {
	const op = "storage/postgres/likes/HasLiked"

	ok, err := exists(ctx, s.db, `SELECT EXISTS (SELECT 1 FROM likes WHERE user_id = $1 AND post_id = $2)`, userID, postID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return ok, nil
}

// CountLikes возвращает число лайков поста.
func (s *Storage) CountLikes(ctx context.Context, postID int64) (int64, error) {
	const op = "storage/postgres/likes/CountLikes"

	n, err := count(ctx, s.db, `SELECT count(*) FROM likes WHERE post_id = $1`, postID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// PostLikers возвращает лайкнувших пост, новые первыми.
func (s *Storage) PostLikers(ctx context.Context, postID int64, page models.PageParams) ([]models.Like, error) {
	const op = "storage/postgres/likes/PostLikers"

	q := `
	SELECT l.user_id, l.post_id, l.created_at, u.username, u.display_name
	FROM likes l JOIN users u ON u.id = l.user_id
	WHERE l.post_id = $1
	ORDER BY l.created_at DESC, l.user_id DESC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.Like](ctx, s.db, q, postID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// UserLikedPosts возвращает активные посты, лайкнутые пользователем, новые лайки первыми.
// username/display_name — автор поста.
func (s *Storage) UserLikedPosts(ctx context.Context, userID int64, page models.PageParams) ([]models.LikedPost, error) {
	const op = "storage/postgres/likes/UserLikedPosts"

	q := `
	SELECT l.user_id, l.post_id, l.created_at,
	       p.content, p.media_url, p.created_at AS post_created_at,
	       u.username, u.display_name
	FROM likes l
	JOIN posts p ON p.id = l.post_id
	JOIN users u ON u.id = p.user_id
	WHERE l.user_id = $1 AND p.is_deleted = FALSE
	ORDER BY l.created_at DESC, l.post_id DESC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.LikedPost](ctx, s.db, q, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CountUserLikedPosts возвращает число активных постов, лайкнутых пользователем.
func (s *Storage) CountUserLikedPosts(ctx context.Context, userID int64) (int64, error) {
	const op = "storage/postgres/likes/CountUserLikedPosts"

	q := `
	SELECT count(*)
	FROM likes l JOIN posts p ON p.id = l.post_id
	WHERE l.user_id = $1 AND p.is_deleted = FALSE`

	n, err := count(ctx, s.db, q, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
