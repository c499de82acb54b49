package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// postColumns — колонки поста с данными автора; алиасы p (posts) и u (users).
const postColumns = `
p.id, p.user_id, p.content, p.media_url, p.comments_enabled, p.created_at, p.updated_at,
u.username, u.display_name
`

// CreatePost вставляет пост и возвращает его вместе с данными автора.
// Ошибки: storage.ErrNotFound, если автора нет.
func (s *Storage) CreatePost(ctx context.Context, post *models.Post) (*models.Post, error) {
	const op = "storage/postgres/posts/CreatePost"

	q := `
	WITH p AS (
		INSERT INTO posts (user_id, content, media_url, comments_enabled)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	)
	SELECT ` + postColumns + `
	FROM p JOIN users u ON u.id = p.user_id`

	result, err := queryOne[models.Post](ctx, s.db, q, post.UserID, post.Content, post.MediaURL, post.CommentsEnabled)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// PostByID возвращает активный пост.
// Ошибки: storage.ErrNotFound.
func (s *Storage) PostByID(ctx context.Context, id int64) (*models.Post, error) {
	const op = "storage/postgres/posts/PostByID"

	q := `SELECT ` + postColumns + `
	FROM posts p JOIN users u ON u.id = p.user_id
	WHERE p.id = $1 AND p.is_deleted = FALSE`

	result, err := queryOne[models.Post](ctx, s.db, q, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// PostsByUser возвращает активные посты пользователя, новые первыми.
func (s *Storage) PostsByUser(ctx context.Context, userID int64, page models.PageParams) ([]models.Post, error) {
	const op = "storage/postgres/posts/PostsByUser"

	q := `SELECT ` + postColumns + `
	FROM posts p JOIN users u ON u.id = p.user_id
	WHERE p.user_id = $1 AND p.is_deleted = FALSE
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.Post](ctx, s.db, q, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CountPostsByUser возвращает число активных постов пользователя.
func (s *Storage) CountPostsByUser(ctx context.Context, userID int64) (int64, error) {
	const op = "storage/postgres/posts/CountPostsByUser"

	n, err := count(ctx, s.db, `SELECT count(*) FROM posts WHERE user_id = $1 AND is_deleted = FALSE`, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// FeedPosts возвращает активные посты авторов, на которых подписан userID.
func (s *Storage) FeedPosts(ctx context.Context, userID int64, page models.PageParams) ([]models.Post, error) {
	const op = "storage/postgres/posts/FeedPosts"

	q := `SELECT ` + postColumns + `
	FROM posts p
	JOIN follows f ON f.followed_id = p.user_id
	JOIN users u ON u.id = p.user_id
	WHERE f.follower_id = $1 AND p.is_deleted = FALSE
	ORDER BY p.created_at DESC, p.id DESC
	LIMIT $2 OFFSET $3`

	items, err := queryAll[models.Post](ctx, s.db, q, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// CountFeedPosts возвращает размер ленты userID.
func (s *Storage) CountFeedPosts(ctx context.Context, userID int64) (int64, error) {
	const op = "storage/postgres/posts/CountFeedPosts"

	q := `
	SELECT count(*)
	FROM posts p JOIN follows f ON f.followed_id = p.user_id
	WHERE f.follower_id = $1 AND p.is_deleted = FALSE`

	n, err := count(ctx, s.db, q, userID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}

// UpdatePost выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Имена колонок берутся только из фиксированного набора ниже.
// Ошибки: storage.ErrNotFound, если нет активного поста ownerID.
func (s *Storage) UpdatePost(ctx context.Context, id, ownerID int64, update storage.PostUpdate) (*models.Post, error) {
	const op = "storage/postgres/posts/UpdatePost"

	sets := []string{"updated_at = now()"}
	args := []any{id, ownerID}

	if update.Content != nil {
		args = append(args, *update.Content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}

	if update.MediaURL != nil {
		args = append(args, *update.MediaURL)
		sets = append(sets, fmt.Sprintf("media_url = $%d", len(args)))
	}

	if update.CommentsEnabled != nil {
		args = append(args, *update.CommentsEnabled)
		sets = append(sets, fmt.Sprintf("comments_enabled = $%d", len(args)))
	}

	q := `
	WITH p AS (
		UPDATE posts SET ` + strings.Join(sets, ", ") + `
		WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE
		RETURNING *
	)
	SELECT ` + postColumns + `
	FROM p JOIN users u ON u.id = p.user_id`

	result, err := queryOne[models.Post](ctx, s.db, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// SoftDeletePost помечает пост удалённым.
// false — нет активного поста с таким id у ownerID.
func (s *Storage) SoftDeletePost(ctx context.Context, id, ownerID int64) (bool, error) {
	const op = "storage/postgres/posts/SoftDeletePost"

	tag, err := s.db.Exec(ctx, `
	UPDATE posts SET is_deleted = TRUE, updated_at = now()
	WHERE id = $1 AND user_id = $2 AND is_deleted = FALSE`, id, ownerID)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return tag.RowsAffected() > 0, nil
}
