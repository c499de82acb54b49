package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
)

// userColumns — единый список колонок users для SELECT/RETURNING.
const userColumns = `
id, username, email, display_name, bio, avatar_url, created_at, updated_at
`

// UserByID возвращает активного пользователя.
// Ошибки: storage.ErrNotFound.
func (s *Storage) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage/postgres/users/UserByID"

	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND is_deleted = FALSE`

	result, err := queryOne[models.User](ctx, s.db, q, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// UpdateUser выполняет частичный апдейт: обновляет только поля,
// указанные непустыми pointer-полями, и всегда сдвигает updated_at = now().
// Ошибки: storage.ErrNotFound при отсутствии активной записи;
// storage.ErrAlreadyExists, если email занят.
func (s *Storage) UpdateUser(ctx context.Context, id int64, update storage.UserUpdate) (*models.User, error) {
	const op = "storage/postgres/users/UpdateUser"

	sets := []string{"updated_at = now()"}
	args := []any{id}

	if update.DisplayName != nil {
		args = append(args, *update.DisplayName)
		sets = append(sets, fmt.Sprintf("display_name = $%d", len(args)))
	}

	if update.Email != nil {
		args = append(args, *update.Email)
		sets = append(sets, fmt.Sprintf("email = $%d", len(args)))
	}

	if update.Bio != nil {
		args = append(args, *update.Bio)
		sets = append(sets, fmt.Sprintf("bio = $%d", len(args)))
	}

	if update.AvatarURL != nil {
		args = append(args, *update.AvatarURL)
		sets = append(sets, fmt.Sprintf("avatar_url = $%d", len(args)))
	}

	q := `UPDATE users SET ` + strings.Join(sets, ", ") + `
	WHERE id = $1 AND is_deleted = FALSE
	RETURNING ` + userColumns

	result, err := queryOne[models.User](ctx, s.db, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapError(err))
	}

	return result, nil
}

// ProfileCounts одним запросом считает подписки, подписчиков и активные посты.
func (s *Storage) ProfileCounts(ctx context.Context, userID int64) (*models.ProfileCounts, error) {
	const op = "storage/postgres/users/ProfileCounts"

	q := `
	SELECT
		(SELECT count(*) FROM follows WHERE follower_id = $1) AS following_count,
		(SELECT count(*) FROM follows WHERE followed_id = $1) AS followers_count,
		(SELECT count(*) FROM posts WHERE user_id = $1 AND is_deleted = FALSE) AS posts_count`

	result, err := queryOne[models.ProfileCounts](ctx, s.db, q, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}
