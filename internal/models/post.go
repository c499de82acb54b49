package models

import "time"

// Post — публикация пользователя.
//   - MediaURL — необязательная ссылка на медиа (ключ объекта или URL);
//   - AuthorUsername/AuthorDisplayName — подтягиваются join-ом по users.
type Post struct {
	ID                int64     `db:"id"`
	UserID            int64     `db:"user_id"`
	Content           string    `db:"content"`
	MediaURL          *string   `db:"media_url"`
	CommentsEnabled   bool      `db:"comments_enabled"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	AuthorUsername    string    `db:"username"`
	AuthorDisplayName string    `db:"display_name"`
}
