package models

import "time"

// Like — ребро (user_id, post_id). Для пары существует не более одной записи.
type Like struct {
	UserID      int64     `db:"user_id"`
	PostID      int64     `db:"post_id"`
	CreatedAt   time.Time `db:"created_at"`
	Username    string    `db:"username"`
	DisplayName string    `db:"display_name"`
}

// LikedPost — пост в списке лайков пользователя.
type LikedPost struct {
	UserID            int64     `db:"user_id"`
	PostID            int64     `db:"post_id"`
	LikedAt           time.Time `db:"created_at"`
	Content           string    `db:"content"`
	MediaURL          *string   `db:"media_url"`
	PostCreatedAt     time.Time `db:"post_created_at"`
	AuthorUsername    string    `db:"username"`
	AuthorDisplayName string    `db:"display_name"`
}
