package models

import "time"

// Comment — комментарий к посту.
//   - ParentID == nil — корневой комментарий, иначе ответ на корневой;
//   - ReplyCount — число активных прямых ответов (заполняется только в выдаче корней).
type Comment struct {
	ID                int64     `db:"id"`
	PostID            int64     `db:"post_id"`
	UserID            int64     `db:"user_id"`
	Content           string    `db:"content"`
	ParentID          *int64    `db:"parent_comment_id"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
	AuthorUsername    string    `db:"username"`
	AuthorDisplayName string    `db:"display_name"`
	ReplyCount        int64     `db:"reply_count"`
}

// IsTopLevel сообщает, является ли комментарий корнем ветки.
func (c *Comment) IsTopLevel() bool {
	return c.ParentID == nil
}
