package models

import "time"

// Follow — направленное ребро подписки follower -> followed.
// Петли (follower == followed) запрещены.
type Follow struct {
	FollowerID int64     `db:"follower_id"`
	FollowedID int64     `db:"followed_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// FollowEdge — пользователь на другом конце ребра (для списков подписок/подписчиков).
type FollowEdge struct {
	UserID        int64     `db:"id"`
	Username      string    `db:"username"`
	DisplayName   string    `db:"display_name"`
	FollowedSince time.Time `db:"followed_since"`
}

// FollowCounts — счётчики подписок пользователя.
type FollowCounts struct {
	Following int64 `db:"following_count"`
	Followers int64 `db:"followers_count"`
}
