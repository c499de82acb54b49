// models содержит доменные сущности social-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
// Теги db задают имена колонок для построчного маппинга в pgx.
package models

import "time"

// User — пользователь. Создаётся вне сервиса, здесь только читается и частично обновляется.
// Мягко удалённые пользователи в выборки не попадают.
type User struct {
	ID          int64     `db:"id"`
	Username    string    `db:"username"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	Bio         string    `db:"bio"`
	AvatarURL   string    `db:"avatar_url"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// ProfileCounts — агрегаты профиля.
type ProfileCounts struct {
	Following int64 `db:"following_count"`
	Followers int64 `db:"followers_count"`
	Posts     int64 `db:"posts_count"`
}

// Profile — собранное представление пользователя.
// IsFollowing заполняется только если известен запрашивающий пользователь, иначе nil.
type Profile struct {
	User        User
	Counts      ProfileCounts
	IsFollowing *bool
}
