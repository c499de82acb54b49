package storage

import (
	"context"

	"github.com/pribylovaa/go-social-feed/internal/models"
)

// UserUpdate — частичный апдейт пользователя.
type UserUpdate struct {
	DisplayName *string
	Email       *string
	Bio         *string
	AvatarURL   *string
}

// IsEmpty сообщает, что обновлять нечего.
func (u UserUpdate) IsEmpty() bool {
	return u.DisplayName == nil && u.Email == nil && u.Bio == nil && u.AvatarURL == nil
}

// Users — контракт репозитория пользователей. Мягко удалённые пользователи невидимы.
type Users interface {
	// UserByID возвращает активного пользователя. Ошибки: ErrNotFound.
	UserByID(ctx context.Context, id int64) (*models.User, error)
	// UpdateUser выполняет частичный апдейт. Ошибки: ErrNotFound; ErrAlreadyExists при занятом email.
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*models.User, error)
	// ProfileCounts одним запросом считает подписки, подписчиков и активные посты.
	ProfileCounts(ctx context.Context, userID int64) (*models.ProfileCounts, error)
}
