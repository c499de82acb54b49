package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/badoux/checkmail"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
	"golang.org/x/sync/errgroup"
)

// ProfileUpdate — частичный апдейт профиля. Обновляются только непустые указатели.
type ProfileUpdate struct {
	DisplayName *string
	Email       *string
	Bio         *string
	AvatarURL   *string
}

// Profile собирает профиль пользователя.
//
// Поведение:
//   - базовая запись, счётчики и (если requesterID != nil) признак подписки
//     читаются параллельно;
//   - IsFollowing == nil, если запрашивающий неизвестен;
//   - счётчики читаются через кеш (read-through), ошибки кеша только логируются.
//
// Ошибки: ErrUserNotFound для отсутствующего или удалённого пользователя; ErrInternal.
func (s *Service) Profile(ctx context.Context, userID int64, requesterID *int64) (*models.Profile, error) {
	const op = "service/profiles/Profile"
	lg := s.logger(ctx, op, "user_id", userID)

	if userID <= 0 || (requesterID != nil && *requesterID <= 0) {
		lg.Warn("invalid argument: ids")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	var (
		user      *models.User
		counts    *models.ProfileCounts
		following *bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		user, err = s.storage.UserByID(gctx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		counts, err = s.profileCounts(gctx, lg, userID)
		return err
	})

	if requesterID != nil {
		g.Go(func() error {
			ok, err := s.storage.IsFollowing(gctx, *requesterID, userID)
			if err != nil {
				return err
			}
			following = &ok
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		lg.Error("storage error on Profile", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return &models.Profile{User: *user, Counts: *counts, IsFollowing: following}, nil
}

// profileCounts читает счётчики из кеша, при промахе — из хранилища с записью в кеш.
func (s *Service) profileCounts(ctx context.Context, lg *slog.Logger, userID int64) (*models.ProfileCounts, error) {
	if s.counts != nil {
		cached, ok, err := s.counts.Get(ctx, userID)
		if err != nil {
			lg.Warn("counts cache get failed", "err", err)
		}

		if ok {
			return cached, nil
		}
	}

	counts, err := s.storage.ProfileCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.counts != nil {
		if err := s.counts.Set(ctx, userID, counts); err != nil {
			lg.Warn("counts cache set failed", "err", err)
		}
	}

	return counts, nil
}

// UpdateProfile выполняет частичное обновление профиля.
//
// Валидация:
//   - все поля пусты -> ErrNoValidFields;
//   - Email проверяется по формату (checkmail) -> иначе ErrInvalidEmail.
//
// Ошибки: ErrUserNotFound; ErrEmailTaken, если email занят; ErrInternal.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, update ProfileUpdate) (*models.User, error) {
	const op = "service/profiles/UpdateProfile"
	lg := s.logger(ctx, op, "user_id", userID)

	upd := storage.UserUpdate{
		DisplayName: trimPtr(update.DisplayName),
		Email:       trimPtr(update.Email),
		Bio:         trimPtr(update.Bio),
		AvatarURL:   trimPtr(update.AvatarURL),
	}

	if upd.IsEmpty() {
		lg.Warn("invalid argument: no fields to update")

		return nil, fmt.Errorf("%s: %w", op, ErrNoValidFields)
	}

	if userID <= 0 {
		lg.Warn("invalid argument: user_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if upd.Email != nil {
		*upd.Email = strings.ToLower(*upd.Email)

		if err := checkmail.ValidateFormat(*upd.Email); err != nil {
			lg.Warn("invalid email format")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidEmail)
		}
	}

	user, err := s.storage.UpdateUser(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("email already taken")

			return nil, fmt.Errorf("%s: %w", op, ErrEmailTaken)
		default:
			lg.Error("storage error on UpdateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return user, nil
}

func trimPtr(v *string) *string {
	if v == nil {
		return nil
	}

	t := strings.TrimSpace(*v)

	return &t
}
