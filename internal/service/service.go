// service содержит бизнес-логику social-сервиса:
//   - посты (создание, чтение, частичный апдейт, мягкое удаление, лента);
//   - комментарии с одним уровнем ответов;
//   - лайки и подписки (рёбра с уникальностью на уровне схемы);
//   - сборка профиля из базовой записи, счётчиков и признака подписки;
//   - выдача presigned URL для медиа и подтверждение аватара.
//
// Service не хранит состояние запроса и безопасен для конкурентного использования,
// если переданные хранилище, кеш и медиа-хранилище потокобезопасны.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-social-feed/internal/cache"
	"github.com/pribylovaa/go-social-feed/internal/config"
	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/pribylovaa/go-social-feed/internal/storage"
	"github.com/pribylovaa/go-social-feed/pkg/log"
	"golang.org/x/sync/errgroup"
)

// Категории ошибок. Конкретные ошибки ниже оборачивают одну из них,
// поэтому errors.Is работает и по категории, и по конкретной ошибке.
var (
	// ErrInvalidArgument — некорректные входные данные. Транспорт: 400.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound — сущность не найдена или недоступна запрашивающему. Транспорт: 404.
	ErrNotFound = errors.New("not found")
	// ErrForbidden — операция запрещена правилами домена. Транспорт: 403/404.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict — нарушение уникальности. Транспорт: 409.
	ErrConflict = errors.New("conflict")
	// ErrUnavailable — зависимость не сконфигурирована. Транспорт: 503.
	ErrUnavailable = errors.New("unavailable")
	// ErrInternal — сбой хранилища. Транспорт: 500.
	ErrInternal = errors.New("internal")
)

// Конкретные ошибки.
var (
	ErrEmptyContent       = fmt.Errorf("%w: content must not be empty", ErrInvalidArgument)
	ErrNoValidFields      = fmt.Errorf("%w: no valid fields to update", ErrInvalidArgument)
	ErrParentMismatch     = fmt.Errorf("%w: parent comment belongs to another post", ErrInvalidArgument)
	ErrNestingUnsupported = fmt.Errorf("%w: replies to replies are not supported", ErrInvalidArgument)
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email format", ErrInvalidArgument)

	ErrPostNotFound           = fmt.Errorf("post %w", ErrNotFound)
	ErrCommentNotFound        = fmt.Errorf("comment %w", ErrNotFound)
	ErrParentNotFound         = fmt.Errorf("parent comment %w", ErrNotFound)
	ErrUserNotFound           = fmt.Errorf("user %w", ErrNotFound)
	ErrNotLiked               = fmt.Errorf("like %w", ErrNotFound)
	ErrNotFollowing           = fmt.Errorf("follow %w", ErrNotFound)
	ErrNotFoundOrUnauthorized = fmt.Errorf("%w or unauthorized", ErrNotFound)
	ErrMediaNotFound          = fmt.Errorf("media object %w", ErrNotFound)

	ErrCommentsDisabled = fmt.Errorf("%w: comments are disabled for this post", ErrForbidden)
	ErrSelfFollow       = fmt.Errorf("%w: cannot follow yourself", ErrForbidden)

	ErrAlreadyLiked     = fmt.Errorf("%w: post already liked", ErrConflict)
	ErrAlreadyFollowing = fmt.Errorf("%w: already following this user", ErrConflict)
	ErrEmailTaken       = fmt.Errorf("%w: email already taken", ErrConflict)

	ErrMediaDisabled = fmt.Errorf("%w: media storage is not configured", ErrUnavailable)
)

// Service описывает бизнес-логику social-сервиса.
type Service struct {
	storage storage.Storage
	limits  config.LimitsConfig
	log     *slog.Logger

	counts cache.CountsCache // может быть nil, если кеш не сконфигурирован
	media  storage.Media     // может быть nil, если S3 не сконфигурирован
}

// New создаёт новый экземпляр Service.
// logger — базовый логгер; в запросе предпочтение отдаётся логгеру из контекста.
func New(storage storage.Storage, limits config.LimitsConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		storage: storage,
		limits:  limits,
		log:     logger,
	}
}

// SetCountsCache устанавливает кеш счётчиков профиля (опционально).
func (s *Service) SetCountsCache(c cache.CountsCache) {
	s.counts = c
}

// SetMedia устанавливает медиа-хранилище (опционально).
func (s *Service) SetMedia(m storage.Media) {
	s.media = m
}

// logger возвращает логгер запроса с op и дополнительными атрибутами.
func (s *Service) logger(ctx context.Context, op string, args ...any) *slog.Logger {
	return log.FromOr(ctx, s.log).With(append([]any{"op", op}, args...)...)
}

// page нормализует параметры пагинации: limit <= 0 -> Default, limit > Max -> Max,
// отрицательный offset -> 0.
func (s *Service) page(p models.PageParams) models.PageParams {
	if p.Limit <= 0 {
		p.Limit = s.limits.Default
	}

	if s.limits.Max > 0 && p.Limit > s.limits.Max {
		p.Limit = s.limits.Max
	}

	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}

// collectPage параллельно читает страницу и общее количество.
func collectPage[T any](
	ctx context.Context,
	p models.PageParams,
	list func(ctx context.Context) ([]T, error),
	total func(ctx context.Context) (int64, error),
) (*models.Page[T], error) {
	var (
		items []T
		n     int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		items, err = list(gctx)
		return err
	})

	g.Go(func() error {
		var err error
		n, err = total(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return models.NewPage(items, n, p), nil
}

// invalidateCounts сбрасывает кеш счётчиков. Ошибки кеша только логируются.
func (s *Service) invalidateCounts(ctx context.Context, lg *slog.Logger, userIDs ...int64) {
	if s.counts == nil {
		return
	}

	if err := s.counts.Invalidate(ctx, userIDs...); err != nil {
		lg.Warn("counts cache invalidate failed", "err", err)
	}
}
