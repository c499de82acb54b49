// cache — кеш счётчиков профиля (подписки, подписчики, посты) поверх Redis.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/pribylovaa/go-social-feed/internal/models"
	"github.com/redis/go-redis/v9"
)

// CountsCache — минимальный контракт кеша счётчиков профиля.
type CountsCache interface {
	// Get возвращает счётчики и признак их наличия в кеше.
	Get(ctx context.Context, userID int64) (*models.ProfileCounts, bool, error)
	// Set сохраняет счётчики с TTL, заданным при создании кеша.
	Set(ctx context.Context, userID int64, counts *models.ProfileCounts) error
	// Invalidate удаляет счётчики перечисленных пользователей.
	Invalidate(ctx context.Context, userIDs ...int64) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "social:counts:".
func NewRedisCache(ctx context.Context, redisURL, prefix string, ttl time.Duration) (CountsCache, error) {
	if prefix == "" {
		prefix = "social:counts:"
	}

	if ttl <= 0 {
		return nil, errors.New("cache ttl must be > 0")
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(userID int64) string {
	return c.prefix + strconv.FormatInt(userID, 10)
}

// Храним как Redis Hash с полями: fl (following), fr (followers), p (posts).
func (c *redisCache) Get(ctx context.Context, userID int64) (*models.ProfileCounts, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(userID)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	var counts models.ProfileCounts
	for field, dst := range map[string]*int64{"fl": &counts.Following, "fr": &counts.Followers, "p": &counts.Posts} {
		v, err := strconv.ParseInt(m[field], 10, 64)
		if err != nil {
			return nil, false, err
		}
		*dst = v
	}

	return &counts, true, nil
}

func (c *redisCache) Set(ctx context.Context, userID int64, counts *models.ProfileCounts) error {
	kv := map[string]string{
		"fl": strconv.FormatInt(counts.Following, 10),
		"fr": strconv.FormatInt(counts.Followers, 10),
		"p":  strconv.FormatInt(counts.Posts, 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(userID), kv)
	pipe.Expire(ctx, c.key(userID), c.ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Invalidate(ctx context.Context, userIDs ...int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, c.key(id))
	}

	return c.rdb.Del(ctx, keys...).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
