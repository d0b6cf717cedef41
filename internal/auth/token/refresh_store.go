package token

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrRefreshNotFound = errors.New("refresh token not found")

// RefreshStore records the currently valid refresh token per member.
// A new login or reissue replaces the record; presenting anything but
// the recorded token fails the reissue.
type RefreshStore interface {
	Save(ctx context.Context, memberID, refreshToken string, ttl time.Duration) error
	Get(ctx context.Context, memberID string) (string, error)
	Delete(ctx context.Context, memberID string) error
}

type RedisRefreshStore struct {
	client *redis.Client
	prefix string
}

// NewRedisRefreshStore creates a redis-backed refresh token store.
func NewRedisRefreshStore(client *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{
		client: client,
		prefix: "refresh:",
	}
}

func (r *RedisRefreshStore) key(memberID string) string {
	return r.prefix + memberID
}

func (r *RedisRefreshStore) Save(
	ctx context.Context,
	memberID string,
	refreshToken string,
	ttl time.Duration,
) error {
	if memberID == "" || refreshToken == "" {
		return errors.New("refresh store: missing member_id or token")
	}
	if ttl <= 0 {
		return errors.New("refresh store: ttl must be positive")
	}

	return r.client.Set(ctx, r.key(memberID), refreshToken, ttl).Err()
}

func (r *RedisRefreshStore) Get(ctx context.Context, memberID string) (string, error) {
	val, err := r.client.Get(ctx, r.key(memberID)).Result()
	if err == redis.Nil {
		return "", ErrRefreshNotFound
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisRefreshStore) Delete(ctx context.Context, memberID string) error {
	return r.client.Del(ctx, r.key(memberID)).Err()
}
