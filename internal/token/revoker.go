package token

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"blogger/config"
)

// Revoker records tokens invalidated before their natural expiry.
type Revoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

const revokedKeyPrefix = "revoked:"

// RedisRevoker keeps the denylist in redis. Entries expire together with
// the tokens they block, so the list never needs sweeping.
type RedisRevoker struct {
	client *redis.Client
}

// NewRedisRevoker connects to redis and verifies the connection.
func NewRedisRevoker(ctx context.Context, conf config.Redis) (*RedisRevoker, error) {
	client := redis.NewClient(&redis.Options{
		Addr: conf.Addr,
		DB:   conf.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisRevoker{client: client}, nil
}

func (r *RedisRevoker) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already past expiry; verification rejects it regardless.
		return nil
	}
	return r.client.Set(ctx, revokedKeyPrefix+tokenID, 1, ttl).Err()
}

func (r *RedisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
