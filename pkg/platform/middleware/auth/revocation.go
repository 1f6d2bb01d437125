package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRevocationList marks token ids as revoked until their expiry.
type RedisRevocationList struct {
	client redis.Cmdable
	prefix string
}

func NewRedisRevocationList(client redis.Cmdable) *RedisRevocationList {
	return &RedisRevocationList{client: client, prefix: "caseregistry:revoked:"}
}

// Revoke records jti as revoked for ttl.
func (l *RedisRevocationList) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if err := l.client.Set(ctx, l.prefix+jti, 1, ttl).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}

func (l *RedisRevocationList) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := l.client.Exists(ctx, l.prefix+jti).Result()
	if err != nil {
		return false, fmt.Errorf("check revocation: %w", err)
	}
	return n > 0, nil
}
