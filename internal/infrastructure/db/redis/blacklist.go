package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenBlacklist tracks revoked refresh-token IDs in Redis.
// Key format: blacklist:<jti>, expiring with the token's remaining lifetime
// so revoked entries clean themselves up.
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist creates a TokenBlacklist wrapping the given Redis client.
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// IsRevoked reports whether the jti has been revoked.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(jti)).Result()
	if err != nil {
		return false, fmt.Errorf("blacklist check: %w", err)
	}
	return n > 0, nil
}

// Revoke records the jti for ttl, after which the token has expired anyway.
func (b *TokenBlacklist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return b.client.Set(ctx, b.key(jti), "1", ttl).Err()
}

func (b *TokenBlacklist) key(jti string) string {
	return "blacklist:" + jti
}
