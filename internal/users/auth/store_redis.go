// Copyright (c) 2026 Urugo Women's Opportunity Center. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/urugowoc/urugo/internal/platform/constants"
)

// # Blacklist Repository

// RedisBlacklistRepository implements BlacklistRepository using Redis.
//
// Every API worker shares the same Redis instance, so a token blacklisted by
// one worker is rejected by all of them on the next request.
type RedisBlacklistRepository struct {
	client *redis.Client
}

// NewBlacklistRepository creates a new Redis-backed BlacklistRepository.
func NewBlacklistRepository(client *redis.Client) *RedisBlacklistRepository {
	return &RedisBlacklistRepository{client: client}
}

/*
Add records a token hash as blacklisted until its session would have expired anyway.

Parameters:
  - context: context.Context
  - tokenHash: string
  - ttl: time.Duration

Returns:
  - error: Execution errors
*/
func (repository *RedisBlacklistRepository) Add(context context.Context, tokenHash string, ttl time.Duration) error {

	// Entries carry the session's remaining lifetime so the set self-prunes.
	key := constants.RedisPrefixBlacklist + tokenHash

	if ttl <= 0 {
		ttl = time.Minute
	}

	if err := repository.client.Set(context, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_blacklist_add_failed: %w", err)
	}

	return nil
}

/*
IsBlacklisted reports whether a token hash has been blacklisted.

Parameters:
  - context: context.Context
  - tokenHash: string

Returns:
  - bool: True when the hash is present
  - error: Connectivity errors
*/
func (repository *RedisBlacklistRepository) IsBlacklisted(context context.Context, tokenHash string) (bool, error) {

	key := constants.RedisPrefixBlacklist + tokenHash

	_, err := repository.client.Get(context, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_blacklist_get_failed: %w", err)
	}

	return true, nil
}
