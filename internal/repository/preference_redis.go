package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
)

type redisPreference struct {
	client *redis.Client
}

func NewRedisPreferenceRepository(client *redis.Client) PreferenceRepository {
	return &redisPreference{
		client: client,
	}
}

func (that *redisPreference) Get(ctx context.Context, key string) (string, error) {
	response, err := that.client.Get(ctx, preferenceKey(key)).Result()

	if errors.Is(err, redis.Nil) {
		return "", apperror.ErrPreferenceNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to get preference %s: %w", key, err)
	}

	return response, nil
}

func (that *redisPreference) Set(ctx context.Context, key, value string) error {
	if err := that.client.Set(ctx, preferenceKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("failed to set preference %s: %w", key, err)
	}

	return nil
}

func preferenceKey(key string) string {
	return "preference:" + key
}
