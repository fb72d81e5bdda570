package utils

import (
	"context"
	"fmt"

	"marathon-backend/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InvalidateCache drops all cached keys for the given resource type.
func InvalidateCache(ctx context.Context, redisClient *redis.Client, resourceType string) error {
	// SCAN instead of KEYS so a large keyspace doesn't block the server
	pattern := fmt.Sprintf("%s:*", resourceType)
	iter := redisClient.Scan(ctx, 0, pattern, 0).Iterator()

	for iter.Next(ctx) {
		key := iter.Val()
		if err := redisClient.Del(ctx, key).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %v", key, err)
		}
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("error during SCAN iteration: %v", err)
	}

	return nil
}

// InvalidateCacheAsync invalidates the cache for a resource type without blocking the request.
func InvalidateCacheAsync(redisClient *redis.Client, resourceType string) {
	go func() {
		if err := InvalidateCache(context.Background(), redisClient, resourceType); err != nil {
			config.Logger.Warn("Cache invalidation failed",
				zap.String("resource_type", resourceType),
				zap.Error(err),
			)
		}
	}()
}
