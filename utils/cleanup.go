package utils

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"marathon-backend/config"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

// CleanupExpiredFiles removes a generated report file once it is older than the TTL.
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		config.Logger.Info("Deleted expired report file", zap.String("path", filePath))
	}
	return nil
}

// CleanupExpiredCache drops the cached dropdown payloads so the next request
// rebuilds them from the database.
func CleanupExpiredCache(redisClient *redis.Client) error {
	ctx := context.Background()
	iter := redisClient.Scan(ctx, 0, "dropdown:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := redisClient.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("error deleting cache key %s: %v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("error scanning cache keys: %v", err)
	}
	return nil
}

// CleanupAllExpired handles the cleanup of report files and Redis cache entries
func CleanupAllExpired(fileTTL time.Duration, redisClient *redis.Client) error {
	files, err := os.ReadDir(reportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return CleanupExpiredCache(redisClient)
		}
		return fmt.Errorf("error reading files directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		filePath := filepath.Join(reportDir, file.Name())
		if err := CleanupExpiredFiles(filePath, fileTTL); err != nil {
			config.Logger.Warn("Error cleaning up file", zap.String("path", filePath), zap.Error(err))
		}
	}

	return CleanupExpiredCache(redisClient)
}

// RunScheduledCleanup runs cleanup tasks daily at 1 AM with retries.
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		config.Logger.Info("Running scheduled cleanup task")

		var retries int
		for retries < maxRetries {
			err := CleanupAllExpired(24*time.Hour, redisClient)
			if err == nil {
				config.Logger.Info("Cleanup successful")
				return
			}
			config.Logger.Warn("Cleanup failed", zap.Int("attempt", retries+1), zap.Error(err))
			retries++
			time.Sleep(retryDelay)
		}

		config.Logger.Error("Cleanup task failed after retries", zap.Int("retries", retries))
		if err := SendEmail(
			os.Getenv("ADMIN_EMAIL"),
			"The scheduled cleanup task failed after multiple attempts.",
			"Cleanup Task Failed",
			"",
		); err != nil {
			config.Logger.Error("Failed to notify admin about cleanup failure", zap.Error(err))
		}
	})

	c.Start()

	// Keep the goroutine alive so cron jobs keep firing
	select {}
}
