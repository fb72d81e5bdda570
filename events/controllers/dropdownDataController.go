package controllers

import (
	"encoding/json"
	"time"

	"marathon-backend/config"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const dropdownCacheKey = "dropdown:data"
const dropdownCacheTTL = 10 * time.Minute

// GetDropdownData serves the active events, categories and distances the
// registration form needs, cached in redis. Creation handlers invalidate
// the "dropdown" keyspace, so a stale entry lives at most one TTL.
func (ec *EventController) GetDropdownData(c *fiber.Ctx) error {
	ctx := c.Context()

	cached, err := ec.RedisClient.Get(ctx, dropdownCacheKey).Result()
	if err == nil {
		c.Set("Content-Type", "application/json")
		return c.Status(fiber.StatusOK).SendString(cached)
	}
	if err != redis.Nil {
		config.Logger.Warn("Dropdown cache read failed", zap.Error(err))
	}

	events, err := ec.EventRepo.GetActiveEvents()
	if err != nil {
		config.Logger.Error("Failed to fetch events for dropdown", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch dropdown data"})
	}

	categories, err := ec.EventRepo.GetActiveCategories(0)
	if err != nil {
		config.Logger.Error("Failed to fetch categories for dropdown", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch dropdown data"})
	}

	options, err := ec.EventRepo.GetActiveParticipationOptions(0)
	if err != nil {
		config.Logger.Error("Failed to fetch participation options for dropdown", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch dropdown data"})
	}

	payload := fiber.Map{
		"events":        events,
		"categories":    categories,
		"participatein": options,
	}

	if body, err := json.Marshal(payload); err == nil {
		if err := ec.RedisClient.Set(ctx, dropdownCacheKey, body, dropdownCacheTTL).Err(); err != nil {
			config.Logger.Warn("Dropdown cache write failed", zap.Error(err))
		}
	}

	return c.Status(fiber.StatusOK).JSON(payload)
}
