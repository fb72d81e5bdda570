package controllers

import (
	"strconv"

	"marathon-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetAllResults lists active results, newest first, optionally filtered by
// entry year, gender or event.
func (rc *ResultController) GetAllResults(c *fiber.Ctx) error {
	filters := map[string]string{
		"year":    c.Query("year"),
		"gender":  c.Query("gender"),
		"eventId": c.Query("eventId"),
	}

	results, err := rc.ResultRepo.GetFilteredResults(filters)
	if err != nil {
		config.Logger.Error("Failed to fetch results", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch results"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":   len(results),
		"results": results,
	})
}

func (rc *ResultController) GetResultByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("resultId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid result ID"})
	}

	result, err := rc.ResultRepo.GetActiveResultByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
