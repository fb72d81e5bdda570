package controllers

import (
	"strconv"
	"time"

	"marathon-backend/config"
	"marathon-backend/results/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// DeleteResult removes a result row for good. The lookup ignores the
// active flag so an already-disabled row can still be purged, but the
// same year gate as for edits applies.
func (rc *ResultController) DeleteResult(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("resultId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid result ID"})
	}

	existing, err := rc.ResultRepo.GetResultByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	if !services.CanModifyThisYear(existing.EnteredAt, time.Now()) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Cannot delete past year results."})
	}

	if err := rc.ResultRepo.DeleteResult(uint(id)); err != nil {
		config.Logger.Error("Failed to delete result", zap.Uint64("resultId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete result"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Result deleted successfully"})
}
