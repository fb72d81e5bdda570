package controllers

import (
	"strconv"
	"time"

	"marathon-backend/config"
	"marathon-backend/db/models"
	"marathon-backend/results/requests"
	"marathon-backend/results/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UpdateResult replaces an existing result's fields. Rows entered in a
// previous calendar year are frozen for everyone, admins included.
func (rc *ResultController) UpdateResult(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("resultId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid result ID"})
	}

	existing, err := rc.ResultRepo.GetActiveResultByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	if !services.CanModifyThisYear(existing.EnteredAt, time.Now()) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Cannot edit past year results."})
	}

	var req requests.AddResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := services.ValidateNewResult(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	existing.RegistrationID = req.RegistrationID
	existing.BibNumber = req.BibNumber
	existing.Name = req.Name
	existing.StartTime = req.StartTime
	existing.FinishTime = req.FinishTime
	existing.RaceTime = req.RaceTime
	existing.CP1 = req.CP1
	existing.CP1Time = req.CP1Time
	existing.CP2 = req.CP2
	existing.CP2Time = req.CP2Time
	existing.CP3 = req.CP3
	existing.CP3Time = req.CP3Time
	existing.CP4 = req.CP4
	existing.CP4Time = req.CP4Time
	existing.CP5 = req.CP5
	existing.CP5Time = req.CP5Time
	existing.Age = req.Age
	existing.Gender = models.Gender(req.Gender)
	existing.ParticipateIn = req.ParticipateIn
	existing.CategoryID = req.CategoryID
	existing.City = req.City
	existing.RFID1 = req.RFID1
	existing.RFID2 = req.RFID2
	existing.EventID = req.EventID
	existing.CStartTime = req.CStartTime
	existing.CRaceTime = req.CRaceTime
	existing.ImageID = req.ImageID

	if err := rc.ResultRepo.UpdateResult(existing); err != nil {
		config.Logger.Error("Failed to update result", zap.Uint64("resultId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update result"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Result updated successfully",
		"result":  existing,
	})
}
