package controllers

import (
	"strconv"

	"marathon-backend/config"
	"marathon-backend/db/models"
	"marathon-backend/events/requests"
	"marathon-backend/events/services"
	"marathon-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CreateParticipationOption adds a race distance for an event+category
// pair. Uniqueness of the (event, category, km) triple is enforced here
// by a lookup before the insert, not by the database.
func (ec *EventController) CreateParticipationOption(c *fiber.Ctx) error {
	var req requests.ParticipationOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := services.ValidateParticipationOption(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	user, err := ec.currentUser(c)
	if err != nil {
		return respondAuthError(c, err)
	}

	if _, err := ec.EventRepo.GetEventByID(req.EventID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if _, err := ec.EventRepo.GetCategoryByID(req.CategoryID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	exists, err := ec.EventRepo.ParticipationOptionExists(req.EventID, req.CategoryID, req.Km, 0)
	if err != nil {
		config.Logger.Error("Failed to check participation option", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create participation option"})
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Participation option with the same distance already exists."})
	}

	option := models.ParticipationOption{
		EventID:    req.EventID,
		CategoryID: req.CategoryID,
		Km:         req.Km,
		StartTime:  req.StartTime,
		IsActive:   true,
		EnteredBy:  user.FullName,
		EnteredAt:  utils.Today(),
	}

	if err := ec.EventRepo.CreateParticipationOption(&option); err != nil {
		config.Logger.Error("Failed to create participation option", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create participation option"})
	}

	utils.InvalidateCacheAsync(ec.RedisClient, "dropdown")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":       "Participation option created successfully",
		"participatein": option,
	})
}

// UpdateParticipationOption rewrites an option; the duplicate check skips
// the row being updated.
func (ec *EventController) UpdateParticipationOption(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("participateinId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid participation option ID"})
	}

	existing, err := ec.EventRepo.GetParticipationOptionByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	var req requests.ParticipationOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := services.ValidateParticipationOption(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	user, err := ec.currentUser(c)
	if err != nil {
		return respondAuthError(c, err)
	}

	exists, err := ec.EventRepo.ParticipationOptionExists(req.EventID, req.CategoryID, req.Km, uint(id))
	if err != nil {
		config.Logger.Error("Failed to check participation option", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update participation option"})
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Participation option with the same distance already exists."})
	}

	existing.EventID = req.EventID
	existing.CategoryID = req.CategoryID
	existing.Km = req.Km
	existing.StartTime = req.StartTime
	existing.UpdatedBy = user.FullName

	if err := ec.EventRepo.UpdateParticipationOption(existing); err != nil {
		config.Logger.Error("Failed to update participation option", zap.Uint64("participateinId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update participation option"})
	}

	utils.InvalidateCacheAsync(ec.RedisClient, "dropdown")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Participation option updated successfully",
		"participatein": existing,
	})
}

func (ec *EventController) DeleteParticipationOption(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("participateinId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid participation option ID"})
	}

	if err := ec.EventRepo.DeleteParticipationOption(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	utils.InvalidateCacheAsync(ec.RedisClient, "dropdown")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Participation option deleted successfully"})
}

func (ec *EventController) GetAllParticipationOptions(c *fiber.Ctx) error {
	options, err := ec.EventRepo.GetAllParticipationOptions()
	if err != nil {
		config.Logger.Error("Failed to fetch participation options", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch participation options"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":         len(options),
		"participatein": options,
	})
}
