package controllers

import (
	"strconv"

	"marathon-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (rc *RegistrationController) GetAllRegistrations(c *fiber.Ctx) error {
	registrations, err := rc.RegistrationRepo.GetAllRegistrations()
	if err != nil {
		config.Logger.Error("Failed to fetch registrations", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch registrations"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":         len(registrations),
		"registrations": registrations,
	})
}

// GetMyRegistrations lists the registrations the authenticated user
// submitted, newest first.
func (rc *RegistrationController) GetMyRegistrations(c *fiber.Ctx) error {
	user, err := rc.currentUser(c)
	if err != nil {
		return respondAuthError(c, err)
	}

	registrations, err := rc.RegistrationRepo.GetRegistrationsByEnteredBy(user.FullName)
	if err != nil {
		config.Logger.Error("Failed to fetch registrations", zap.String("enteredBy", user.FullName), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to fetch registrations"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":         len(registrations),
		"registrations": registrations,
	})
}

func (rc *RegistrationController) GetRegistrationByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("registrationId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid registration ID"})
	}

	registration, err := rc.RegistrationRepo.GetRegistrationByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(registration)
}
