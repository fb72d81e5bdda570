package controllers

import (
	"errors"

	"marathon-backend/config"
	"marathon-backend/registrations/requests"
	"marathon-backend/registrations/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Register signs the authenticated user up for an event. The bib number
// in the response is derived from the stored row, so it is only present
// once the post-insert patch succeeded.
func (rc *RegistrationController) Register(c *fiber.Ctx) error {
	var req requests.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, err := rc.currentUser(c)
	if err != nil {
		return respondAuthError(c, err)
	}

	registration, err := rc.service().Register(&req, user.FullName)
	if err != nil {
		if errors.Is(err, services.ErrAlreadyRegistered) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": services.ErrAlreadyRegistered.Error()})
		}
		if msg := services.ValidateRegistration(&req); msg != "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
		}
		config.Logger.Error("Failed to register for event", zap.Uint("eventId", req.EventID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to register for event"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Registration successful",
		"registration": registration,
	})
}
