package controllers

import (
	"errors"

	"marathon-backend/db/models"
	"marathon-backend/events/repositories"
	registration_repositories "marathon-backend/registrations/repositories"
	"marathon-backend/registrations/services"
	"marathon-backend/token"
	users_repositories "marathon-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RegistrationController struct {
	RegistrationRepo registration_repositories.RegistrationRepository
	EventRepo        repositories.EventRepository
	UserRepo         users_repositories.UserRepository
	DB               *gorm.DB
}

// currentUser resolves the authenticated submitter. Registrations are
// keyed on the submitter's full name, so the lookup is not optional.
func (rc *RegistrationController) currentUser(c *fiber.Ctx) (*models.User, error) {
	payload, ok := c.Locals("user").(*token.Payload)
	if !ok || payload == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := rc.UserRepo.GetUserByEmail(payload.Email)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "User not found.")
	}
	return user, nil
}

func respondAuthError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
}

func (rc *RegistrationController) service() *services.RegistrationService {
	return &services.RegistrationService{Store: rc.RegistrationRepo}
}
