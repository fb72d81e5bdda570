package controllers

import (
	"marathon-backend/results/repositories"
	"marathon-backend/token"
	users_repositories "marathon-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ResultController struct {
	ResultRepo repositories.ResultRepository
	UserRepo   users_repositories.UserRepository
	DB         *gorm.DB
}

// currentUser resolves the authenticated submitter from the token payload
// the auth middleware stored on the request.
func (rc *ResultController) currentUser(c *fiber.Ctx) (*tokenUser, error) {
	payload, ok := c.Locals("user").(*token.Payload)
	if !ok || payload == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := rc.UserRepo.GetUserByEmail(payload.Email)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "User not found.")
	}
	return &tokenUser{ID: user.ID, FullName: user.FullName, Email: user.Email, IsAdmin: user.IsAdmin}, nil
}

type tokenUser struct {
	ID       uint
	FullName string
	Email    string
	IsAdmin  bool
}
