package controllers

import (
	"errors"
	"time"

	"marathon-backend/config"
	"marathon-backend/db/models"
	"marathon-backend/events/repositories"
	"marathon-backend/events/requests"
	"marathon-backend/events/services"
	"marathon-backend/token"
	users_repositories "marathon-backend/users/repositories"
	"marathon-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type EventController struct {
	EventRepo   repositories.EventRepository
	UserRepo    users_repositories.UserRepository
	DB          *gorm.DB
	RedisClient *redis.Client
}

func (ec *EventController) currentUser(c *fiber.Ctx) (*models.User, error) {
	payload, ok := c.Locals("user").(*token.Payload)
	if !ok || payload == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	user, err := ec.UserRepo.GetUserByEmail(payload.Email)
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

// CreateEvent adds a race occurrence. The same name may recur on a
// different date; the same name on the same date is rejected.
func (ec *EventController) CreateEvent(c *fiber.Ctx) error {
	var req requests.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := services.ValidateNewEvent(&req, time.Now()); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	user, err := ec.currentUser(c)
	if err != nil {
		return respondAuthError(c, err)
	}

	date, _ := time.Parse("2006-01-02", req.EventDate)
	eventDate := models.DateOnly(date)

	existing, err := ec.EventRepo.GetEventByNameAndDate(req.EventName, eventDate)
	if err != nil {
		config.Logger.Error("Failed to check event duplicate", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create event"})
	}
	if existing != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "An event with the same name and date already exists."})
	}

	event := models.Event{
		EventName:        req.EventName,
		EventDate:        eventDate,
		EventYear:        req.EventYear,
		EventType:        req.EventType,
		EventDescription: req.EventDescription,
		Location:         req.Location,
		Time:             req.Time,
		IsActive:         true,
		EnteredBy:        user.FullName,
		EnteredAt:        utils.Today(),
	}

	if err := ec.EventRepo.CreateEvent(&event); err != nil {
		config.Logger.Error("Failed to create event", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create event"})
	}

	utils.InvalidateCacheAsync(ec.RedisClient, "dropdown")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Event created successfully",
		"event":   event,
	})
}

// CreateCategory adds an age band under an existing event.
func (ec *EventController) CreateCategory(c *fiber.Ctx) error {
	var req requests.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := services.ValidateNewCategory(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	user, err := ec.currentUser(c)
	if err != nil {
		return respondAuthError(c, err)
	}

	if _, err := ec.EventRepo.GetEventByID(req.EventID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	category := models.Category{
		CategoryName:        req.CategoryName,
		CategoryDescription: req.CategoryDescription,
		FromAge:             req.FromAge,
		ToAge:               req.ToAge,
		EventID:             req.EventID,
		IsActive:            true,
		EnteredBy:           user.FullName,
		EnteredAt:           utils.Today(),
	}

	if err := ec.EventRepo.CreateCategory(&category); err != nil {
		config.Logger.Error("Failed to create category", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to create category"})
	}

	utils.InvalidateCacheAsync(ec.RedisClient, "dropdown")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Category created successfully",
		"category": category,
	})
}
