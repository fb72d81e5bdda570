package controllers

import (
	"strconv"
	"strings"
	"time"

	"marathon-backend/config"
	"marathon-backend/db/models"
	"marathon-backend/registrations/requests"
	"marathon-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ensureParticipationOption creates the (event, category, km) option when
// it does not exist yet. Same check-then-insert as the participatein
// endpoints, no transaction.
func (rc *RegistrationController) ensureParticipationOption(eventID, categoryID uint, km decimal.Decimal, enteredBy string) error {
	exists, err := rc.EventRepo.ParticipationOptionExists(eventID, categoryID, km, 0)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return rc.EventRepo.CreateParticipationOption(&models.ParticipationOption{
		EventID:    eventID,
		CategoryID: categoryID,
		Km:         km,
		IsActive:   true,
		EnteredBy:  enteredBy,
		EnteredAt:  utils.Today(),
	})
}

// UpdateRegistration rewrites a registration. The admin screens submit
// the event and category by name, so both get resolved before saving.
// There is no year gate here; registrations stay editable.
func (rc *RegistrationController) UpdateRegistration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("registrationId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid registration ID"})
	}

	existing, err := rc.RegistrationRepo.GetRegistrationByID(uint(id))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	var req requests.UpdateRegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	user, err := rc.currentUser(c)
	if err != nil {
		return respondAuthError(c, err)
	}

	if len(strings.TrimSpace(req.Name)) < 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Name is required."})
	}
	if !models.ValidGender(models.Gender(req.Gender)) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid gender."})
	}
	if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Date of birth must be in YYYY-MM-DD format."})
	}

	event, err := rc.EventRepo.GetEventByName(req.EventName)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	var categoryID *uint
	if req.CategoryName != nil && *req.CategoryName != "" {
		category, err := rc.EventRepo.GetCategoryByName(*req.CategoryName, event.ID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		categoryID = &category.ID
	}

	// The chosen distance may be new for this event+category pair; make
	// sure an option row exists so the dropdown stays consistent.
	if categoryID != nil {
		if km, kmErr := decimal.NewFromString(req.ParticipateIn); kmErr == nil {
			if err := rc.ensureParticipationOption(event.ID, *categoryID, km, user.FullName); err != nil {
				config.Logger.Warn("Failed to upsert participation option",
					zap.Uint("eventId", event.ID), zap.String("km", km.String()), zap.Error(err))
			}
		}
	}

	existing.Name = req.Name
	existing.Gender = models.Gender(req.Gender)
	existing.DateOfBirth = req.DateOfBirth
	existing.City = req.City
	existing.Email = req.Email
	existing.ContactNo = req.ContactNo
	existing.EmergencyNo = req.EmergencyNo
	existing.TshirtSize = req.TshirtSize
	existing.BookingReference = req.BookingReference
	existing.ParticipateIn = req.ParticipateIn
	existing.EventID = event.ID
	existing.CategoryID = categoryID
	existing.UpdatedBy = user.FullName

	if err := rc.RegistrationRepo.UpdateRegistration(existing); err != nil {
		config.Logger.Error("Failed to update registration", zap.Uint64("registrationId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to update registration"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":      "Registration updated successfully",
		"registration": existing,
	})
}

// DeleteRegistration removes the row outright.
func (rc *RegistrationController) DeleteRegistration(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("registrationId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid registration ID"})
	}

	if _, err := rc.RegistrationRepo.GetRegistrationByID(uint(id)); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": err.Error()})
	}

	if err := rc.RegistrationRepo.DeleteRegistration(uint(id)); err != nil {
		config.Logger.Error("Failed to delete registration", zap.Uint64("registrationId", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to delete registration"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Registration deleted successfully"})
}
