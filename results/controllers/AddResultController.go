package controllers

import (
	"errors"

	"marathon-backend/config"
	"marathon-backend/db/models"
	"marathon-backend/results/requests"
	"marathon-backend/results/services"
	"marathon-backend/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AddResult records a single manually-entered result. Timing fields go in
// strict, no normalization.
func (rc *ResultController) AddResult(c *fiber.Ctx) error {
	var req requests.AddResultRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Invalid request body"})
	}

	if msg := services.ValidateNewResult(&req); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
	}

	user, err := rc.currentUser(c)
	if err != nil {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(fiber.Map{"message": fiberErr.Message})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Something went wrong"})
	}

	exists, err := rc.ResultRepo.BibNumberExists(req.BibNumber)
	if err != nil {
		config.Logger.Error("Failed to check bib number", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add result"})
	}
	if exists {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "Bib number already exists."})
	}

	result := models.Result{
		RegistrationID: req.RegistrationID,
		BibNumber:      req.BibNumber,
		Name:           req.Name,
		StartTime:      req.StartTime,
		FinishTime:     req.FinishTime,
		RaceTime:       req.RaceTime,
		CP1:            req.CP1,
		CP1Time:        req.CP1Time,
		CP2:            req.CP2,
		CP2Time:        req.CP2Time,
		CP3:            req.CP3,
		CP3Time:        req.CP3Time,
		CP4:            req.CP4,
		CP4Time:        req.CP4Time,
		CP5:            req.CP5,
		CP5Time:        req.CP5Time,
		Age:            req.Age,
		Gender:         models.Gender(req.Gender),
		ParticipateIn:  req.ParticipateIn,
		CategoryID:     req.CategoryID,
		City:           req.City,
		RFID1:          req.RFID1,
		RFID2:          req.RFID2,
		EventID:        req.EventID,
		CStartTime:     req.CStartTime,
		CRaceTime:      req.CRaceTime,
		ImageID:        req.ImageID,
		IsActive:       true,
		EnteredBy:      user.ID,
		EnteredAt:      utils.Today(),
	}

	if err := rc.ResultRepo.CreateResult(&result); err != nil {
		config.Logger.Error("Failed to create result", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to add result"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Result added successfully",
		"resultId": result.ID,
	})
}
