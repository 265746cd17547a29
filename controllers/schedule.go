package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/middleware"
	"github.com/agropetvet/vetcare-app/services"
)

type ScheduleController struct {
	schedules *services.ScheduleService
	log       *logrus.Logger
}

func NewScheduleController(schedules *services.ScheduleService, log *logrus.Logger) *ScheduleController {
	return &ScheduleController{schedules: schedules, log: log}
}

// Get returns a vet's weekly schedule; clients use it to pick a slot.
func (ctl *ScheduleController) Get(c *fiber.Ctx) error {
	vetID := c.Params("vetId")
	if vetID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid veterinarian ID.",
		})
	}
	schedule, err := ctl.schedules.Get(vetID)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"schedule": schedule,
	})
}

// Replace swaps the vet's whole schedule. Only the vet edits their own.
func (ctl *ScheduleController) Replace(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	vetID := c.Params("vetId")
	if vetID != identity.UserID {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	var body struct {
		Schedule []services.ScheduleEntryInput `json:"schedule"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Schedule must be an array of day schedules.",
		})
	}

	schedule, err := ctl.schedules.ReplaceAll(vetID, body.Schedule)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"schedule": schedule,
	})
}
