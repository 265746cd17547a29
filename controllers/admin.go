package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/middleware"
	"github.com/agropetvet/vetcare-app/models"
	"github.com/agropetvet/vetcare-app/services"
)

type AdminController struct {
	admin *services.AdminService
	log   *logrus.Logger
}

func NewAdminController(admin *services.AdminService, log *logrus.Logger) *AdminController {
	return &AdminController{admin: admin, log: log}
}

func (ctl *AdminController) Suspend(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	profile, err := ctl.admin.Suspend(identity.UserID, c.Params("id"))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (ctl *AdminController) Activate(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	profile, err := ctl.admin.Activate(identity.UserID, c.Params("id"))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (ctl *AdminController) SetVetVerification(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	profile, err := ctl.admin.SetVetVerification(identity.UserID, c.Params("id"), models.VerificationStatus(body.Status))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"profile": profile})
}
