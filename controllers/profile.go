package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/middleware"
	"github.com/agropetvet/vetcare-app/services"
	"github.com/agropetvet/vetcare-app/utils"
)

type ProfileController struct {
	profiles      *services.ProfileService
	notifications *services.ReminderService
	images        *utils.ImageStore
	log           *logrus.Logger
}

func NewProfileController(profiles *services.ProfileService, notifications *services.ReminderService, images *utils.ImageStore, log *logrus.Logger) *ProfileController {
	return &ProfileController{profiles: profiles, notifications: notifications, images: images, log: log}
}

func (ctl *ProfileController) Get(c *fiber.Ctx) error {
	listing, err := ctl.profiles.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(listing)
}

func (ctl *ProfileController) Update(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	var input services.ProfileUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	listing, err := ctl.profiles.Update(identity.UserID, c.Params("id"), input)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"profile": listing,
	})
}

func (ctl *ProfileController) SetAvailability(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	var body struct {
		IsAvailable *bool `json:"is_available"`
	}
	if err := c.BodyParser(&body); err != nil || body.IsAvailable == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid availability value. Expected boolean.",
		})
	}

	listing, err := ctl.profiles.SetAvailability(identity.UserID, c.Params("id"), *body.IsAvailable)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"profile": listing,
	})
}

// SetPhoto uploads the multipart profilePhoto to the image host and stores
// the returned URL.
func (ctl *ProfileController) SetPhoto(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	fileHeader, err := c.FormFile("profilePhoto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to get profile photo",
		})
	}
	if ctl.images == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Image uploads are not configured",
		})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to open profile photo",
		})
	}
	defer f.Close()

	url, err := ctl.images.Upload(c.Context(), f, "profile_photos")
	if err != nil {
		ctl.log.Warnf("profile photo upload failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to upload profile photo",
		})
	}

	listing, err := ctl.profiles.SetPhoto(identity.UserID, url)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"profile": listing,
	})
}

// ListVeterinarians is the marketplace directory.
func (ctl *ProfileController) ListVeterinarians(c *fiber.Ctx) error {
	listings, err := ctl.profiles.ListVeterinarians()
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"veterinarians": listings})
}

func (ctl *ProfileController) ListNotifications(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	notifications, err := ctl.notifications.ListNotifications(identity.UserID)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"notifications": notifications})
}

func (ctl *ProfileController) MarkNotificationRead(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	if err := ctl.notifications.MarkNotificationRead(identity.UserID, c.Params("id")); err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
