package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/middleware"
	"github.com/agropetvet/vetcare-app/models"
	"github.com/agropetvet/vetcare-app/services"
	"github.com/agropetvet/vetcare-app/utils"
)

type AppointmentController struct {
	appointments *services.AppointmentService
	images       *utils.ImageStore
	log          *logrus.Logger
}

func NewAppointmentController(appointments *services.AppointmentService, images *utils.ImageStore, log *logrus.Logger) *AppointmentController {
	return &AppointmentController{appointments: appointments, images: images, log: log}
}

// Create books an appointment from a multipart form: user_id, vet_id,
// appointment_datetime, optional status/reason and images[] uploaded to the
// image host before the row is written.
func (ctl *AppointmentController) Create(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	datetime, err := parseDatetime(c.FormValue("appointment_datetime"))
	if c.FormValue("appointment_datetime") != "" && err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid appointment_datetime. Use RFC3339 or YYYY-MM-DDTHH:MM.",
		})
	}

	input := services.CreateAppointmentInput{
		UserID:              c.FormValue("user_id"),
		VetID:               c.FormValue("vet_id"),
		AppointmentDatetime: datetime,
		Reason:              c.FormValue("reason"),
		Status:              models.AppointmentStatus(c.FormValue("status")),
	}

	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, fileHeader := range form.File["images"] {
			if fileHeader.Size == 0 {
				continue
			}
			if ctl.images == nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Image uploads are not configured",
				})
			}
			f, err := fileHeader.Open()
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Failed to read image",
				})
			}
			url, err := ctl.images.Upload(c.Context(), f, "appointments")
			f.Close()
			if err != nil {
				ctl.log.Warnf("image upload failed: %v", err)
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error": "Failed to upload images",
				})
			}
			input.ImageURLs = append(input.ImageURLs, url)
		}
	}

	appointment, err := ctl.appointments.Create(identity.UserID, input)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"appointment": appointment})
}

func (ctl *AppointmentController) Get(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	appointment, err := ctl.appointments.GetByID(identity.UserID, c.Params("id"))
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"appointment": appointment})
}

// List returns the caller's appointments from either side of the booking.
func (ctl *AppointmentController) List(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	appointments, err := ctl.appointments.ListForUser(identity.UserID)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{
		"appointments": appointments,
		"count":        len(appointments),
	})
}

type appointmentUpdateInput struct {
	Status              string  `json:"status"`
	Diagnosis           *string `json:"diagnosis"`
	Prescription        *string `json:"prescription"`
	VetComments         *string `json:"vet_comments"`
	AppointmentDatetime *string `json:"appointment_datetime"`
}

// Update is the vet-only write path: outcome fields, status transitions, or
// both. "completed" together with outcome fields lands atomically.
func (ctl *AppointmentController) Update(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	id := c.Params("id")

	var input appointmentUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	outcome := services.OutcomeInput{
		Diagnosis:    input.Diagnosis,
		Prescription: input.Prescription,
		VetComments:  input.VetComments,
	}
	if input.AppointmentDatetime != nil {
		parsed, err := parseDatetime(*input.AppointmentDatetime)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid appointment_datetime. Use RFC3339 or YYYY-MM-DDTHH:MM.",
			})
		}
		outcome.AppointmentDatetime = &parsed
	}
	hasOutcome := input.Diagnosis != nil || input.Prescription != nil ||
		input.VetComments != nil || input.AppointmentDatetime != nil

	var appointment interface{}
	var err error
	switch {
	case input.Status == string(models.StatusCompleted):
		appointment, err = ctl.appointments.CompleteWithOutcome(identity.UserID, id, outcome)
	case hasOutcome && input.Status != "":
		if appointment, err = ctl.appointments.SetOutcome(identity.UserID, id, outcome); err == nil {
			appointment, err = ctl.appointments.Transition(identity.UserID, id, models.AppointmentStatus(input.Status))
		}
	case hasOutcome:
		appointment, err = ctl.appointments.SetOutcome(identity.UserID, id, outcome)
	case input.Status != "":
		appointment, err = ctl.appointments.Transition(identity.UserID, id, models.AppointmentStatus(input.Status))
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Nothing to update",
		})
	}
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"appointment": appointment})
}

// parseDatetime accepts RFC3339 or the datetime-local form value.
func parseDatetime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("empty datetime")
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04", value)
}
