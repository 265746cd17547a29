package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agropetvet/vetcare-app/controllers"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App, ctl *controllers.AppointmentController, protected fiber.Handler) {
	appointment := app.Group("/appointments", protected)
	appointment.Get("/", ctl.List)
	appointment.Post("/", ctl.Create)
	appointment.Get("/:id", ctl.Get)
	appointment.Put("/:id", ctl.Update)
}
