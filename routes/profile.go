package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agropetvet/vetcare-app/controllers"
)

// SetupProfileRoutes configures profile, directory and notification routes
func SetupProfileRoutes(app *fiber.App, ctl *controllers.ProfileController, protected fiber.Handler) {
	app.Get("/veterinarians", ctl.ListVeterinarians)

	profile := app.Group("/profile")
	profile.Put("/photo", protected, ctl.SetPhoto)
	profile.Get("/:id", ctl.Get)
	profile.Put("/:id", protected, ctl.Update)
	profile.Put("/:id/availability", protected, ctl.SetAvailability)

	notifications := app.Group("/notifications", protected)
	notifications.Get("/", ctl.ListNotifications)
	notifications.Patch("/:id/read", ctl.MarkNotificationRead)
}
