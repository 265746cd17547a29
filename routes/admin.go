package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agropetvet/vetcare-app/controllers"
)

// SetupAdminRoutes configures the moderation routes. The admin role itself is
// enforced inside the service, before any write.
func SetupAdminRoutes(app *fiber.App, ctl *controllers.AdminController, protected fiber.Handler) {
	admin := app.Group("/admin", protected)
	admin.Post("/users/:id/suspend", ctl.Suspend)
	admin.Post("/users/:id/activate", ctl.Activate)
	admin.Post("/vets/:id/verification", ctl.SetVetVerification)
}
