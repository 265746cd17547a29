package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agropetvet/vetcare-app/controllers"
)

// SetupScheduleRoutes configures the veterinarian schedule routes
func SetupScheduleRoutes(app *fiber.App, ctl *controllers.ScheduleController, protected fiber.Handler) {
	schedule := app.Group("/veterinarian-schedule")
	schedule.Get("/:vetId", ctl.Get)
	schedule.Put("/:vetId", protected, ctl.Replace)
}
