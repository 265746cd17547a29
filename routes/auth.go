package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agropetvet/vetcare-app/controllers"
)

// SetupAuthRoutes configures all authentication related routes
func SetupAuthRoutes(app *fiber.App, ctl *controllers.AuthController, protected fiber.Handler) {
	auth := app.Group("/auth")

	// Public routes
	auth.Post("/signup", ctl.Signup)
	auth.Post("/login", ctl.Login)

	// Protected routes
	auth.Post("/logout", protected, ctl.Logout)
	auth.Get("/me", protected, ctl.Me)
}
