package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/agropetvet/vetcare-app/controllers"
)

// SetupConversationRoutes configures the messaging routes
func SetupConversationRoutes(app *fiber.App, ctl *controllers.ConversationController, protected fiber.Handler) {
	conversations := app.Group("/conversations", protected)
	conversations.Get("/", ctl.List)
	conversations.Post("/", ctl.Initiate)
	conversations.Get("/:conversationId/messages", ctl.ListMessages)
	conversations.Post("/:conversationId/messages", ctl.PostMessage)
}
