package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/agropetvet/vetcare-app/middleware"
	"github.com/agropetvet/vetcare-app/services"
)

type ConversationController struct {
	messaging *services.MessagingService
	log       *logrus.Logger
}

func NewConversationController(messaging *services.MessagingService, log *logrus.Logger) *ConversationController {
	return &ConversationController{messaging: messaging, log: log}
}

// Initiate finds or creates the single conversation between the caller and
// the other participant.
func (ctl *ConversationController) Initiate(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	var body struct {
		ParticipantID string `json:"participant_id"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	conversation, err := ctl.messaging.GetOrCreateConversation(identity.UserID, body.ParticipantID)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"conversation": conversation})
}

func (ctl *ConversationController) List(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	conversations, err := ctl.messaging.ListConversations(identity.UserID)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"conversations": conversations})
}

func (ctl *ConversationController) ListMessages(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)
	messages, err := ctl.messaging.ListMessages(c.Params("conversationId"), identity.UserID)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.JSON(fiber.Map{"messages": messages})
}

func (ctl *ConversationController) PostMessage(c *fiber.Ctx) error {
	identity := middleware.IdentityFromCtx(c)

	var body struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot parse JSON",
		})
	}

	message, err := ctl.messaging.PostMessage(c.Params("conversationId"), identity.UserID, body.Content)
	if err != nil {
		return respondError(c, ctl.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(message)
}
