package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

// MessagingService keeps one conversation per unordered participant pair and
// appends ordered messages to it.
type MessagingService struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewMessagingService(db *gorm.DB, log *logrus.Logger) *MessagingService {
	return &MessagingService{db: db, log: log}
}

// GetOrCreateConversation looks the pair up in both orderings and creates the
// conversation when absent. Repeated calls with the same pair, either way
// round, return the same conversation.
func (s *MessagingService) GetOrCreateConversation(userA, userB string) (*models.Conversation, error) {
	if userA == "" || userB == "" {
		return nil, fmt.Errorf("%w: both participants are required", ErrValidation)
	}

	var conversation models.Conversation
	found := s.db.
		Where("(participant1_id = ? AND participant2_id = ?) OR (participant1_id = ? AND participant2_id = ?)",
			userA, userB, userB, userA).
		First(&conversation).RowsAffected > 0
	if found {
		return &conversation, nil
	}

	now := time.Now()
	conversation = models.Conversation{
		ID:             uuid.NewString(),
		Participant1ID: userA,
		Participant2ID: userB,
		CreatedAt:      now,
		LastMessageAt:  now,
	}
	if err := s.db.Create(&conversation).Error; err != nil {
		s.log.Warnf("failed to create conversation: %v", err)
		return nil, err
	}
	return &conversation, nil
}

// PostMessage appends a message and refreshes the conversation's
// last_message_at as one unit. A missing conversation and a sender who is not
// a participant are indistinguishable to the caller: both are ErrNotFound, so
// conversation existence never leaks.
func (s *MessagingService) PostMessage(conversationID, senderID, content string) (*models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("%w: message content is required", ErrValidation)
	}

	var conversation models.Conversation
	found := s.db.
		Where("id = ? AND (participant1_id = ? OR participant2_id = ?)", conversationID, senderID, senderID).
		First(&conversation).RowsAffected > 0
	if !found {
		return nil, ErrNotFound
	}

	message := &models.Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        content,
		CreatedAt:      time.Now(),
	}

	tx := s.db.Begin()
	defer tx.Rollback()

	if err := tx.Create(message).Error; err != nil {
		s.log.Warnf("failed to insert message: %v", err)
		return nil, err
	}
	if err := tx.Model(&models.Conversation{}).
		Where("id = ?", conversationID).
		Update("last_message_at", message.CreatedAt).Error; err != nil {
		s.log.Warnf("failed to refresh last_message_at: %v", err)
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages returns the conversation's messages oldest first. The caller
// must be a participant; otherwise the conversation does not exist for them.
func (s *MessagingService) ListMessages(conversationID, actorID string) ([]models.Message, error) {
	var conversation models.Conversation
	found := s.db.
		Where("id = ? AND (participant1_id = ? OR participant2_id = ?)", conversationID, actorID, actorID).
		First(&conversation).RowsAffected > 0
	if !found {
		return nil, ErrNotFound
	}

	var messages []models.Message
	if err := s.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at asc").
		Find(&messages).Error; err != nil {
		s.log.Warnf("failed to list messages: %v", err)
		return nil, err
	}
	return messages, nil
}

// ListConversations returns the user's conversations, most recent first.
func (s *MessagingService) ListConversations(userID string) ([]models.Conversation, error) {
	var conversations []models.Conversation
	if err := s.db.
		Where("participant1_id = ? OR participant2_id = ?", userID, userID).
		Order("last_message_at desc").
		Find(&conversations).Error; err != nil {
		s.log.Warnf("failed to list conversations: %v", err)
		return nil, err
	}
	return conversations, nil
}
