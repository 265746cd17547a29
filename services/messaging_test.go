package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agropetvet/vetcare-app/models"
)

func messagingFixture(t *testing.T) (*MessagingService, *gorm.DB) {
	db := testDB(t)
	seedProfile(t, db, "farmer@example.com", models.RoleClient)
	seedProfile(t, db, "vet@example.com", models.RoleVeterinarian)
	return NewMessagingService(db, testLogger()), db
}

func TestGetOrCreateConversationIsIdempotentAcrossOrderings(t *testing.T) {
	svc, db := messagingFixture(t)

	first, err := svc.GetOrCreateConversation("farmer@example.com", "vet@example.com")
	require.NoError(t, err)

	second, err := svc.GetOrCreateConversation("farmer@example.com", "vet@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	reversed, err := svc.GetOrCreateConversation("vet@example.com", "farmer@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, reversed.ID)

	var count int64
	db.Model(&models.Conversation{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestPostMessageUpdatesLastMessageAt(t *testing.T) {
	svc, db := messagingFixture(t)
	conversation, err := svc.GetOrCreateConversation("farmer@example.com", "vet@example.com")
	require.NoError(t, err)

	message, err := svc.PostMessage(conversation.ID, "farmer@example.com", "  Is my goat okay?  ")
	require.NoError(t, err)
	assert.Equal(t, "Is my goat okay?", message.Content, "content is stored trimmed")

	var refreshed models.Conversation
	require.NoError(t, db.First(&refreshed, "id = ?", conversation.ID).Error)
	assert.Equal(t, message.CreatedAt.Unix(), refreshed.LastMessageAt.Unix())
}

func TestPostMessageRejectsWhitespaceContent(t *testing.T) {
	svc, db := messagingFixture(t)
	conversation, err := svc.GetOrCreateConversation("farmer@example.com", "vet@example.com")
	require.NoError(t, err)
	before := conversation.LastMessageAt

	_, err = svc.PostMessage(conversation.ID, "farmer@example.com", "   ")
	assert.ErrorIs(t, err, ErrValidation)

	var refreshed models.Conversation
	require.NoError(t, db.First(&refreshed, "id = ?", conversation.ID).Error)
	assert.Equal(t, before.Unix(), refreshed.LastMessageAt.Unix(), "last_message_at unchanged")

	var count int64
	db.Model(&models.Message{}).Count(&count)
	assert.Zero(t, count)
}

func TestPostMessageHidesExistenceFromOutsiders(t *testing.T) {
	svc, db := messagingFixture(t)
	seedProfile(t, db, "outsider@example.com", models.RoleClient)
	conversation, err := svc.GetOrCreateConversation("farmer@example.com", "vet@example.com")
	require.NoError(t, err)

	// Outsider on a real conversation and anybody on a missing one look the same.
	_, err = svc.PostMessage(conversation.ID, "outsider@example.com", "let me in")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.PostMessage("missing-conversation", "farmer@example.com", "hello?")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMessagesAscendingByCreation(t *testing.T) {
	svc, db := messagingFixture(t)
	conversation, err := svc.GetOrCreateConversation("farmer@example.com", "vet@example.com")
	require.NoError(t, err)

	// Insert with explicit timestamps so ordering is deterministic.
	base := time.Now().Add(-time.Hour)
	for i, content := range []string{"first", "second", "third"} {
		msg := models.Message{
			ID:             content,
			ConversationID: conversation.ID,
			SenderID:       "farmer@example.com",
			Content:        content,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&msg).Error)
	}

	messages, err := svc.ListMessages(conversation.ID, "vet@example.com")
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "first", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "third", messages[2].Content)

	_, err = svc.ListMessages(conversation.ID, "outsider@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListConversations(t *testing.T) {
	svc, db := messagingFixture(t)
	seedProfile(t, db, "othervet@example.com", models.RoleVeterinarian)

	c1, err := svc.GetOrCreateConversation("farmer@example.com", "vet@example.com")
	require.NoError(t, err)
	c2, err := svc.GetOrCreateConversation("farmer@example.com", "othervet@example.com")
	require.NoError(t, err)

	_, err = svc.PostMessage(c1.ID, "farmer@example.com", "ping")
	require.NoError(t, err)

	conversations, err := svc.ListConversations("farmer@example.com")
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	// c1 got a message after c2 was created, so it sorts first.
	assert.Equal(t, c1.ID, conversations[0].ID)
	assert.Equal(t, c2.ID, conversations[1].ID)
}
