package models

import (
	"time"
)

// Conversation is the single thread between an unordered pair of users.
// Lookups must check both participant orderings.
type Conversation struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	Participant1ID string    `json:"participant1_id" gorm:"index"`
	Participant2ID string    `json:"participant2_id" gorm:"index"`
	CreatedAt      time.Time `json:"created_at"`
	LastMessageAt  time.Time `json:"last_message_at"`
}

// Message is immutable once created and always belongs to one conversation.
type Message struct {
	ID             string    `json:"id" gorm:"primaryKey"`
	ConversationID string    `json:"conversation_id" gorm:"index"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

// HasParticipant reports whether userID is one of the two parties.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.Participant1ID == userID || c.Participant2ID == userID
}
