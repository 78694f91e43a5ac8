package models

import (
	"time"

	"gorm.io/gorm"
)

// Conversation is a direct-message thread between exactly two users.
//
// The pair is stored normalized (UserAID < UserBID) so the composite
// unique index enforces at most one conversation per unordered pair,
// regardless of which participant initiated it.
type Conversation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserAID       uint      `gorm:"not null;uniqueIndex:idx_conversation_pair;index" json:"-"`
	UserBID       uint      `gorm:"not null;uniqueIndex:idx_conversation_pair;index" json:"-"`
	LastMessage   string    `gorm:"type:text" json:"lastMessage"`
	LastMessageAt time.Time `gorm:"index" json:"lastMessageAt"`
	CreatedAt     time.Time `json:"createdAt"`

	UserA *User `gorm:"foreignKey:UserAID" json:"-"`
	UserB *User `gorm:"foreignKey:UserBID" json:"-"`
}

// BeforeCreate normalizes the participant pair ordering.
func (c *Conversation) BeforeCreate(_ *gorm.DB) error {
	if c.UserAID > c.UserBID {
		c.UserAID, c.UserBID = c.UserBID, c.UserAID
	}
	return nil
}

// Participants returns the two participant user ids.
func (c *Conversation) Participants() []uint {
	return []uint{c.UserAID, c.UserBID}
}

// HasParticipant reports whether the given user belongs to the conversation.
func (c *Conversation) HasParticipant(userID uint) bool {
	return c.UserAID == userID || c.UserBID == userID
}

// Other returns the participant that is not the given user, when preloaded.
func (c *Conversation) Other(userID uint) *User {
	if c.UserAID == userID {
		return c.UserB
	}
	return c.UserA
}

// Message is a single chat message. Messages are append-only; creating
// one also updates the parent conversation's LastMessage/LastMessageAt.
// SenderName is a snapshot of the sender's full name at send time.
type Message struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ConversationID uint      `gorm:"not null;index:idx_conversation_created" json:"conversationId"`
	SenderID       uint      `gorm:"not null;index" json:"senderId"`
	SenderName     string    `json:"senderName"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	IsRead         bool      `gorm:"default:false" json:"isRead"`
	CreatedAt      time.Time `gorm:"index:idx_conversation_created" json:"createdAt"`
}
