package models

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleAssistant Role = "assistant"
	RoleUser      Role = "user"
)

// Message is a single entry of a chat. Messages are append-only.
type Message struct {
	ID            string    `json:"id" firestore:"-"`
	ChatID        string    `json:"chatId" firestore:"-"`
	Role          Role      `json:"role" firestore:"role"`
	Content       string    `json:"content" firestore:"content"`
	ImageURL      string    `json:"image_url,omitempty" firestore:"image_url,omitempty"`
	ImageMimeType string    `json:"imageMimeType,omitempty" firestore:"imageMimeType,omitempty"`
	CreatedAt     time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}
