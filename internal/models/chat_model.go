package models

import "time"

// ChatVariant selects the system message a chat is seeded with.
type ChatVariant string

const (
	ChatVariantAssistant ChatVariant = "assistant"
	ChatVariantPDF       ChatVariant = "pdf"
	ChatVariantFinancial ChatVariant = "financial"
)

// Valid reports whether v is a known variant.
func (v ChatVariant) Valid() bool {
	switch v {
	case ChatVariantAssistant, ChatVariantPDF, ChatVariantFinancial:
		return true
	}
	return false
}

// Chat represents a conversation. Its messages live in the messages
// sub-collection of the chat document.
type Chat struct {
	ID        string      `json:"id" firestore:"-"`
	OwnerID   string      `json:"ownerId" firestore:"ownerId"`
	Name      string      `json:"name" firestore:"name"`
	SheetID   string      `json:"sheetId,omitempty" firestore:"sheetId,omitempty"`
	Variant   ChatVariant `json:"variant,omitempty" firestore:"variant,omitempty"`
	CreatedAt time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// ChatSummary is the list projection of a chat.
type ChatSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
