package models

import "time"

// DefaultPlan is assigned to every newly created user.
const DefaultPlan = "basic"

// User represents an account holder. Chats holds the ids of the chats owned by
// the user in creation order.
type User struct {
	ID          string    `json:"id" firestore:"-"` // Document ID
	Name        string    `json:"name" firestore:"name"`
	Email       string    `json:"email" firestore:"email"`
	TotalTokens int64     `json:"totalTokens" firestore:"totalTokens"`
	Plan        string    `json:"plan" firestore:"plan"`
	Chats       []string  `json:"chats" firestore:"chats"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt,serverTimestamp"`

	// Version is the document update time observed on read. It is used as a
	// write precondition and never stored as a field.
	Version time.Time `json:"-" firestore:"-"`
}
