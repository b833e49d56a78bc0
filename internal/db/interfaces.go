package db

import (
	"context"
	"errors"
	"time"

	"gptsolver-backend-go/internal/models"
)

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrPreconditionFailed is returned when a write precondition (document
	// update time) no longer holds.
	ErrPreconditionFailed = errors.New("write precondition failed")
)

//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_repositories.go -package=mocks

// UserRepository defines the interface for user data storage operations.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (string, error) // Returns new user ID
	// GetByID returns the user with Version set to the document update time.
	GetByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) ([]*models.User, error)
	// Update overwrites the whole document. ErrNotFound if it does not exist.
	Update(ctx context.Context, user *models.User) error
	// UpdateField writes a single field, provided the document has not been
	// written since version. ErrPreconditionFailed otherwise.
	UpdateField(ctx context.Context, userID, field string, value interface{}, version time.Time) error
	Delete(ctx context.Context, userID string) error
}

// ChatRepository defines the interface for chat and message storage operations.
type ChatRepository interface {
	Create(ctx context.Context, chat *models.Chat) (string, error) // Returns new chat ID
	GetByID(ctx context.Context, chatID string) (*models.Chat, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*models.Chat, error)
	// Delete removes the messages sub-collection, then the chat document.
	Delete(ctx context.Context, chatID string) error
	AddMessage(ctx context.Context, chatID string, message *models.Message) (string, error)
	// ListMessages returns messages ordered by createdAt.
	ListMessages(ctx context.Context, chatID string) ([]*models.Message, error)
}

// SubscriptionRepository defines the interface for subscription storage operations.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *models.Subscription) (string, error)
	GetByID(ctx context.Context, subscriptionID string) (*models.Subscription, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*models.Subscription, error)
	Delete(ctx context.Context, subscriptionID string) error
}
