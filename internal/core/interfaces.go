package core

import (
	"context"

	"gptsolver-backend-go/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=interfaces.go -destination=../mocks/mock_services.go -package=mocks

// UserService defines the interface for user-related operations.
type UserService interface {
	Create(ctx context.Context, email, name string) (string, error)
	Show(ctx context.Context, userID string) (*models.User, error)
	ShowByEmail(ctx context.Context, email string) (*models.User, error)
	ShowTokensCount(ctx context.Context, userID string) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID string) error
	// AddTokens and RemoveTokens only accept negative deltas.
	AddTokens(ctx context.Context, userID string, delta int64) error
	RemoveTokens(ctx context.Context, userID string, delta int64) error
	AddChat(ctx context.Context, userID, chatID string) error
	RemoveChat(ctx context.Context, userID, chatID string) error
}

// CreateChatInput selects the seed of a new chat. SheetID is only used by the
// financial variant.
type CreateChatInput struct {
	OwnerID string
	Name    string
	Variant models.ChatVariant
	SheetID string
}

// ChatService defines the interface for chat and message operations.
type ChatService interface {
	Create(ctx context.Context, in CreateChatInput) (string, error)
	Delete(ctx context.Context, chatID string) error
	Show(ctx context.Context, chatID string) (*models.Chat, error)
	ShowList(ctx context.Context, ownerID string) ([]models.ChatSummary, error)
	AddMessage(ctx context.Context, chatID, content string, role models.Role) error
	AddVMessage(ctx context.Context, chatID, content string, role models.Role, imageURL string) error
	ShowMessages(ctx context.Context, chatID string) ([]*models.Message, error)
}

// SubscriptionService defines the interface for subscription operations.
type SubscriptionService interface {
	Plans() map[string]models.Plan
	Create(ctx context.Context, ownerID, subscriptionType string) (string, error)
	Show(ctx context.Context, subscriptionID string) (*models.Subscription, error)
	ShowByOwnerID(ctx context.Context, ownerID string) ([]*models.Subscription, error)
	Delete(ctx context.Context, subscriptionID string) error
}

// SheetClient fetches the items of a financial sheet from the sheet API.
type SheetClient interface {
	FetchItems(ctx context.Context, sheetID string) ([]models.SheetItem, error)
}

// Reconciler records and replays the compensation of chat sagas that only
// partially applied.
type Reconciler interface {
	Enqueue(ctx context.Context, event models.ReconciliationEvent) error
	Sweep(ctx context.Context) (int, error)
}
