package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gptsolver-backend-go/internal/models"
)

// newEmulatorClient connects to the Firestore emulator. Tests are skipped
// when FIRESTORE_EMULATOR_HOST is not set.
func newEmulatorClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), fmt.Sprintf("gptsolver-test-%d", time.Now().UnixNano()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestUserRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewFirestoreUserRepository(client)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.User{Name: "Ana", Email: "ana@example.com", Plan: models.DefaultPlan})
	require.NoError(t, err)

	user, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, []string{}, user.Chats)
	assert.False(t, user.Version.IsZero())

	found, err := repo.FindByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	t.Run("field update honours the version", func(t *testing.T) {
		require.NoError(t, repo.UpdateField(ctx, id, "totalTokens", int64(10), user.Version))

		err := repo.UpdateField(ctx, id, "totalTokens", int64(20), user.Version)
		require.ErrorIs(t, err, ErrPreconditionFailed)

		current, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(10), current.TotalTokens)
	})

	t.Run("missing documents", func(t *testing.T) {
		_, err := repo.GetByID(ctx, "ghost")
		require.ErrorIs(t, err, ErrNotFound)
		require.ErrorIs(t, repo.UpdateField(ctx, "ghost", "plan", "pro", time.Time{}), ErrNotFound)
		require.ErrorIs(t, repo.Update(ctx, &models.User{ID: "ghost"}), ErrNotFound)
	})

	require.NoError(t, repo.Delete(ctx, id))
	require.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
}

func TestChatRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewFirestoreChatRepository(client)
	ctx := context.Background()

	chatID, err := repo.Create(ctx, &models.Chat{OwnerID: "u1", Name: "Conversa", Variant: models.ChatVariantAssistant})
	require.NoError(t, err)

	for _, content := range []string{"primeira", "segunda", "terceira"} {
		_, err := repo.AddMessage(ctx, chatID, &models.Message{Role: models.RoleUser, Content: content})
		require.NoError(t, err)
	}

	messages, err := repo.ListMessages(ctx, chatID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "primeira", messages[0].Content)
	assert.Equal(t, chatID, messages[0].ChatID)

	chats, err := repo.ListByOwnerID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, chats, 1)

	require.NoError(t, repo.Delete(ctx, chatID))

	_, err = repo.GetByID(ctx, chatID)
	require.ErrorIs(t, err, ErrNotFound)
	messages, err = repo.ListMessages(ctx, chatID)
	require.NoError(t, err)
	assert.Empty(t, messages)
	require.ErrorIs(t, repo.Delete(ctx, chatID), ErrNotFound)
}

func TestSubscriptionRepository_Emulator(t *testing.T) {
	client := newEmulatorClient(t)
	repo := NewFirestoreSubscriptionRepository(client)
	ctx := context.Background()

	id, err := repo.Create(ctx, &models.Subscription{
		OwnerID:          "u1",
		SubscriptionType: "pro",
		Price:            49.9,
		EndDate:          time.Now().Add(24 * time.Hour).UTC(),
	})
	require.NoError(t, err)

	sub, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "pro", sub.SubscriptionType)

	subs, err := repo.ListByOwnerID(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.GetByID(ctx, id)
	require.ErrorIs(t, err, ErrNotFound)
}
