package db

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gptsolver-backend-go/internal/models"
)

const (
	chatsCollection    = "chats"
	messagesCollection = "messages"

	// deleteBatchSize bounds how many messages are read per delete round.
	deleteBatchSize = 200
)

// firestoreChatRepository implements the ChatRepository interface using Firestore.
type firestoreChatRepository struct {
	client *firestore.Client
}

// NewFirestoreChatRepository creates a new instance of firestoreChatRepository.
func NewFirestoreChatRepository(client *firestore.Client) ChatRepository {
	if client == nil {
		panic("Firestore client is not initialized for ChatRepository")
	}
	return &firestoreChatRepository{client: client}
}

// Create adds a new chat document with an auto-generated ID.
func (r *firestoreChatRepository) Create(ctx context.Context, chat *models.Chat) (string, error) {
	docRef := r.client.Collection(chatsCollection).NewDoc()
	chat.ID = docRef.ID

	if _, err := docRef.Create(ctx, chat); err != nil {
		return "", fmt.Errorf("failed to create chat: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a chat document by its ID.
func (r *firestoreChatRepository) GetByID(ctx context.Context, chatID string) (*models.Chat, error) {
	if chatID == "" {
		return nil, errors.New("chatID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(chatsCollection).Doc(chatID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("chat with ID '%s' not found: %w", chatID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get chat with ID '%s': %w", chatID, err)
	}

	var chat models.Chat
	if err := docSnap.DataTo(&chat); err != nil {
		return nil, fmt.Errorf("failed to decode chat data for ID '%s': %w", chatID, err)
	}
	chat.ID = docSnap.Ref.ID
	return &chat, nil
}

// ListByOwnerID retrieves all chats owned by a user.
func (r *firestoreChatRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*models.Chat, error) {
	iter := r.client.Collection(chatsCollection).Where("ownerId", "==", ownerID).Documents(ctx)
	defer iter.Stop()

	chats := []*models.Chat{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate chats for owner '%s': %w", ownerID, err)
		}
		var chat models.Chat
		if err := doc.DataTo(&chat); err != nil {
			return nil, fmt.Errorf("failed to decode chat data for ID '%s': %w", doc.Ref.ID, err)
		}
		chat.ID = doc.Ref.ID
		chats = append(chats, &chat)
	}
	return chats, nil
}

// Delete removes the messages of a chat and then the chat document itself.
// Firestore does not delete sub-collections together with their parent.
func (r *firestoreChatRepository) Delete(ctx context.Context, chatID string) error {
	if chatID == "" {
		return errors.New("chatID cannot be empty for Delete operation")
	}
	chatRef := r.client.Collection(chatsCollection).Doc(chatID)

	if err := r.deleteMessages(ctx, chatRef); err != nil {
		return fmt.Errorf("failed to delete messages of chat '%s': %w", chatID, err)
	}

	if _, err := chatRef.Delete(ctx, firestore.Exists); err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("chat with ID '%s' not found for deletion: %w", chatID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete chat with ID '%s': %w", chatID, err)
	}
	return nil
}

func (r *firestoreChatRepository) deleteMessages(ctx context.Context, chatRef *firestore.DocumentRef) error {
	for {
		iter := chatRef.Collection(messagesCollection).Limit(deleteBatchSize).Documents(ctx)
		bw := r.client.BulkWriter(ctx)

		var jobs []*firestore.BulkWriterJob
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				iter.Stop()
				bw.End()
				return err
			}
			job, err := bw.Delete(doc.Ref)
			if err != nil {
				iter.Stop()
				bw.End()
				return err
			}
			jobs = append(jobs, job)
		}
		iter.Stop()
		bw.End()

		for _, job := range jobs {
			if _, err := job.Results(); err != nil {
				return err
			}
		}
		if len(jobs) < deleteBatchSize {
			return nil
		}
	}
}

// AddMessage appends a message to the chat's messages sub-collection.
func (r *firestoreChatRepository) AddMessage(ctx context.Context, chatID string, message *models.Message) (string, error) {
	if chatID == "" {
		return "", errors.New("chatID cannot be empty for AddMessage operation")
	}
	docRef := r.client.Collection(chatsCollection).Doc(chatID).Collection(messagesCollection).NewDoc()
	message.ID = docRef.ID
	message.ChatID = chatID

	if _, err := docRef.Create(ctx, message); err != nil {
		return "", fmt.Errorf("failed to add message to chat '%s': %w", chatID, err)
	}
	return docRef.ID, nil
}

// ListMessages returns the chat's messages ordered by creation time.
func (r *firestoreChatRepository) ListMessages(ctx context.Context, chatID string) ([]*models.Message, error) {
	iter := r.client.Collection(chatsCollection).Doc(chatID).Collection(messagesCollection).
		OrderBy("createdAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	messages := []*models.Message{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate messages of chat '%s': %w", chatID, err)
		}
		var message models.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, fmt.Errorf("failed to decode message '%s' of chat '%s': %w", doc.Ref.ID, chatID, err)
		}
		message.ID = doc.Ref.ID
		message.ChatID = chatID
		messages = append(messages, &message)
	}
	return messages, nil
}
