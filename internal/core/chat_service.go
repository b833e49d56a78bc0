package core

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/models"
)

const (
	minChatNameLength    = 4
	minMessageLength     = 5
	imageDataURIPrefix   = "data:image/"
	imageDataURIEncoding = ";base64,"
)

// chatService implements the ChatService interface.
type chatService struct {
	chatRepo    db.ChatRepository
	userService UserService
	sheetClient SheetClient
	reconciler  Reconciler
	logger      *zap.Logger
}

// NewChatService creates a new ChatService instance.
func NewChatService(
	cr db.ChatRepository,
	us UserService,
	sc SheetClient,
	rc Reconciler,
	logger *zap.Logger,
) ChatService {
	return &chatService{
		chatRepo:    cr,
		userService: us,
		sheetClient: sc,
		reconciler:  rc,
		logger:      logger,
	}
}

// Create validates the input, prepares the variant's seed message, creates the
// chat with its seed and attaches it to the owner. If the chat cannot be
// attached it is reported for reconciliation and the error is returned.
func (s *chatService) Create(ctx context.Context, in CreateChatInput) (string, error) {
	if _, err := s.userService.Show(ctx, in.OwnerID); err != nil {
		return "", err
	}

	variant := in.Variant
	if variant == "" {
		variant = models.ChatVariantAssistant
	}
	if !variant.Valid() {
		return "", ValidationFailed("variant", fmt.Sprintf("invalid chat variant: %s", variant))
	}
	if utf8.RuneCountInString(in.Name) < minChatNameLength {
		return "", ValidationFailed("name", fmt.Sprintf("invalid name: %q must have at least %d characters", in.Name, minChatNameLength))
	}
	if variant == models.ChatVariantFinancial && in.SheetID == "" {
		return "", ValidationFailed("sheetId", "sheetId is required for a financial chat")
	}

	seed, err := s.seedFor(ctx, variant, in.SheetID)
	if err != nil {
		return "", err
	}

	chat := &models.Chat{
		OwnerID: in.OwnerID,
		Name:    in.Name,
		Variant: variant,
	}
	if variant == models.ChatVariantFinancial {
		chat.SheetID = in.SheetID
	}

	chatID, err := s.chatRepo.Create(ctx, chat)
	if err != nil {
		return "", fmt.Errorf("failed to create chat in repository: %w", err)
	}

	if _, err := s.chatRepo.AddMessage(ctx, chatID, &models.Message{Role: models.RoleSystem, Content: seed}); err != nil {
		s.report(ctx, models.ReconcileOrphanChat, in.OwnerID, chatID, err)
		return "", fmt.Errorf("failed to seed chat '%s': %w", chatID, err)
	}

	if err := s.userService.AddChat(ctx, in.OwnerID, chatID); err != nil {
		s.report(ctx, models.ReconcileOrphanChat, in.OwnerID, chatID, err)
		return "", fmt.Errorf("failed to attach chat '%s' to user '%s': %w", chatID, in.OwnerID, err)
	}

	s.logger.Info("Chat created", zap.String("chatID", chatID), zap.String("ownerID", in.OwnerID), zap.String("variant", string(variant)))
	return chatID, nil
}

func (s *chatService) seedFor(ctx context.Context, variant models.ChatVariant, sheetID string) (string, error) {
	switch variant {
	case models.ChatVariantPDF:
		return pdfSeed, nil
	case models.ChatVariantFinancial:
		items, err := s.sheetClient.FetchItems(ctx, sheetID)
		if err != nil {
			if errors.Is(err, ErrUpstream) {
				return "", err
			}
			return "", Upstream(fmt.Sprintf("failed to fetch items of sheet %s", sheetID), err)
		}
		return financialSeed(items)
	default:
		return assistantSeed, nil
	}
}

// Delete detaches the chat from its owner and deletes it concurrently. Neither
// side is rolled back if the other fails; the failed side is reported for
// reconciliation instead.
func (s *chatService) Delete(ctx context.Context, chatID string) error {
	chat, err := s.Show(ctx, chatID)
	if err != nil {
		return err
	}

	var (
		g         errgroup.Group
		detachErr error
		deleteErr error
	)
	g.Go(func() error {
		detachErr = s.userService.RemoveChat(ctx, chat.OwnerID, chatID)
		if errors.Is(detachErr, ErrNotFound) {
			// The owner is gone, so there is nothing to detach from.
			s.logger.Warn("Owner of deleted chat not found", zap.String("chatID", chatID), zap.String("ownerID", chat.OwnerID))
			detachErr = nil
		}
		return detachErr
	})
	g.Go(func() error {
		deleteErr = s.chatRepo.Delete(ctx, chatID)
		return deleteErr
	})
	firstErr := g.Wait()

	if detachErr != nil {
		s.report(ctx, models.ReconcileDetachChat, chat.OwnerID, chatID, detachErr)
	}
	if deleteErr != nil {
		s.report(ctx, models.ReconcileDeleteChat, chat.OwnerID, chatID, deleteErr)
	}
	if firstErr != nil {
		return fmt.Errorf("failed to delete chat '%s': %w", chatID, firstErr)
	}

	s.logger.Info("Chat deleted", zap.String("chatID", chatID), zap.String("ownerID", chat.OwnerID))
	return nil
}

// report enqueues a reconciliation event. Enqueue failures are logged only;
// the caller already returns the original error.
func (s *chatService) report(ctx context.Context, kind models.ReconcileKind, userID, chatID string, cause error) {
	event := models.ReconciliationEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		UserID:    userID,
		ChatID:    chatID,
		Reason:    cause.Error(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.reconciler.Enqueue(ctx, event); err != nil {
		s.logger.Error("Failed to enqueue reconciliation event",
			zap.String("kind", string(kind)),
			zap.String("chatID", chatID),
			zap.String("userID", userID),
			zap.Error(err),
		)
	}
}

func (s *chatService) Show(ctx context.Context, chatID string) (*models.Chat, error) {
	chat, err := s.chatRepo.GetByID(ctx, chatID)
	if err != nil {
		return nil, translateRepoError(err, "chat", chatID)
	}
	return chat, nil
}

// ShowList returns the id and name of every chat owned by ownerID.
func (s *chatService) ShowList(ctx context.Context, ownerID string) ([]models.ChatSummary, error) {
	chats, err := s.chatRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats of owner '%s': %w", ownerID, err)
	}
	return lo.Map(chats, func(c *models.Chat, _ int) models.ChatSummary {
		return models.ChatSummary{ID: c.ID, Name: c.Name}
	}), nil
}

func validateMessageContent(content string) error {
	if utf8.RuneCountInString(content) < minMessageLength {
		return ValidationFailed("content", fmt.Sprintf("invalid message: content must have at least %d characters", minMessageLength))
	}
	return nil
}

func (s *chatService) AddMessage(ctx context.Context, chatID, content string, role models.Role) error {
	if err := validateMessageContent(content); err != nil {
		return err
	}
	if role != models.RoleAssistant && role != models.RoleUser {
		return ValidationFailed("role", fmt.Sprintf("invalid role: %s", role))
	}
	if _, err := s.Show(ctx, chatID); err != nil {
		return err
	}

	if _, err := s.chatRepo.AddMessage(ctx, chatID, &models.Message{Role: role, Content: content}); err != nil {
		return fmt.Errorf("failed to add message to chat '%s': %w", chatID, err)
	}
	return nil
}

// AddVMessage adds a user message carrying an image given as a base64 data URI.
func (s *chatService) AddVMessage(ctx context.Context, chatID, content string, role models.Role, imageURL string) error {
	if err := validateMessageContent(content); err != nil {
		return err
	}
	if role != models.RoleUser {
		return ValidationFailed("role", fmt.Sprintf("invalid role for image message: %s", role))
	}
	mimeType, err := decodeImageDataURI(imageURL)
	if err != nil {
		return err
	}
	if _, err := s.Show(ctx, chatID); err != nil {
		return err
	}

	message := &models.Message{
		Role:          role,
		Content:       content,
		ImageURL:      imageURL,
		ImageMimeType: mimeType,
	}
	if _, err := s.chatRepo.AddMessage(ctx, chatID, message); err != nil {
		return fmt.Errorf("failed to add image message to chat '%s': %w", chatID, err)
	}
	return nil
}

// decodeImageDataURI checks that uri is a data:image/...;base64,<payload> URI
// with a decodable payload and returns the MIME type sniffed from the payload.
func decodeImageDataURI(uri string) (string, error) {
	if uri == "" {
		return "", ValidationFailed("image_url", "image_url is required")
	}
	if !strings.HasPrefix(uri, imageDataURIPrefix) {
		return "", ValidationFailed("image_url", "image_url must be a data:image/ URI")
	}
	idx := strings.Index(uri, imageDataURIEncoding)
	if idx < 0 {
		return "", ValidationFailed("image_url", "image_url must be base64 encoded")
	}
	payload := uri[idx+len(imageDataURIEncoding):]
	if payload == "" {
		return "", ValidationFailed("image_url", "image_url has an empty payload")
	}
	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", ValidationFailed("image_url", "image_url payload is not valid base64")
	}
	return mimetype.Detect(decoded).String(), nil
}

// ShowMessages returns the chat's messages in creation order. A chat without
// messages is reported as not found.
func (s *chatService) ShowMessages(ctx context.Context, chatID string) ([]*models.Message, error) {
	messages, err := s.chatRepo.ListMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages of chat '%s': %w", chatID, err)
	}
	if len(messages) == 0 {
		return nil, &AppError{Err: ErrNotFound, Message: fmt.Sprintf("no messages found for chat %s", chatID)}
	}
	return messages, nil
}
