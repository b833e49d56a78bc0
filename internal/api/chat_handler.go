package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/models"
)

// ChatHandler handles API endpoints related to chats and their messages.
type ChatHandler struct {
	chatService core.ChatService
	logger      *zap.Logger
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(cs core.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{chatService: cs, logger: logger}
}

// CreateChat handles POST /chat
func (h *ChatHandler) CreateChat(c *gin.Context) {
	var req models.CreateChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid ownerId or name")
		return
	}

	id, err := h.chatService.Create(c.Request.Context(), core.CreateChatInput{
		OwnerID: req.OwnerID,
		Name:    req.Name,
		Variant: req.Variant,
		SheetID: req.SheetID,
	})
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// DeleteChat handles DELETE /chat/:id
func (h *ChatHandler) DeleteChat(c *gin.Context) {
	if err := h.chatService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetChat handles GET /chat/:id
func (h *ChatHandler) GetChat(c *gin.Context) {
	chat, err := h.chatService.Show(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, chat)
}

// ListChats handles GET /chat/list/:ownerId
func (h *ChatHandler) ListChats(c *gin.Context) {
	chats, err := h.chatService.ShowList(c.Request.Context(), c.Param("ownerId"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, chats)
}

// GetMessages handles GET /chat/:id/messages
func (h *ChatHandler) GetMessages(c *gin.Context) {
	messages, err := h.chatService.ShowMessages(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// AddMessage handles POST /chat/:id/messages. A body with image_url is
// stored as a vision message.
func (h *ChatHandler) AddMessage(c *gin.Context) {
	var req models.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid content or role")
		return
	}

	ctx := c.Request.Context()
	chatID := c.Param("id")

	var err error
	if req.ImageURL != "" {
		err = h.chatService.AddVMessage(ctx, chatID, req.Content, req.Role, req.ImageURL)
	} else {
		err = h.chatService.AddMessage(ctx, chatID, req.Content, req.Role)
	}
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Message added successfully"})
}
