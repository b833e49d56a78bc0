package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/models"
)

// UserHandler handles API endpoints related to users.
type UserHandler struct {
	userService core.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us core.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{userService: us, logger: logger}
}

// CreateUser handles POST /user
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed body: email and name are required")
		return
	}

	id, err := h.userService.Create(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{Message: "User created successfully", ID: id})
}

// ShowUser handles GET /user?id= | ?email= | ?tokenscount=
func (h *UserHandler) ShowUser(c *gin.Context) {
	ctx := c.Request.Context()

	if id := c.Query("id"); id != "" {
		user, err := h.userService.Show(ctx, id)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}
	if email := c.Query("email"); email != "" {
		user, err := h.userService.ShowByEmail(ctx, email)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, user)
		return
	}
	if id := c.Query("tokenscount"); id != "" {
		h.writeTokensCount(c, id)
		return
	}
	badRequest(c, "Malformed request: must have an id, email or tokenscount query")
}

// ShowTokensCount handles GET /user/tokenscount/:id
func (h *UserHandler) ShowTokensCount(c *gin.Context) {
	h.writeTokensCount(c, c.Param("id"))
}

func (h *UserHandler) writeTokensCount(c *gin.Context, userID string) {
	count, err := h.userService.ShowTokensCount(c.Request.Context(), userID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, TokensCountResponse{TokensCount: count})
}

// UpdateUser handles PUT /user
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed body: id, name, email, totalTokens and plan are required")
		return
	}

	if err := h.userService.Update(c.Request.Context(), userFromRequest(req)); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "User updated successfully"})
}

// ChargeUser handles POST /user/:id/charge by removing count tokens.
func (h *UserHandler) ChargeUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		badRequest(c, "Malformed request: must have an id")
		return
	}
	var req models.ChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed body: count must be a positive integer")
		return
	}

	if err := h.userService.RemoveTokens(c.Request.Context(), userID, -req.Count); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "User charged successfully"})
}

// DeleteUser handles DELETE /user/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID := c.Param("id")
	if userID == "" {
		badRequest(c, "Malformed request: must have an id")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "User deleted successfully"})
}
