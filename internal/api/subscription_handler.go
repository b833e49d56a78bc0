package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/models"
)

// SubscriptionHandler handles API endpoints related to subscriptions.
type SubscriptionHandler struct {
	subscriptionService core.SubscriptionService
	logger              *zap.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(ss core.SubscriptionService, logger *zap.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionService: ss, logger: logger}
}

// CreateSubscription handles POST /subscription
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req models.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Malformed body: ownerId and type are required")
		return
	}

	id, err := h.subscriptionService.Create(c.Request.Context(), req.OwnerID, req.Type)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, CreatedResponse{ID: id})
}

// ShowSubscription handles GET /subscription?owid= | ?id=
func (h *SubscriptionHandler) ShowSubscription(c *gin.Context) {
	ctx := c.Request.Context()

	if ownerID := c.Query("owid"); ownerID != "" {
		subscriptions, err := h.subscriptionService.ShowByOwnerID(ctx, ownerID)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, subscriptions)
		return
	}
	if id := c.Query("id"); id != "" {
		subscription, err := h.subscriptionService.Show(ctx, id)
		if err != nil {
			writeError(c, h.logger, err)
			return
		}
		c.JSON(http.StatusOK, subscription)
		return
	}
	badRequest(c, "Malformed request: must have an id or owid")
}

// DeleteSubscription handles DELETE /subscription/:id
func (h *SubscriptionHandler) DeleteSubscription(c *gin.Context) {
	if err := h.subscriptionService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, MessageResponse{Message: "Subscription deleted successfully"})
}

// Plans handles GET /subscription/plans
func (h *SubscriptionHandler) Plans(c *gin.Context) {
	c.JSON(http.StatusOK, h.subscriptionService.Plans())
}
