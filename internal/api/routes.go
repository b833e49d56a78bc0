package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/middleware"
)

// SetupRoutes mounts the health check and the /v1 API on router. Global
// middleware is expected to be applied by the caller. authMW may be nil, in
// which case the API is served without authentication.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	authMW *middleware.AuthMiddleware,
	userService core.UserService,
	chatService core.ChatService,
	subscriptionService core.SubscriptionService,
) {
	userHandler := NewUserHandler(userService, logger)
	chatHandler := NewChatHandler(chatService, logger)
	subscriptionHandler := NewSubscriptionHandler(subscriptionService, logger)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, HealthResponse{Status: "UP"})
	})

	apiV1 := router.Group("/v1")
	if authMW != nil {
		apiV1.Use(authMW.VerifyToken())
	}

	userGroup := apiV1.Group("/user")
	{
		userGroup.POST("", userHandler.CreateUser)
		userGroup.GET("", userHandler.ShowUser)
		userGroup.GET("/tokenscount/:id", userHandler.ShowTokensCount)
		userGroup.PUT("", userHandler.UpdateUser)
		userGroup.POST("/:id/charge", userHandler.ChargeUser)
		userGroup.DELETE("/:id", userHandler.DeleteUser)
	}

	chatGroup := apiV1.Group("/chat")
	{
		chatGroup.POST("", chatHandler.CreateChat)
		chatGroup.GET("/list/:ownerId", chatHandler.ListChats)
		chatGroup.GET("/:id", chatHandler.GetChat)
		chatGroup.DELETE("/:id", chatHandler.DeleteChat)
		chatGroup.GET("/:id/messages", chatHandler.GetMessages)
		chatGroup.POST("/:id/messages", chatHandler.AddMessage)
	}

	subscriptionGroup := apiV1.Group("/subscription")
	{
		subscriptionGroup.POST("", subscriptionHandler.CreateSubscription)
		subscriptionGroup.GET("", subscriptionHandler.ShowSubscription)
		subscriptionGroup.GET("/plans", subscriptionHandler.Plans)
		subscriptionGroup.DELETE("/:id", subscriptionHandler.DeleteSubscription)
	}

	logger.Info("API routes set up successfully")
}
