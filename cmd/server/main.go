package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/api"
	"gptsolver-backend-go/internal/config"
	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/middleware"
	"gptsolver-backend-go/pkg/cache"
	"gptsolver-backend-go/pkg/messagequeue"
)

func main() {
	// In production, environment variables are set directly.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Println("Warning: Error loading .env file:", err)
		}
	}

	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	var zapLogger *zap.Logger
	if appConfig.IsRelease() {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync() //nolint:errcheck

	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig, zapLogger); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore", zap.Error(err))
	}
	defer func() {
		if err := db.CloseFirestore(); err != nil {
			zapLogger.Warn("Error closing Firestore client", zap.Error(err))
		}
	}()
	firestoreClient := db.GetFirestoreClient()

	// Redis is optional: it backs the sheet cache and the reconciliation queue.
	var (
		redisClient *redis.Client
		sheetCache  cache.Cache
		queue       messagequeue.MessageQueue
	)
	if appConfig.RedisAddr != "" {
		redisClient, err = cache.NewRedisClient(initCtx, cache.NewRedisClientConfig{
			Address:  appConfig.RedisAddr,
			Password: appConfig.RedisPassword,
			DB:       appConfig.RedisDB,
		})
		if err != nil {
			zapLogger.Fatal("CRITICAL_ERROR: Failed to connect to Redis", zap.Error(err))
		}
		redisQueue := messagequeue.NewRedisQueue(redisClient, zapLogger)
		// The queue owns the shared client.
		defer func() {
			if err := redisQueue.Close(); err != nil {
				zapLogger.Warn("Error closing Redis client", zap.Error(err))
			}
		}()
		sheetCache = cache.NewRedisCache(redisClient, zapLogger)
		queue = redisQueue

		pending, err := redisQueue.Len(initCtx, appConfig.ReconcileQueue)
		if err != nil {
			zapLogger.Warn("Could not read reconciliation backlog", zap.Error(err))
		}
		zapLogger.Info("Redis connected", zap.String("address", appConfig.RedisAddr), zap.Int64("pendingReconciliations", pending))
	} else {
		zapLogger.Warn("REDIS_ADDR is not configured: sheet responses are not cached and reconciliation events are only logged")
	}

	userRepo := db.NewFirestoreUserRepository(firestoreClient)
	chatRepo := db.NewFirestoreChatRepository(firestoreClient)
	subscriptionRepo := db.NewFirestoreSubscriptionRepository(firestoreClient)

	userService := core.NewUserService(userRepo, zapLogger)
	reconciler := core.NewReconciler(core.ReconcilerConfig{
		Queue:       appConfig.ReconcileQueue,
		MaxAttempts: appConfig.ReconcileMaxAttempts,
		BatchSize:   appConfig.ReconcileBatchSize,
	}, queue, chatRepo, zapLogger)
	reconciler.SetUserService(userService)

	sheetClient := core.NewSheetClient(core.SheetClientConfig{
		BaseURL:   appConfig.SheetAPIURL,
		RateLimit: appConfig.SheetRateLimit,
		Timeout:   appConfig.SheetTimeout,
		CacheTTL:  appConfig.SheetCacheTTL,
	}, sheetCache, zapLogger)
	chatService := core.NewChatService(chatRepo, userService, sheetClient, reconciler, zapLogger)
	subscriptionService := core.NewSubscriptionService(subscriptionRepo, zapLogger)

	scheduler, err := core.NewReconcileScheduler(reconciler, appConfig.ReconcileSchedule, time.Minute, zapLogger)
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to schedule reconciliation", zap.Error(err))
	}
	scheduler.Start()
	defer func() { <-scheduler.Stop().Done() }()

	if appConfig.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured")
	}

	var authMW *middleware.AuthMiddleware
	if appConfig.AuthEnabled {
		authMW = middleware.NewAuthMiddleware(db.GetFirebaseAuthClient(), zapLogger)
	}
	api.SetupRoutes(router, zapLogger, authMW, userService, chatService, subscriptionService)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", appConfig.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("address", httpServer.Addr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("Server exiting gracefully")
}
