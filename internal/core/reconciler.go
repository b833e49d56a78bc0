package core

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/models"
	"gptsolver-backend-go/pkg/messagequeue"
)

// ReconcilerConfig configures the reconciliation queue.
type ReconcilerConfig struct {
	Queue       string
	MaxAttempts int
	BatchSize   int
}

// QueueReconciler keeps reconciliation events on a message queue and applies
// them on Sweep. With a nil queue events are only logged.
type QueueReconciler struct {
	queue       messagequeue.MessageQueue
	queueName   string
	maxAttempts int
	batchSize   int
	chatRepo    db.ChatRepository
	users       UserService
	logger      *zap.Logger
}

// NewReconciler creates a Reconciler. Pass a nil queue to disable persistence.
func NewReconciler(cfg ReconcilerConfig, q messagequeue.MessageQueue, cr db.ChatRepository, logger *zap.Logger) *QueueReconciler {
	return &QueueReconciler{
		queue:       q,
		queueName:   cfg.Queue,
		maxAttempts: cfg.MaxAttempts,
		batchSize:   cfg.BatchSize,
		chatRepo:    cr,
		logger:      logger,
	}
}

// SetUserService wires the user service. The chat service needs the
// reconciler and the reconciler needs the user service, so one side is
// attached after construction.
func (r *QueueReconciler) SetUserService(us UserService) {
	r.users = us
}

func (r *QueueReconciler) Enqueue(ctx context.Context, event models.ReconciliationEvent) error {
	fields := []zap.Field{
		zap.String("eventID", event.ID),
		zap.String("kind", string(event.Kind)),
		zap.String("userID", event.UserID),
		zap.String("chatID", event.ChatID),
		zap.Int("attempts", event.Attempts),
		zap.String("reason", event.Reason),
	}
	if r.queue == nil {
		r.logger.Warn("Reconciliation needed, no queue configured", fields...)
		return nil
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode reconciliation event: %w", err)
	}
	if err := r.queue.Publish(ctx, r.queueName, body); err != nil {
		return err
	}
	r.logger.Info("Reconciliation event enqueued", fields...)
	return nil
}

// Sweep applies up to one batch of queued events and returns how many were
// taken off the queue. Failed events are re-enqueued until they reach the
// maximum number of attempts.
func (r *QueueReconciler) Sweep(ctx context.Context) (int, error) {
	if r.queue == nil {
		return 0, nil
	}

	var retry []models.ReconciliationEvent
	n, err := r.queue.Consume(ctx, r.queueName, r.batchSize, func(body []byte) error {
		var event models.ReconciliationEvent
		if err := json.Unmarshal(body, &event); err != nil {
			r.logger.Error("Dropping undecodable reconciliation event", zap.ByteString("body", body), zap.Error(err))
			return err
		}

		if err := r.apply(ctx, event); err != nil {
			event.Attempts++
			event.Reason = err.Error()
			if event.Attempts >= r.maxAttempts {
				r.logger.Error("Dropping reconciliation event after max attempts",
					zap.String("eventID", event.ID),
					zap.String("kind", string(event.Kind)),
					zap.String("chatID", event.ChatID),
					zap.Int("attempts", event.Attempts),
					zap.Error(err),
				)
				return err
			}
			retry = append(retry, event)
			return err
		}

		r.logger.Info("Reconciliation event applied",
			zap.String("eventID", event.ID),
			zap.String("kind", string(event.Kind)),
			zap.String("chatID", event.ChatID),
		)
		return nil
	})

	for _, event := range retry {
		if enqueueErr := r.Enqueue(ctx, event); enqueueErr != nil {
			r.logger.Error("Failed to re-enqueue reconciliation event", zap.String("eventID", event.ID), zap.Error(enqueueErr))
		}
	}
	return n, err
}

func (r *QueueReconciler) apply(ctx context.Context, event models.ReconciliationEvent) error {
	switch event.Kind {
	case models.ReconcileDetachChat:
		if r.users == nil {
			return errors.New("reconciler has no user service")
		}
		err := r.users.RemoveChat(ctx, event.UserID, event.ChatID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	case models.ReconcileDeleteChat:
		return r.deleteChat(ctx, event.ChatID)
	case models.ReconcileOrphanChat:
		if err := r.deleteChat(ctx, event.ChatID); err != nil {
			return err
		}
		// The attach may have been written even though it reported an error.
		if r.users == nil {
			return nil
		}
		err := r.users.RemoveChat(ctx, event.UserID, event.ChatID)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	default:
		return fmt.Errorf("unknown reconciliation kind %q", event.Kind)
	}
}

func (r *QueueReconciler) deleteChat(ctx context.Context, chatID string) error {
	err := r.chatRepo.Delete(ctx, chatID)
	if errors.Is(err, db.ErrNotFound) {
		return nil
	}
	return err
}
