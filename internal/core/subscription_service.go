package core

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/models"
)

type subscriptionService struct {
	subscriptionRepo db.SubscriptionRepository
	logger           *zap.Logger
	now              func() time.Time
}

// NewSubscriptionService creates a new SubscriptionService instance.
func NewSubscriptionService(sr db.SubscriptionRepository, logger *zap.Logger) SubscriptionService {
	return &subscriptionService{
		subscriptionRepo: sr,
		logger:           logger,
		now:              time.Now,
	}
}

func (s *subscriptionService) Plans() map[string]models.Plan {
	return Plans()
}

// Create subscribes ownerID to the plan named subscriptionType for 30 days.
func (s *subscriptionService) Create(ctx context.Context, ownerID, subscriptionType string) (string, error) {
	plan, ok := planCatalog[subscriptionType]
	if !ok {
		return "", ValidationFailed("type", fmt.Sprintf("invalid type: %s", subscriptionType))
	}

	subscription := &models.Subscription{
		OwnerID:          ownerID,
		SubscriptionType: subscriptionType,
		Price:            plan.Price,
		EndDate:          s.now().UTC().AddDate(0, 0, subscriptionPeriodDays),
	}
	id, err := s.subscriptionRepo.Create(ctx, subscription)
	if err != nil {
		return "", fmt.Errorf("failed to create subscription in repository: %w", err)
	}

	s.logger.Info("Subscription created", zap.String("subscriptionID", id), zap.String("ownerID", ownerID), zap.String("type", subscriptionType))
	return id, nil
}

func (s *subscriptionService) Show(ctx context.Context, subscriptionID string) (*models.Subscription, error) {
	subscription, err := s.subscriptionRepo.GetByID(ctx, subscriptionID)
	if err != nil {
		return nil, translateRepoError(err, "subscription", subscriptionID)
	}
	subscription.Active = subscription.IsActive(s.now())
	return subscription, nil
}

// ShowByOwnerID returns the owner's subscriptions that have not yet ended.
func (s *subscriptionService) ShowByOwnerID(ctx context.Context, ownerID string) ([]*models.Subscription, error) {
	subscriptions, err := s.subscriptionRepo.ListByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions of owner '%s': %w", ownerID, err)
	}

	now := s.now()
	active := lo.Filter(subscriptions, func(sub *models.Subscription, _ int) bool {
		return sub.IsActive(now)
	})
	if len(active) == 0 {
		return nil, &AppError{Err: ErrNotFound, Message: fmt.Sprintf("no active subscriptions found for owner %s", ownerID)}
	}
	for _, sub := range active {
		sub.Active = true
	}
	return active, nil
}

func (s *subscriptionService) Delete(ctx context.Context, subscriptionID string) error {
	if err := s.subscriptionRepo.Delete(ctx, subscriptionID); err != nil {
		return translateRepoError(err, "subscription", subscriptionID)
	}
	return nil
}
