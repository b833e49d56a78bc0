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

const subscriptionsCollection = "subscriptions"

type firestoreSubscriptionRepository struct {
	client *firestore.Client
}

// NewFirestoreSubscriptionRepository creates a new instance of firestoreSubscriptionRepository.
func NewFirestoreSubscriptionRepository(client *firestore.Client) SubscriptionRepository {
	if client == nil {
		panic("Firestore client is not initialized for SubscriptionRepository")
	}
	return &firestoreSubscriptionRepository{client: client}
}

func (r *firestoreSubscriptionRepository) Create(ctx context.Context, subscription *models.Subscription) (string, error) {
	docRef := r.client.Collection(subscriptionsCollection).NewDoc()
	subscription.ID = docRef.ID

	if _, err := docRef.Create(ctx, subscription); err != nil {
		return "", fmt.Errorf("failed to create subscription: %w", err)
	}
	return docRef.ID, nil
}

func (r *firestoreSubscriptionRepository) GetByID(ctx context.Context, subscriptionID string) (*models.Subscription, error) {
	if subscriptionID == "" {
		return nil, errors.New("subscriptionID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(subscriptionsCollection).Doc(subscriptionID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("subscription with ID '%s' not found: %w", subscriptionID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get subscription with ID '%s': %w", subscriptionID, err)
	}

	var subscription models.Subscription
	if err := docSnap.DataTo(&subscription); err != nil {
		return nil, fmt.Errorf("failed to decode subscription data for ID '%s': %w", subscriptionID, err)
	}
	subscription.ID = docSnap.Ref.ID
	return &subscription, nil
}

// ListByOwnerID returns every subscription of the owner, expired ones included.
// Filtering on endDate is left to the caller so the query needs no composite index.
func (r *firestoreSubscriptionRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*models.Subscription, error) {
	iter := r.client.Collection(subscriptionsCollection).Where("ownerId", "==", ownerID).Documents(ctx)
	defer iter.Stop()

	var subscriptions []*models.Subscription
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate subscriptions for owner '%s': %w", ownerID, err)
		}
		var subscription models.Subscription
		if err := doc.DataTo(&subscription); err != nil {
			return nil, fmt.Errorf("failed to decode subscription data for ID '%s': %w", doc.Ref.ID, err)
		}
		subscription.ID = doc.Ref.ID
		subscriptions = append(subscriptions, &subscription)
	}
	return subscriptions, nil
}

func (r *firestoreSubscriptionRepository) Delete(ctx context.Context, subscriptionID string) error {
	if subscriptionID == "" {
		return errors.New("subscriptionID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(subscriptionsCollection).Doc(subscriptionID).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("subscription with ID '%s' not found for deletion: %w", subscriptionID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete subscription with ID '%s': %w", subscriptionID, err)
	}
	return nil
}
