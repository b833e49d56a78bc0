package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gptsolver-backend-go/internal/models"
)

const usersCollection = "users"

// firestoreUserRepository implements the UserRepository interface using Firestore.
type firestoreUserRepository struct {
	client *firestore.Client
}

// NewFirestoreUserRepository creates a new instance of firestoreUserRepository.
func NewFirestoreUserRepository(client *firestore.Client) UserRepository {
	if client == nil {
		panic("Firestore client is not initialized for UserRepository")
	}
	return &firestoreUserRepository{client: client}
}

// Create adds a new user document with an auto-generated ID.
// CreatedAt is filled in by Firestore through the serverTimestamp tag.
func (r *firestoreUserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	if user.Chats == nil {
		user.Chats = []string{}
	}
	docRef := r.client.Collection(usersCollection).NewDoc()
	user.ID = docRef.ID

	if _, err := docRef.Create(ctx, user); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return "", fmt.Errorf("user with ID '%s' already exists: %w", user.ID, err)
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}
	return docRef.ID, nil
}

// GetByID retrieves a user document by its ID.
func (r *firestoreUserRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	if userID == "" {
		return nil, errors.New("userID cannot be empty for GetByID operation")
	}
	docSnap, err := r.client.Collection(usersCollection).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, fmt.Errorf("user with ID '%s' not found: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user with ID '%s': %w", userID, err)
	}
	return decodeUser(docSnap)
}

// FindByEmail returns every user document whose email equals email.
func (r *firestoreUserRepository) FindByEmail(ctx context.Context, email string) ([]*models.User, error) {
	iter := r.client.Collection(usersCollection).Where("email", "==", email).Documents(ctx)
	defer iter.Stop()

	var users []*models.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate users with email '%s': %w", email, err)
		}
		user, err := decodeUser(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// Update overwrites every mutable field of the user. createdAt is preserved.
// Update fails with NotFound when the document does not exist.
func (r *firestoreUserRepository) Update(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		return errors.New("user ID cannot be empty for Update operation")
	}
	chats := user.Chats
	if chats == nil {
		chats = []string{}
	}
	_, err := r.client.Collection(usersCollection).Doc(user.ID).Update(ctx, []firestore.Update{
		{Path: "name", Value: user.Name},
		{Path: "email", Value: user.Email},
		{Path: "totalTokens", Value: user.TotalTokens},
		{Path: "plan", Value: user.Plan},
		{Path: "chats", Value: chats},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with ID '%s' not found for update: %w", user.ID, ErrNotFound)
		}
		return fmt.Errorf("failed to update user with ID '%s': %w", user.ID, err)
	}
	return nil
}

// UpdateField writes a single field guarded by the document update time read
// by the caller.
func (r *firestoreUserRepository) UpdateField(ctx context.Context, userID, field string, value interface{}, version time.Time) error {
	if userID == "" {
		return errors.New("userID cannot be empty for UpdateField operation")
	}
	var preconds []firestore.Precondition
	if !version.IsZero() {
		preconds = append(preconds, firestore.LastUpdateTime(version))
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Update(ctx,
		[]firestore.Update{{Path: field, Value: value}},
		preconds...,
	)
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			return fmt.Errorf("user with ID '%s' not found for field update: %w", userID, ErrNotFound)
		case codes.FailedPrecondition, codes.Aborted:
			return fmt.Errorf("user with ID '%s' changed since %s: %w", userID, version.Format(time.RFC3339Nano), ErrPreconditionFailed)
		}
		return fmt.Errorf("failed to update field '%s' of user '%s': %w", field, userID, err)
	}
	return nil
}

// Delete removes a user document. It does not touch the user's chats.
func (r *firestoreUserRepository) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return errors.New("userID cannot be empty for Delete operation")
	}
	_, err := r.client.Collection(usersCollection).Doc(userID).Delete(ctx, firestore.Exists)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return fmt.Errorf("user with ID '%s' not found for deletion: %w", userID, ErrNotFound)
		}
		return fmt.Errorf("failed to delete user with ID '%s': %w", userID, err)
	}
	return nil
}

func decodeUser(docSnap *firestore.DocumentSnapshot) (*models.User, error) {
	var user models.User
	if err := docSnap.DataTo(&user); err != nil {
		return nil, fmt.Errorf("failed to decode user data for ID '%s': %w", docSnap.Ref.ID, err)
	}
	user.ID = docSnap.Ref.ID
	user.Version = docSnap.UpdateTime
	if user.Chats == nil {
		user.Chats = []string{}
	}
	return &user, nil
}
