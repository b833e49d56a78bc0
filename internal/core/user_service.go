package core

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/models"
)

// userService implements the UserService interface.
type userService struct {
	userRepo db.UserRepository
	updater  *FieldUpdater
	validate *validator.Validate
	logger   *zap.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(ur db.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		userRepo: ur,
		updater:  NewFieldUpdater(ur),
		validate: validator.New(),
		logger:   logger,
	}
}

func (s *userService) validateEmail(email string) error {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return ValidationFailed("email", fmt.Sprintf("invalid email: %s", email))
	}
	return nil
}

// Create registers a user on the basic plan with no tokens and no chats.
func (s *userService) Create(ctx context.Context, email, name string) (string, error) {
	if err := s.validateEmail(email); err != nil {
		return "", err
	}

	user := &models.User{
		Name:        name,
		Email:       email,
		TotalTokens: 0,
		Plan:        models.DefaultPlan,
		Chats:       []string{},
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return "", fmt.Errorf("failed to create user in repository: %w", err)
	}

	s.logger.Info("User created", zap.String("userID", userID))
	return userID, nil
}

func (s *userService) Show(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, translateRepoError(err, "user", userID)
	}
	return user, nil
}

// ShowByEmail returns the single user registered with email. More than one
// match means the email is registered twice.
func (s *userService) ShowByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}

	users, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}

	switch len(users) {
	case 0:
		return nil, &AppError{Err: ErrNotFound, Message: fmt.Sprintf("user not found with email %s", email)}
	case 1:
		return users[0], nil
	default:
		s.logger.Error("Duplicate email detected", zap.String("email", email), zap.Int("matches", len(users)))
		return nil, Integrity(fmt.Sprintf("email %s is registered %d times", email, len(users)))
	}
}

func (s *userService) ShowTokensCount(ctx context.Context, userID string) (int64, error) {
	user, err := s.Show(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.TotalTokens, nil
}

// Update replaces the whole user record. The last writer wins.
func (s *userService) Update(ctx context.Context, user *models.User) error {
	if err := s.validateEmail(user.Email); err != nil {
		return err
	}
	if user.TotalTokens < 0 {
		return ValidationFailed("totalTokens", fmt.Sprintf("totalTokens must not be negative: %d", user.TotalTokens))
	}
	if err := s.userRepo.Update(ctx, user); err != nil {
		return translateRepoError(err, "user", user.ID)
	}
	return nil
}

// Delete removes the user. Chats owned by the user are left in place.
func (s *userService) Delete(ctx context.Context, userID string) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return translateRepoError(err, "user", userID)
	}
	s.logger.Info("User deleted", zap.String("userID", userID))
	return nil
}

func validateTokenDelta(delta int64) error {
	if delta >= 0 {
		return ValidationFailed("tokens", fmt.Sprintf("token delta must be negative: %d", delta))
	}
	return nil
}

// AddTokens credits -delta tokens to the user. A credit that overflows the
// balance is rejected.
func (s *userService) AddTokens(ctx context.Context, userID string, delta int64) error {
	if err := validateTokenDelta(delta); err != nil {
		return err
	}
	var overflow bool
	err := s.updater.UpdateField(ctx, userID, func(u *models.User) FieldUpdate {
		total := u.TotalTokens - delta
		if total < 0 {
			overflow = true
			return FieldUpdate{Field: "totalTokens", Value: nil}
		}
		return FieldUpdate{Field: "totalTokens", Value: total}
	})
	if overflow {
		return ValidationFailed("tokens", fmt.Sprintf("crediting %d tokens to user %s overflows the balance", delta, userID))
	}
	return err
}

// RemoveTokens debits -delta tokens from the user. The balance never goes
// below zero.
func (s *userService) RemoveTokens(ctx context.Context, userID string, delta int64) error {
	if err := validateTokenDelta(delta); err != nil {
		return err
	}
	var insufficient bool
	err := s.updater.UpdateField(ctx, userID, func(u *models.User) FieldUpdate {
		total := u.TotalTokens + delta
		if total < 0 {
			insufficient = true
			return FieldUpdate{Field: "totalTokens", Value: nil}
		}
		return FieldUpdate{Field: "totalTokens", Value: total}
	})
	if insufficient {
		return ValidationFailed("tokens", fmt.Sprintf("user %s has fewer than %d tokens", userID, -delta))
	}
	return err
}

// AddChat appends chatID to the user's chats.
func (s *userService) AddChat(ctx context.Context, userID, chatID string) error {
	return s.updater.UpdateField(ctx, userID, func(u *models.User) FieldUpdate {
		chats := make([]string, 0, len(u.Chats)+1)
		chats = append(chats, u.Chats...)
		return FieldUpdate{Field: "chats", Value: append(chats, chatID)}
	})
}

// RemoveChat removes every occurrence of chatID from the user's chats. A chat
// that is not listed is not an error.
func (s *userService) RemoveChat(ctx context.Context, userID, chatID string) error {
	err := s.updater.UpdateField(ctx, userID, func(u *models.User) FieldUpdate {
		return FieldUpdate{Field: "chats", Value: lo.Filter(u.Chats, func(id string, _ int) bool {
			return id != chatID
		})}
	})
	if isNoOp(err) {
		return nil
	}
	return err
}
