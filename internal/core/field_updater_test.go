package core_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/db"
	"gptsolver-backend-go/internal/mocks"
	"gptsolver-backend-go/internal/models"
)

func TestFieldUpdater_UpdateField(t *testing.T) {
	ctx := context.Background()
	version := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	stored := func() *models.User {
		return &models.User{
			ID:          "u1",
			Email:       "ana@example.com",
			Name:        "Ana",
			TotalTokens: 10,
			Plan:        "basic",
			Chats:       []string{"c1"},
			Version:     version,
		}
	}

	t.Run("should write the field with the read version as precondition", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		updater := core.NewFieldUpdater(repo)

		repo.EXPECT().GetByID(ctx, "u1").Return(stored(), nil).Times(1)
		repo.EXPECT().UpdateField(ctx, "u1", "chats", []string{"c1", "c2"}, version).Return(nil).Times(1)

		err := updater.UpdateField(ctx, "u1", func(u *models.User) core.FieldUpdate {
			return core.FieldUpdate{Field: "chats", Value: append(append([]string{}, u.Chats...), "c2")}
		})
		req.NoError(err)
	})

	t.Run("should fail NotFound when the user is absent", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		updater := core.NewFieldUpdater(repo)

		repo.EXPECT().GetByID(ctx, "ghost").Return(nil, fmt.Errorf("wrapped: %w", db.ErrNotFound))
		repo.EXPECT().UpdateField(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := updater.UpdateField(ctx, "ghost", func(*models.User) core.FieldUpdate {
			t.Fatal("transform must not run for a missing user")
			return core.FieldUpdate{}
		})
		req.ErrorIs(err, core.ErrNotFound)
	})

	rejected := []struct {
		name   string
		update core.FieldUpdate
		class  error
	}{
		{"unknown field", core.FieldUpdate{Field: "createdAt", Value: "x"}, core.ErrValidation},
		{"empty field", core.FieldUpdate{Field: "", Value: "x"}, core.ErrValidation},
		{"nil value", core.FieldUpdate{Field: "plan", Value: nil}, core.ErrNoOp},
		{"typed nil slice", core.FieldUpdate{Field: "chats", Value: []string(nil)}, core.ErrNoOp},
		{"unchanged scalar", core.FieldUpdate{Field: "totalTokens", Value: int64(10)}, core.ErrNoOp},
		{"unchanged slice", core.FieldUpdate{Field: "chats", Value: []string{"c1"}}, core.ErrNoOp},
		{"wrong value type", core.FieldUpdate{Field: "totalTokens", Value: 11}, core.ErrValidation},
	}
	for _, tt := range rejected {
		t.Run("should not write when "+tt.name, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockUserRepository(ctrl)
			updater := core.NewFieldUpdater(repo)

			repo.EXPECT().GetByID(ctx, "u1").Return(stored(), nil).Times(1)
			repo.EXPECT().UpdateField(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

			err := updater.UpdateField(ctx, "u1", func(*models.User) core.FieldUpdate { return tt.update })
			req.ErrorIs(err, tt.class)
		})
	}

	t.Run("should report a stale write when the precondition fails", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		updater := core.NewFieldUpdater(repo)

		repo.EXPECT().GetByID(ctx, "u1").Return(stored(), nil)
		repo.EXPECT().UpdateField(ctx, "u1", "plan", "pro", version).
			Return(fmt.Errorf("user changed: %w", db.ErrPreconditionFailed))

		err := updater.UpdateField(ctx, "u1", func(*models.User) core.FieldUpdate {
			return core.FieldUpdate{Field: "plan", Value: "pro"}
		})
		req.ErrorIs(err, core.ErrStale)
	})
}

func TestFieldUpdater_ConcurrentWritersOneLoses(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo := newFakeUserRepo()
	id := repo.put(&models.User{Email: "ana@example.com", Plan: "basic", Chats: []string{}})
	updater := core.NewFieldUpdater(repo)

	// The second writer reads the same version as the first one, then the
	// first one commits before it.
	err := updater.UpdateField(ctx, id, func(u *models.User) core.FieldUpdate {
		innerErr := core.NewFieldUpdater(repo).UpdateField(ctx, id, func(*models.User) core.FieldUpdate {
			return core.FieldUpdate{Field: "plan", Value: "plus"}
		})
		req.NoError(innerErr)
		return core.FieldUpdate{Field: "plan", Value: "pro"}
	})

	req.ErrorIs(err, core.ErrStale)
	req.Equal("plus", repo.get(id).Plan)
}
