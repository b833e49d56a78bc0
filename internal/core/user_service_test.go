package core_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/mocks"
	"gptsolver-backend-go/internal/models"
)

func newUserFixture(t *testing.T) (core.UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return core.NewUserService(repo, zap.NewNop()), repo
}

func TestUserService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("should store new users on the basic plan", func(t *testing.T) {
		req := require.New(t)
		svc, repo := newUserFixture(t)

		id, err := svc.Create(ctx, "ana@example.com", "Ana")
		req.NoError(err)
		req.NotEmpty(id)

		stored := repo.get(id)
		req.NotNil(stored)
		assert.Equal(t, "ana@example.com", stored.Email)
		assert.Equal(t, models.DefaultPlan, stored.Plan)
		assert.Zero(t, stored.TotalTokens)
		assert.Empty(t, stored.Chats)
	})

	for _, email := range []string{"", "not-an-email", "ana@"} {
		t.Run("should reject email "+email, func(t *testing.T) {
			svc, _ := newUserFixture(t)
			_, err := svc.Create(ctx, email, "Ana")
			require.ErrorIs(t, err, core.ErrValidation)
		})
	}

	t.Run("should wrap repository failures", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		repo := mocks.NewMockUserRepository(ctrl)
		svc := core.NewUserService(repo, zap.NewNop())
		boom := errors.New("firestore unavailable")

		repo.EXPECT().Create(ctx, gomock.Any()).Return("", boom)

		_, err := svc.Create(ctx, "ana@example.com", "Ana")
		req.ErrorIs(err, boom)
	})
}

func TestUserService_ShowByEmail(t *testing.T) {
	ctx := context.Background()
	svc, repo := newUserFixture(t)
	id := repo.put(&models.User{Email: "ana@example.com", Chats: []string{}})
	repo.put(&models.User{Email: "dup@example.com"})
	repo.put(&models.User{Email: "dup@example.com"})

	user, err := svc.ShowByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)

	_, err = svc.ShowByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.ShowByEmail(ctx, "dup@example.com")
	assert.ErrorIs(t, err, core.ErrIntegrity)

	_, err = svc.ShowByEmail(ctx, "bad")
	assert.ErrorIs(t, err, core.ErrValidation)
}

func TestUserService_ShowMissing(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Show(context.Background(), "ghost")
	require.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.ShowTokensCount(context.Background(), "ghost")
	require.ErrorIs(t, err, core.ErrNotFound)

	require.ErrorIs(t, svc.Delete(context.Background(), "ghost"), core.ErrNotFound)
}

func TestUserService_Tokens(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		start   int64
		op      func(core.UserService, string) error
		want    int64
		wantErr error
	}{
		{
			name:  "AddTokens credits the magnitude of the delta",
			start: 10,
			op:    func(s core.UserService, id string) error { return s.AddTokens(ctx, id, -5) },
			want:  15,
		},
		{
			name:  "RemoveTokens debits the magnitude of the delta",
			start: 10,
			op:    func(s core.UserService, id string) error { return s.RemoveTokens(ctx, id, -4) },
			want:  6,
		},
		{
			name:  "RemoveTokens may drain the balance to zero",
			start: 10,
			op:    func(s core.UserService, id string) error { return s.RemoveTokens(ctx, id, -10) },
			want:  0,
		},
		{
			name:    "RemoveTokens never goes negative",
			start:   3,
			op:      func(s core.UserService, id string) error { return s.RemoveTokens(ctx, id, -4) },
			want:    3,
			wantErr: core.ErrValidation,
		},
		{
			name:    "AddTokens rejects a credit that overflows the balance",
			start:   1,
			op:      func(s core.UserService, id string) error { return s.AddTokens(ctx, id, math.MinInt64) },
			want:    1,
			wantErr: core.ErrValidation,
		},
		{
			name:    "zero delta is rejected",
			start:   3,
			op:      func(s core.UserService, id string) error { return s.AddTokens(ctx, id, 0) },
			want:    3,
			wantErr: core.ErrValidation,
		},
		{
			name:    "positive delta is rejected",
			start:   3,
			op:      func(s core.UserService, id string) error { return s.RemoveTokens(ctx, id, 2) },
			want:    3,
			wantErr: core.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newUserFixture(t)
			id := repo.put(&models.User{Email: "ana@example.com", TotalTokens: tt.start})

			err := tt.op(svc, id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			count, err := svc.ShowTokensCount(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestUserService_Chats(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, repo := newUserFixture(t)
	id := repo.put(&models.User{Email: "ana@example.com", Chats: []string{}})

	req.NoError(svc.AddChat(ctx, id, "c1"))
	req.NoError(svc.AddChat(ctx, id, "c2"))
	req.Equal([]string{"c1", "c2"}, repo.get(id).Chats)

	req.NoError(svc.RemoveChat(ctx, id, "c1"))
	req.Equal([]string{"c2"}, repo.get(id).Chats)

	// Removing a chat that is not listed leaves the user untouched.
	before := repo.get(id).Version
	req.NoError(svc.RemoveChat(ctx, id, "c1"))
	req.Equal(before, repo.get(id).Version)

	req.ErrorIs(svc.AddChat(ctx, "ghost", "c3"), core.ErrNotFound)
	req.ErrorIs(svc.RemoveChat(ctx, "ghost", "c3"), core.ErrNotFound)
}

func TestUserService_UpdateReplacesRecord(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc, repo := newUserFixture(t)
	id := repo.put(&models.User{Email: "ana@example.com", Name: "Ana", Plan: "basic"})

	req.NoError(svc.Update(ctx, &models.User{ID: id, Email: "ana@example.com", Name: "Ana Maria", Plan: "pro"}))
	stored := repo.get(id)
	req.Equal("Ana Maria", stored.Name)
	req.Equal("pro", stored.Plan)

	req.ErrorIs(svc.Update(ctx, &models.User{ID: "ghost", Email: "x@example.com"}), core.ErrNotFound)
	req.ErrorIs(svc.Update(ctx, &models.User{ID: id, Email: "broken"}), core.ErrValidation)
	req.ErrorIs(svc.Update(ctx, &models.User{ID: id, Email: "ana@example.com", TotalTokens: -1}), core.ErrValidation)
	req.Zero(repo.get(id).TotalTokens)
}
