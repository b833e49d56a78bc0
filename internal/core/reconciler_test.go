package core_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gptsolver-backend-go/internal/core"
	"gptsolver-backend-go/internal/models"
	"gptsolver-backend-go/pkg/messagequeue"
)

const reconcileQueue = "test:reconcile"

type reconcilerFixture struct {
	reconciler *core.QueueReconciler
	queue      *messagequeue.RedisQueue
	userRepo   *fakeUserRepo
	chatRepo   *fakeChatRepo
	ownerID    string
}

func newReconcilerFixture(t *testing.T, maxAttempts int) *reconcilerFixture {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	f := &reconcilerFixture{
		queue:    messagequeue.NewRedisQueue(rdb, zap.NewNop()),
		userRepo: newFakeUserRepo(),
		chatRepo: newFakeChatRepo(),
	}
	f.reconciler = core.NewReconciler(core.ReconcilerConfig{
		Queue:       reconcileQueue,
		MaxAttempts: maxAttempts,
		BatchSize:   10,
	}, f.queue, f.chatRepo, zap.NewNop())
	f.reconciler.SetUserService(core.NewUserService(f.userRepo, zap.NewNop()))
	f.ownerID = f.userRepo.put(&models.User{Email: "ana@example.com", Chats: []string{}})
	return f
}

func (f *reconcilerFixture) newChat(t *testing.T, attached bool) string {
	t.Helper()
	chatID, err := f.chatRepo.Create(context.Background(), &models.Chat{OwnerID: f.ownerID, Name: "Conversa"})
	require.NoError(t, err)
	if attached {
		owner := f.userRepo.get(f.ownerID)
		owner.Chats = append(owner.Chats, chatID)
		f.userRepo.put(owner)
	}
	return chatID
}

func (f *reconcilerFixture) queued(t *testing.T) int64 {
	t.Helper()
	n, err := f.queue.Len(context.Background(), reconcileQueue)
	require.NoError(t, err)
	return n
}

func TestReconciler_Sweep(t *testing.T) {
	ctx := context.Background()

	t.Run("detach_chat removes the dangling chat id", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, 3)
		chatID := f.newChat(t, true)
		keep := f.newChat(t, true)
		req.NoError(f.chatRepo.Delete(ctx, chatID))

		req.NoError(f.reconciler.Enqueue(ctx, models.ReconciliationEvent{ID: "e1", Kind: models.ReconcileDetachChat, UserID: f.ownerID, ChatID: chatID}))
		n, err := f.reconciler.Sweep(ctx)
		req.NoError(err)
		req.Equal(1, n)

		req.Equal([]string{keep}, f.userRepo.get(f.ownerID).Chats)
		req.Zero(f.queued(t))
	})

	t.Run("detach_chat for a deleted owner is settled", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, 3)
		req.NoError(f.userRepo.Delete(ctx, f.ownerID))

		req.NoError(f.reconciler.Enqueue(ctx, models.ReconciliationEvent{ID: "e1", Kind: models.ReconcileDetachChat, UserID: f.ownerID, ChatID: "chat-9"}))
		_, err := f.reconciler.Sweep(ctx)
		req.NoError(err)
		req.Zero(f.queued(t))
	})

	t.Run("delete_chat deletes the unlisted chat", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, 3)
		chatID := f.newChat(t, false)

		req.NoError(f.reconciler.Enqueue(ctx, models.ReconciliationEvent{ID: "e1", Kind: models.ReconcileDeleteChat, UserID: f.ownerID, ChatID: chatID}))
		_, err := f.reconciler.Sweep(ctx)
		req.NoError(err)

		req.False(f.chatRepo.exists(chatID))
		req.Zero(f.queued(t))
	})

	t.Run("orphan_chat deletes the chat and any attachment", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, 3)
		chatID := f.newChat(t, true)

		req.NoError(f.reconciler.Enqueue(ctx, models.ReconciliationEvent{ID: "e1", Kind: models.ReconcileOrphanChat, UserID: f.ownerID, ChatID: chatID}))
		_, err := f.reconciler.Sweep(ctx)
		req.NoError(err)

		req.False(f.chatRepo.exists(chatID))
		req.Empty(f.userRepo.get(f.ownerID).Chats)
	})

	t.Run("failed events are retried until max attempts", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, 2)
		chatID := f.newChat(t, false)
		f.chatRepo.deleteErr = errors.New("unavailable")

		req.NoError(f.reconciler.Enqueue(ctx, models.ReconciliationEvent{ID: "e1", Kind: models.ReconcileDeleteChat, UserID: f.ownerID, ChatID: chatID}))

		n, err := f.reconciler.Sweep(ctx)
		req.NoError(err)
		req.Equal(1, n)
		req.EqualValues(1, f.queued(t))

		var retried models.ReconciliationEvent
		_, err = f.queue.Consume(ctx, reconcileQueue, 1, func(body []byte) error {
			return json.Unmarshal(body, &retried)
		})
		req.NoError(err)
		req.Equal("e1", retried.ID)
		req.Equal(1, retried.Attempts)
		req.Contains(retried.Reason, "unavailable")

		req.NoError(f.reconciler.Enqueue(ctx, retried))
		_, err = f.reconciler.Sweep(ctx)
		req.NoError(err)
		req.Zero(f.queued(t))
		req.True(f.chatRepo.exists(chatID))
	})

	t.Run("undecodable events are dropped", func(t *testing.T) {
		req := require.New(t)
		f := newReconcilerFixture(t, 3)
		req.NoError(f.queue.Publish(ctx, reconcileQueue, []byte("{")))

		n, err := f.reconciler.Sweep(ctx)
		req.NoError(err)
		req.Equal(1, n)
		req.Zero(f.queued(t))
	})
}

func TestReconciler_WithoutQueue(t *testing.T) {
	req := require.New(t)
	r := core.NewReconciler(core.ReconcilerConfig{Queue: reconcileQueue, MaxAttempts: 1, BatchSize: 1}, nil, newFakeChatRepo(), zap.NewNop())

	req.NoError(r.Enqueue(context.Background(), models.ReconciliationEvent{ID: "e1", Kind: models.ReconcileDeleteChat}))
	n, err := r.Sweep(context.Background())
	req.NoError(err)
	req.Zero(n)
}

func TestNewReconcileScheduler(t *testing.T) {
	r := &recordingReconciler{}

	_, err := core.NewReconcileScheduler(r, "every now and then", time.Second, zap.NewNop())
	require.Error(t, err)

	c, err := core.NewReconcileScheduler(r, "@every 1m", time.Second, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, c.Entries(), 1)
}
