package messagequeue

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestQueue(t *testing.T) *RedisQueue {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, client.Ping(context.Background()).Err())

	q := NewRedisQueue(client, zap.NewNop())
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func TestRedisQueue_PublishConsumeFIFO(t *testing.T) {
	req := require.New(t)
	q := setupTestQueue(t)
	ctx := context.Background()

	for _, body := range []string{"a", "b", "c"} {
		req.NoError(q.Publish(ctx, "events", []byte(body)))
	}

	n, err := q.Len(ctx, "events")
	req.NoError(err)
	req.EqualValues(3, n)

	var got []string
	consumed, err := q.Consume(ctx, "events", 2, func(body []byte) error {
		got = append(got, string(body))
		return nil
	})
	req.NoError(err)
	req.Equal(2, consumed)
	req.Equal([]string{"a", "b"}, got)

	n, err = q.Len(ctx, "events")
	req.NoError(err)
	req.EqualValues(1, n)
}

func TestRedisQueue_ConsumeEmpty(t *testing.T) {
	q := setupTestQueue(t)

	consumed, err := q.Consume(context.Background(), "empty", 10, func([]byte) error {
		t.Fatal("handler must not be called")
		return nil
	})
	require.NoError(t, err)
	require.Zero(t, consumed)
}

func TestRedisQueue_HandlerErrorStillRemovesMessage(t *testing.T) {
	req := require.New(t)
	q := setupTestQueue(t)
	ctx := context.Background()

	req.NoError(q.Publish(ctx, "events", []byte("bad")))

	consumed, err := q.Consume(ctx, "events", 5, func([]byte) error {
		return errors.New("handler failed")
	})
	req.NoError(err)
	req.Equal(1, consumed)

	n, err := q.Len(ctx, "events")
	req.NoError(err)
	req.Zero(n)
}
