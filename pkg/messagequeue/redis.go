package messagequeue

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisQueue implements the MessageQueue interface on a Redis list.
// Messages are pushed on the left and popped from the right.
type RedisQueue struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisQueue creates a new RedisQueue on top of an existing client.
func NewRedisQueue(client *redis.Client, logger *zap.Logger) *RedisQueue {
	return &RedisQueue{client: client, logger: logger}
}

// Publish appends a message to a queue.
func (q *RedisQueue) Publish(ctx context.Context, queueName string, body []byte) error {
	if err := q.client.LPush(ctx, queueName, body).Err(); err != nil {
		return fmt.Errorf("failed to publish to queue %s: %w", queueName, err)
	}
	q.logger.Debug("Published message", zap.String("queue", queueName))
	return nil
}

// Consume pops up to max messages and passes each to handler.
func (q *RedisQueue) Consume(ctx context.Context, queueName string, max int, handler func(body []byte) error) (int, error) {
	consumed := 0
	for consumed < max {
		body, err := q.client.RPop(ctx, queueName).Bytes()
		if errors.Is(err, redis.Nil) {
			break
		}
		if err != nil {
			return consumed, fmt.Errorf("failed to consume from queue %s: %w", queueName, err)
		}
		consumed++

		if err := handler(body); err != nil {
			q.logger.Warn("Message handler failed", zap.String("queue", queueName), zap.Error(err))
		}
	}
	return consumed, nil
}

// Len returns the number of messages waiting on a queue.
func (q *RedisQueue) Len(ctx context.Context, queueName string) (int64, error) {
	n, err := q.client.LLen(ctx, queueName).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to read length of queue %s: %w", queueName, err)
	}
	return n, nil
}

// Close closes the underlying Redis client.
func (q *RedisQueue) Close() error {
	return q.client.Close()
}
