package messagequeue

import "context"

// MessageQueue defines the interface for message queue services.
type MessageQueue interface {
	Publish(ctx context.Context, queueName string, body []byte) error
	// Consume hands up to max messages to handler, oldest first, and returns
	// how many were taken off the queue. It does not block waiting for new
	// messages. A message whose handler fails is still removed; callers
	// re-publish if they want a retry.
	Consume(ctx context.Context, queueName string, max int, handler func(body []byte) error) (int, error)
	Len(ctx context.Context, queueName string) (int64, error)
	Close() error
}
