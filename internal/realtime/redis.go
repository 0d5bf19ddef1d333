package realtime

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisHub fans out across processes through redis pub/sub
type RedisHub struct {
	client *redis.Client
	prefix string
}

// NewRedisHub creates a hub on an existing client
func NewRedisHub(client *redis.Client) *RedisHub {
	return &RedisHub{client: client, prefix: "notifications:"}
}

// Channel returns the pub/sub channel of a user
func (h *RedisHub) Channel(userID uuid.UUID) string {
	return h.prefix + userID.String()
}

// Publish sends the payload to the user's channel
func (h *RedisHub) Publish(ctx context.Context, userID uuid.UUID, payload []byte) error {
	if err := h.client.Publish(ctx, h.Channel(userID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

// Subscribe listens on the user's channel until ctx is cancelled
func (h *RedisHub) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error) {
	pubsub := h.client.Subscribe(ctx, h.Channel(userID))
	// Wait for the subscription confirmation so publishes right after return are not lost
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe: %w", err)
	}

	out := make(chan []byte, subscriberBuffer)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

// Ping checks the redis connection
func (h *RedisHub) Ping(ctx context.Context) error {
	return h.client.Ping(ctx).Err()
}
