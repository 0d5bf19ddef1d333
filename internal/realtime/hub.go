// Package realtime delivers pushed notification payloads to a user's
// connected sessions.
package realtime

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Hub publishes payloads to a user and lets connected sessions subscribe
type Hub interface {
	Publish(ctx context.Context, userID uuid.UUID, payload []byte) error
	// Subscribe returns a channel closed once ctx is done.
	Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error)
	Ping(ctx context.Context) error
}

const subscriberBuffer = 16

// MemoryHub fans out within a single process
type MemoryHub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[chan []byte]struct{}
}

// NewMemoryHub creates an in-process hub
func NewMemoryHub() *MemoryHub {
	return &MemoryHub{subs: make(map[uuid.UUID]map[chan []byte]struct{})}
}

// Publish delivers the payload to every current subscriber of the user.
// Slow subscribers whose buffer is full miss the payload.
func (h *MemoryHub) Publish(_ context.Context, userID uuid.UUID, payload []byte) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[userID] {
		select {
		case ch <- payload:
		default:
		}
	}
	return nil
}

// Subscribe registers a session for the user until ctx is cancelled
func (h *MemoryHub) Subscribe(ctx context.Context, userID uuid.UUID) (<-chan []byte, error) {
	ch := make(chan []byte, subscriberBuffer)

	h.mu.Lock()
	if h.subs[userID] == nil {
		h.subs[userID] = make(map[chan []byte]struct{})
	}
	h.subs[userID][ch] = struct{}{}
	h.mu.Unlock()

	go func() {
		<-ctx.Done()
		h.mu.Lock()
		delete(h.subs[userID], ch)
		if len(h.subs[userID]) == 0 {
			delete(h.subs, userID)
		}
		h.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// Ping always succeeds for the in-process hub
func (h *MemoryHub) Ping(context.Context) error {
	return nil
}

// Subscribers returns how many sessions are connected for the user
func (h *MemoryHub) Subscribers(userID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[userID])
}
