package sessionbus

import (
	"context"
	"log/slog"
	"sync"

	"voterdesk/internal/domain/entity"

	"github.com/google/uuid"
)

type subscriber struct {
	id uint64
	fn func(entity.SessionEvent)
}

// localBus delivers session events to subscribers of the same process.
type localBus struct {
	mu          sync.Mutex
	nextID      uint64
	subscribers map[uuid.UUID][]subscriber
	logger      *slog.Logger
}

func newLocalBus(logger *slog.Logger) *localBus {
	return &localBus{
		subscribers: make(map[uuid.UUID][]subscriber),
		logger:      logger,
	}
}

func (b *localBus) Publish(_ context.Context, event entity.SessionEvent) error {
	b.dispatch(event)

	return nil
}

// dispatch calls the subscribers of event.IdentityID outside the lock, so a
// callback may unsubscribe itself.
func (b *localBus) dispatch(event entity.SessionEvent) {
	b.mu.Lock()
	targets := append([]subscriber(nil), b.subscribers[event.IdentityID]...)
	b.mu.Unlock()

	b.logger.Debug("Dispatching session event",
		slog.String("kind", string(event.Kind)),
		slog.Any("identity_id", event.IdentityID),
		slog.Int("subscribers", len(targets)),
	)

	for _, target := range targets {
		target.fn(event)
	}
}

// Subscribe registers fn for events about identityID. The returned function
// may be called any number of times.
func (b *localBus) Subscribe(identityID uuid.UUID, fn func(entity.SessionEvent)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subscribers[identityID] = append(b.subscribers[identityID], subscriber{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once

	return func() {
		once.Do(func() { b.remove(identityID, id) })
	}
}

func (b *localBus) remove(identityID uuid.UUID, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	current := b.subscribers[identityID]
	for i, sub := range current {
		if sub.id != id {
			continue
		}

		remaining := append(current[:i:i], current[i+1:]...)
		if len(remaining) == 0 {
			delete(b.subscribers, identityID)
		} else {
			b.subscribers[identityID] = remaining
		}

		return
	}
}

func (b *localBus) subscriberCount(identityID uuid.UUID) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subscribers[identityID])
}

func (b *localBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers = make(map[uuid.UUID][]subscriber)

	return nil
}
