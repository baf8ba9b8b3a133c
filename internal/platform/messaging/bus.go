package messaging

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Envelope is the unit published on the bus. Payload carries a
// context-defined snapshot (the voting roster watcher publishes full roster
// snapshots under the "voting.roster" topic).
type Envelope struct {
	EventID    string
	EventType  string
	OccurredAt time.Time
	Payload    any
}

// Bus is an in-process publish/subscribe fan-out. Subscribers that fall
// behind are skipped rather than blocking the publisher; consumers observing
// snapshots can always catch up on the next publish. Subscriptions must be
// cancelled when the consuming side goes away or the channel leaks.
type Bus struct {
	mu          sync.RWMutex
	nextID      int
	subscribers map[string]map[int]chan Envelope
	logger      *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[string]map[int]chan Envelope),
		logger:      logger,
	}
}

// Subscribe registers a buffered channel on topic and returns it together
// with a cancel func. Cancel is idempotent and stops future deliveries but
// never closes the channel; a publish that snapshotted the subscriber list
// may still be sending after cancel returns.
func (b *Bus) Subscribe(topic string) (<-chan Envelope, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.subscribers[topic] == nil {
		b.subscribers[topic] = make(map[int]chan Envelope)
	}
	id := b.nextID
	b.nextID++
	ch := make(chan Envelope, 8)
	b.subscribers[topic][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subscribers[topic], id)
		})
	}
	return ch, cancel
}

func (b *Bus) Publish(ctx context.Context, topic string, event Envelope) error {
	b.mu.RLock()
	subs := make([]chan Envelope, 0, len(b.subscribers[topic]))
	for _, sub := range b.subscribers[topic] {
		subs = append(subs, sub)
	}
	b.mu.RUnlock()

	for _, sub := range subs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case sub <- event:
		default:
			b.logger.Warn("dropping event for slow subscriber",
				"event", "bus_publish_drop",
				"module", "internal/platform/messaging",
				"layer", "platform",
				"topic", topic,
				"event_id", event.EventID,
			)
		}
	}
	return nil
}
