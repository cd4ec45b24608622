package events

import "sync"

const (
	TopicProducts = "product_events"
	TopicCarts    = "cart_events"
	TopicOrders   = "order_events"
)

// Event is one store mutation, in the shape it is published to Kafka.
type Event struct {
	Topic   string
	Key     string
	Payload map[string]any
}

// Bus fans store change events out to subscribers, synchronously and in
// subscription order. A bus with no subscribers is valid.
type Bus struct {
	mu   sync.RWMutex
	subs []func(Event)
}

func NewBus() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(fn func(Event)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = append(b.subs, fn)
}

func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	subs := b.subs
	b.mu.RUnlock()
	for _, fn := range subs {
		fn(e)
	}
}
