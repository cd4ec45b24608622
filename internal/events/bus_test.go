package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBusFansOutInOrder(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(func(e Event) { got = append(got, "first:"+e.Key) })
	bus.Subscribe(func(e Event) { got = append(got, "second:"+e.Key) })

	bus.Publish(Event{Topic: TopicProducts, Key: "p1"})
	bus.Publish(Event{Topic: TopicCarts, Key: "c1"})

	require.Equal(t, []string{"first:p1", "second:p1", "first:c1", "second:c1"}, got)
}

func TestBusWithoutSubscribers(t *testing.T) {
	bus := NewBus()
	// must not panic
	bus.Publish(Event{Topic: TopicOrders, Key: "x"})
}
