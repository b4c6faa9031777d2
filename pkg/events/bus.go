package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

// BusEvent is one message on the in-process bus.
type BusEvent struct {
	Topic   string
	Payload any
}

// Bus is a synchronous in-process pub/sub keyed by topic. Each subscriber
// owns a bounded queue; Publish never blocks; when a subscriber's queue is
// full the event is dropped for that subscriber with a warning. Events are
// delivered to each subscriber in publish order.
type Bus struct {
	mu        sync.RWMutex
	subs      map[string][]*busSubscriber
	queueSize int
	nextID    int
}

type busSubscriber struct {
	id     int
	topics []string
	ch     chan BusEvent
	drops  atomic.Int64
}

// NewBus creates a bus with the given per-subscriber queue size.
func NewBus(queueSize int) *Bus {
	if queueSize <= 0 {
		queueSize = 256
	}
	return &Bus{
		subs:      make(map[string][]*busSubscriber),
		queueSize: queueSize,
	}
}

// Subscribe registers for the given topics and returns the receive channel
// and an unsubscribe function. The channel is closed on unsubscribe.
func (b *Bus) Subscribe(topics ...string) (<-chan BusEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &busSubscriber{
		id:     b.nextID,
		topics: topics,
		ch:     make(chan BusEvent, b.queueSize),
	}
	b.nextID++

	for _, t := range topics {
		b.subs[t] = append(b.subs[t], sub)
	}

	unsubscribe := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for _, t := range sub.topics {
			list := b.subs[t]
			for i, s := range list {
				if s.id == sub.id {
					b.subs[t] = append(list[:i], list[i+1:]...)
					break
				}
			}
		}
		close(sub.ch)
	}

	return sub.ch, unsubscribe
}

// Publish delivers the event to every subscriber of its topic without
// blocking. Slow consumers lose events.
func (b *Bus) Publish(topic string, payload any) {
	b.mu.RLock()
	list := b.subs[topic]
	subs := make([]*busSubscriber, len(list))
	copy(subs, list)
	b.mu.RUnlock()

	evt := BusEvent{Topic: topic, Payload: payload}
	for _, sub := range subs {
		select {
		case sub.ch <- evt:
		default:
			slog.Warn("Dropping bus event for slow subscriber",
				"topic", topic, "subscriber_id", sub.id,
				"dropped_total", sub.drops.Add(1))
		}
	}
}
