package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_PublishSubscribe(t *testing.T) {
	bus := NewBus(16)

	ch, unsubscribe := bus.Subscribe(TopicSoundingStart, TopicSoundingWinner)
	defer unsubscribe()

	bus.Publish(TopicSoundingStart, map[string]any{"index": 0})
	bus.Publish(TopicCostUpdate, map[string]any{"cost": 0.01}) // not subscribed
	bus.Publish(TopicSoundingWinner, map[string]any{"index": 2})

	evt := <-ch
	assert.Equal(t, TopicSoundingStart, evt.Topic)

	evt = <-ch
	assert.Equal(t, TopicSoundingWinner, evt.Topic)

	select {
	case evt := <-ch:
		t.Fatalf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBus_PublishOrderPerSubscriber(t *testing.T) {
	bus := NewBus(64)
	ch, unsubscribe := bus.Subscribe(TopicPhaseProgress)
	defer unsubscribe()

	for i := 0; i < 10; i++ {
		bus.Publish(TopicPhaseProgress, i)
	}

	for i := 0; i < 10; i++ {
		evt := <-ch
		assert.Equal(t, i, evt.Payload)
	}
}

func TestBus_SlowSubscriberDrops(t *testing.T) {
	bus := NewBus(2)
	ch, unsubscribe := bus.Subscribe(TopicCostUpdate)
	defer unsubscribe()

	// Queue size is 2; the rest are dropped, publisher never blocks
	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			bus.Publish(TopicCostUpdate, i)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on slow subscriber")
	}

	// First two events survived
	evt := <-ch
	assert.Equal(t, 0, evt.Payload)
	evt = <-ch
	assert.Equal(t, 1, evt.Payload)
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(16)
	ch, unsubscribe := bus.Subscribe(TopicModelsFiltered)

	bus.Publish(TopicModelsFiltered, "a")
	evt, ok := <-ch
	require.True(t, ok)
	assert.Equal(t, "a", evt.Payload)

	unsubscribe()

	// Channel closes and further publishes don't panic
	_, ok = <-ch
	assert.False(t, ok)
	assert.NotPanics(t, func() {
		bus.Publish(TopicModelsFiltered, "b")
	})
}

func TestBus_MultipleSubscribers(t *testing.T) {
	bus := NewBus(16)
	ch1, unsub1 := bus.Subscribe(TopicBudgetEnforced)
	ch2, unsub2 := bus.Subscribe(TopicBudgetEnforced)
	defer unsub1()
	defer unsub2()

	bus.Publish(TopicBudgetEnforced, "enforced")

	evt1 := <-ch1
	evt2 := <-ch2
	assert.Equal(t, "enforced", evt1.Payload)
	assert.Equal(t, "enforced", evt2.Payload)
}
