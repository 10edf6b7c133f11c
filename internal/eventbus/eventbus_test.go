package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zettelnav/internal/domain"
)

func TestPublishDeliversToSubscriber(t *testing.T) {
	bus := New()
	got := make(chan DomainEvent, 1)

	bus.Subscribe(EventHeadingMoved, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(domain.HeadingMovedEvent{Command: "forward"})

	select {
	case e := <-got:
		moved, ok := e.(domain.HeadingMovedEvent)
		require.True(t, ok)
		assert.Equal(t, "forward", moved.Command)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestSubscriberOnlySeesItsEventType(t *testing.T) {
	bus := New()
	got := make(chan DomainEvent, 2)

	bus.Subscribe(EventFoldModeChanged, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(domain.HeadingMovedEvent{Command: "forward"})
	bus.Publish(domain.FoldModeChangedEvent{ShowBodies: true})

	select {
	case e := <-got:
		assert.Equal(t, EventFoldModeChanged, e.Type())
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	select {
	case e := <-got:
		t.Fatalf("unexpected second event: %v", e.Type())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	got := make(chan DomainEvent, 2)

	unsubscribe := bus.Subscribe(EventNavigationBlocked, func(e DomainEvent) {
		got <- e
	})

	bus.Publish(domain.NavigationBlockedEvent{Command: "forward", Reason: "end"})

	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	unsubscribe()
	bus.Publish(domain.NavigationBlockedEvent{Command: "forward", Reason: "end"})

	select {
	case e := <-got:
		t.Fatalf("event delivered after unsubscribe: %v", e.Type())
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMultipleSubscribers(t *testing.T) {
	bus := New()
	first := make(chan DomainEvent, 1)
	second := make(chan DomainEvent, 1)

	bus.Subscribe(EventAppReady, func(e DomainEvent) { first <- e })
	bus.Subscribe(EventAppReady, func(e DomainEvent) { second <- e })

	bus.Publish(domain.AppReadyEvent{})

	for _, ch := range []chan DomainEvent{first, second} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive the event")
		}
	}
}
