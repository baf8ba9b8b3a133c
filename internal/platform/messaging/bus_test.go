package messaging

import (
	"context"
	"testing"
	"time"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := NewBus(nil)

	events, cancel := bus.Subscribe("voting.roster")
	defer cancel()

	if err := bus.Publish(context.Background(), "voting.roster", Envelope{
		EventID:   "evt-1",
		EventType: "voting.roster.snapshot",
	}); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	select {
	case event := <-events:
		if event.EventID != "evt-1" {
			t.Fatalf("unexpected event: %+v", event)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestPublishDropsWhenSubscriberIsFull(t *testing.T) {
	bus := NewBus(nil)

	events, cancel := bus.Subscribe("voting.roster")
	defer cancel()

	// Overrun the subscriber buffer; Publish must never block.
	for i := 0; i < 32; i++ {
		if err := bus.Publish(context.Background(), "voting.roster", Envelope{EventID: "evt"}); err != nil {
			t.Fatalf("Publish: %v", err)
		}
	}

	received := 0
	for {
		select {
		case <-events:
			received++
		default:
			if received == 0 {
				t.Fatal("expected at least one delivered event")
			}
			if received > 8 {
				t.Fatalf("buffer should cap deliveries, got %d", received)
			}
			return
		}
	}
}

func TestCancelIsIdempotent(t *testing.T) {
	bus := NewBus(nil)

	events, cancel := bus.Subscribe("voting.roster")
	cancel()
	cancel()

	if err := bus.Publish(context.Background(), "voting.roster", Envelope{EventID: "evt-1"}); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	select {
	case event := <-events:
		t.Fatalf("unexpected delivery after cancel: %+v", event)
	default:
	}
}

func TestCancelDuringPublishDoesNotPanic(t *testing.T) {
	bus := NewBus(nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = bus.Publish(context.Background(), "voting.roster", Envelope{EventID: "evt"})
		}
	}()

	// Subscribers come and go while the publisher is mid-flight. A publish
	// that snapshotted a subscriber before its cancel must still be able to
	// send without panicking.
	for i := 0; i < 1000; i++ {
		_, cancel := bus.Subscribe("voting.roster")
		cancel()
	}
	<-done
}
