package pubsub_test

import (
	"testing"
	"time"

	"github.com/yaksok/yaksok/internal/pubsub"
)

func TestPublishReachesSubscriber(t *testing.T) {
	hub := pubsub.NewHub()

	events, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Publish(1, pubsub.EventVote)

	select {
	case event := <-events:
		if event != pubsub.EventVote {
			t.Errorf("expected event %q, got %q", pubsub.EventVote, event)
		}
	case <-time.After(time.Second):
		t.Fatal("expected an event, got none")
	}
}

func TestPublishIsScopedToSchedule(t *testing.T) {
	hub := pubsub.NewHub()

	events, cancel := hub.Subscribe(1)
	defer cancel()

	hub.Publish(2, pubsub.EventVote)

	select {
	case event := <-events:
		t.Errorf("expected no event, got %q", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	hub := pubsub.NewHub()

	_, cancel := hub.Subscribe(1)
	defer cancel()

	done := make(chan struct{})
	go func() {
		// Buffer of one: the second publish would block without the drop rule.
		hub.Publish(1, pubsub.EventVote)
		hub.Publish(1, pubsub.EventVote)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestCancelledSubscriberStopsReceiving(t *testing.T) {
	hub := pubsub.NewHub()

	events, cancel := hub.Subscribe(1)
	cancel()

	hub.Publish(1, pubsub.EventResponse)

	select {
	case event := <-events:
		t.Errorf("expected no event after cancel, got %q", event)
	case <-time.After(50 * time.Millisecond):
	}
}
