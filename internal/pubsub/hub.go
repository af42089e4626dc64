// Package pubsub implements the in-process notification channel used to wake
// status polls when another participant's write lands. Every write path still
// re-checks completeness itself, so losing or lacking notifications only
// affects latency, never correctness.
package pubsub

import "sync"

// Events published per schedule.
const (
	EventResponse  = "response"
	EventVote      = "vote"
	EventPlaceVote = "place_vote"
	EventFinalized = "finalized"
)

type Hub struct {
	mu          sync.Mutex
	subscribers map[uint]map[chan string]struct{}
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[uint]map[chan string]struct{}),
	}
}

// Publish notifies every subscriber of the schedule. Slow subscribers are
// skipped instead of blocking the writer.
func (h *Hub) Publish(scheduleID uint, event string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subscribers[scheduleID] {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribe registers interest in a schedule's events. The returned cancel
// function must be called to release the subscription.
func (h *Hub) Subscribe(scheduleID uint) (<-chan string, func()) {
	ch := make(chan string, 1)

	h.mu.Lock()
	if h.subscribers[scheduleID] == nil {
		h.subscribers[scheduleID] = make(map[chan string]struct{})
	}
	h.subscribers[scheduleID][ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if subs, ok := h.subscribers[scheduleID]; ok {
			delete(subs, ch)
			if len(subs) == 0 {
				delete(h.subscribers, scheduleID)
			}
		}
		h.mu.Unlock()
	}
	return ch, cancel
}
