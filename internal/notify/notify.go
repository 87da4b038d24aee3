// Package notify fans out data-change signals to listening page
// controllers so they refetch instead of rendering stale records.
package notify

import "sync"

// Hub delivers change signals per topic. Delivery is a coalescing
// edge trigger: a signal pending on a channel absorbs later ones, so a
// slow listener wakes once and refetches once. Publish never blocks.
type Hub struct {
	mu   sync.Mutex
	subs map[string][]chan struct{}
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[string][]chan struct{})}
}

// Subscribe registers a listener for the topic and returns its signal
// channel. The channel has a one-slot buffer; receive from it to drain
// the pending signal.
func (h *Hub) Subscribe(topic string) <-chan struct{} {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	h.subs[topic] = append(h.subs[topic], ch)
	h.mu.Unlock()

	return ch
}

// Unsubscribe removes a listener registered with Subscribe. A closed
// page must unsubscribe or the hub would keep signaling its dead
// channel forever.
func (h *Hub) Unsubscribe(topic string, ch <-chan struct{}) {
	h.mu.Lock()
	defer h.mu.Unlock()

	listeners := h.subs[topic]

	for i, c := range listeners {
		if c == ch {
			h.subs[topic] = append(listeners[:i], listeners[i+1:]...)

			break
		}
	}

	if len(h.subs[topic]) == 0 {
		delete(h.subs, topic)
	}
}

// Publish signals every listener of the topic.
func (h *Hub) Publish(topic string) {
	h.mu.Lock()
	listeners := h.subs[topic]
	h.mu.Unlock()

	for _, ch := range listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
