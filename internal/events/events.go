// Package events is a small in-process pub/sub bus for post-booking
// fan-out. Listeners are best-effort by contract: their errors never
// reach the publisher's caller.
package events

import (
	"sync"
	"time"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

// Event types published by the booking coordinator.
const (
	TypeBookingCreated   = "booking.created"
	TypeBookingSimulated = "booking.simulated"
)

// BookingEvent is the payload for booking.* events.
type BookingEvent struct {
	Request   models.BookingRequest
	EventID   string
	Simulated bool
	At        time.Time
}

// Handler reacts to a booking event.
type Handler func(eventType string, ev BookingEvent)

// Bus provides in-process pub/sub.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
}

// NewBus constructs an empty bus.
func NewBus() *Bus {
	return &Bus{subscribers: make(map[string][]Handler)}
}

// Subscribe registers a handler for an event type.
func (b *Bus) Subscribe(eventType string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers[eventType] = append(b.subscribers[eventType], h)
}

// Publish notifies subscribers synchronously, in subscription order.
// The caller decides its own concurrency model.
func (b *Bus) Publish(eventType string, ev BookingEvent) {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subscribers[eventType]...)
	b.mu.RUnlock()

	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	for _, h := range handlers {
		h(eventType, ev)
	}
}
