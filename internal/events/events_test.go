package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

func TestBus_PublishReachesSubscribersInOrder(t *testing.T) {
	bus := NewBus()

	var order []string
	bus.Subscribe(TypeBookingCreated, func(_ string, _ BookingEvent) {
		order = append(order, "first")
	})
	bus.Subscribe(TypeBookingCreated, func(_ string, _ BookingEvent) {
		order = append(order, "second")
	})

	bus.Publish(TypeBookingCreated, BookingEvent{EventID: "evt-1"})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBus_TypeIsolation(t *testing.T) {
	bus := NewBus()

	var got []BookingEvent
	bus.Subscribe(TypeBookingSimulated, func(_ string, ev BookingEvent) {
		got = append(got, ev)
	})

	bus.Publish(TypeBookingCreated, BookingEvent{EventID: "evt-1"})
	assert.Empty(t, got)

	bus.Publish(TypeBookingSimulated, BookingEvent{
		Request:   models.BookingRequest{Service: "Haircut"},
		Simulated: true,
	})
	assert.Len(t, got, 1)
	assert.True(t, got[0].Simulated)
	assert.False(t, got[0].At.IsZero())
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	assert.NotPanics(t, func() {
		NewBus().Publish(TypeBookingCreated, BookingEvent{})
	})
}
