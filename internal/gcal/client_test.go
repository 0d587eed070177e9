package gcal

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"google.golang.org/api/calendar/v3"

	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

func TestNewClient_EmptyPathIsUnconfigured(t *testing.T) {
	logger := zerolog.Nop()

	c, err := NewClient(context.Background(), "", &logger)
	assert.NoError(t, err)
	assert.False(t, c.Configured())

	_, err = c.BusyIntervals(context.Background(), "cal", time.Now(), time.Now().Add(24*time.Hour))
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = c.CreateEvent(context.Background(), "cal", EventInput{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewClient_MissingCredentialsFile(t *testing.T) {
	logger := zerolog.Nop()

	_, err := NewClient(context.Background(), "/does/not/exist.json", &logger)
	assert.Error(t, err)
}

func TestFetchError_Unwrap(t *testing.T) {
	fe := &FetchError{Op: "list events", Err: assert.AnError}
	assert.ErrorIs(t, fe, assert.AnError)
	assert.Contains(t, fe.Error(), "list events")

	got, ok := IsFetchError(fe)
	assert.True(t, ok)
	assert.Equal(t, fe, got)

	_, ok = IsFetchError(assert.AnError)
	assert.False(t, ok)
}

func TestEventInterval(t *testing.T) {
	dayStart := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	timed := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: "2026-03-02T10:00:00Z"},
		End:   &calendar.EventDateTime{DateTime: "2026-03-02T11:00:00Z"},
	}
	iv, ok := eventInterval(timed, dayStart, dayEnd)
	assert.True(t, ok)
	assert.Equal(t, models.TimeInterval{
		Start: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	}, iv)

	allDay := &calendar.Event{
		Start: &calendar.EventDateTime{Date: "2026-03-02"},
		End:   &calendar.EventDateTime{Date: "2026-03-03"},
	}
	iv, ok = eventInterval(allDay, dayStart, dayEnd)
	assert.True(t, ok)
	assert.Equal(t, models.TimeInterval{Start: dayStart, End: dayEnd}, iv)

	missing := &calendar.Event{}
	_, ok = eventInterval(missing, dayStart, dayEnd)
	assert.False(t, ok)

	inverted := &calendar.Event{
		Start: &calendar.EventDateTime{DateTime: "2026-03-02T11:00:00Z"},
		End:   &calendar.EventDateTime{DateTime: "2026-03-02T10:00:00Z"},
	}
	_, ok = eventInterval(inverted, dayStart, dayEnd)
	assert.False(t, ok)
}
