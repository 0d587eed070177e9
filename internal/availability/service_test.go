package availability

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/markdias/hair.studio9381-sub000/internal/gcal"
	"github.com/markdias/hair.studio9381-sub000/internal/models"
	"github.com/markdias/hair.studio9381-sub000/internal/slots"
)

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Configured() bool {
	return m.Called().Bool(0)
}

func (m *mockResolver) BusyIntervals(ctx context.Context, calendarID string, dayStart, dayEnd time.Time) ([]models.TimeInterval, error) {
	args := m.Called(ctx, calendarID, dayStart, dayEnd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.TimeInterval), args.Error(1)
}

type mockHours struct {
	mock.Mock
}

func (m *mockHours) OpeningHours(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newTestService(resolver *mockResolver, hours *mockHours) *Service {
	logger := zerolog.Nop()
	return NewService(resolver, hours, slots.NewGenerator(60, 9, 18), &logger)
}

// Monday within Mon-Fri hours.
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, min int) time.Time {
	return time.Date(2026, 3, 2, hour, min, 0, 0, time.UTC)
}

func TestComputeAvailableSlots_ClosedDay(t *testing.T) {
	resolver := new(mockResolver)
	hours := new(mockHours)
	hours.On("OpeningHours", mock.Anything).Return("Mon-Fri: 9 AM - 5 PM", nil)

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := newTestService(resolver, hours).ComputeAvailableSlots(context.Background(), sunday, "cal")

	assert.NoError(t, err)
	assert.True(t, res.Closed)
	assert.NotNil(t, res.Slots)
	assert.Empty(t, res.Slots)
	// Closed short-circuits before the calendar is even consulted.
	resolver.AssertNotCalled(t, "Configured")
	resolver.AssertNotCalled(t, "BusyIntervals")
}

func TestComputeAvailableSlots_NoBusyIntervals(t *testing.T) {
	resolver := new(mockResolver)
	hours := new(mockHours)
	hours.On("OpeningHours", mock.Anything).Return("", nil)
	resolver.On("Configured").Return(true)
	resolver.On("BusyIntervals", mock.Anything, "cal", at(0, 0), at(0, 0).AddDate(0, 0, 1)).
		Return([]models.TimeInterval{}, nil)

	res, err := newTestService(resolver, hours).ComputeAvailableSlots(context.Background(), testDate, "cal")

	assert.NoError(t, err)
	assert.False(t, res.Closed)
	assert.Equal(t, []string{
		"09:00", "10:00", "11:00", "12:00", "13:00",
		"14:00", "15:00", "16:00", "17:00",
	}, res.Slots)
}

func TestComputeAvailableSlots_BusyHourExcludesOnlyThatSlot(t *testing.T) {
	resolver := new(mockResolver)
	hours := new(mockHours)
	hours.On("OpeningHours", mock.Anything).Return("", nil)
	resolver.On("Configured").Return(true)
	resolver.On("BusyIntervals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]models.TimeInterval{{Start: at(10, 0), End: at(11, 0)}}, nil)

	res, err := newTestService(resolver, hours).ComputeAvailableSlots(context.Background(), testDate, "cal")

	assert.NoError(t, err)
	assert.NotContains(t, res.Slots, "10:00")
	assert.Contains(t, res.Slots, "09:00")
	assert.Contains(t, res.Slots, "11:00")
	assert.Len(t, res.Slots, 8)
}

func TestComputeAvailableSlots_EmptyHoursMeansNoRestriction(t *testing.T) {
	resolver := new(mockResolver)
	hours := new(mockHours)
	hours.On("OpeningHours", mock.Anything).Return("", nil)
	resolver.On("Configured").Return(true)
	resolver.On("BusyIntervals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]models.TimeInterval{}, nil)

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	res, err := newTestService(resolver, hours).ComputeAvailableSlots(context.Background(), sunday, "cal")

	assert.NoError(t, err)
	assert.False(t, res.Closed)
	assert.Len(t, res.Slots, 9)
}

func TestComputeAvailableSlots_NotConfiguredFallback(t *testing.T) {
	resolver := new(mockResolver)
	hours := new(mockHours)
	hours.On("OpeningHours", mock.Anything).Return("", nil)
	resolver.On("Configured").Return(false)

	res, err := newTestService(resolver, hours).ComputeAvailableSlots(context.Background(), testDate, "cal")

	assert.NoError(t, err)
	assert.Equal(t, WarningNoCalendar, res.Warning)
	assert.Len(t, res.Slots, 9)
	resolver.AssertNotCalled(t, "BusyIntervals")
}

func TestComputeAvailableSlots_FetchErrorPropagates(t *testing.T) {
	resolver := new(mockResolver)
	hours := new(mockHours)
	hours.On("OpeningHours", mock.Anything).Return("", nil)
	resolver.On("Configured").Return(true)
	fetchErr := &gcal.FetchError{Op: "list events", Err: assert.AnError}
	resolver.On("BusyIntervals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fetchErr)

	_, err := newTestService(resolver, hours).ComputeAvailableSlots(context.Background(), testDate, "cal")

	assert.Error(t, err)
	_, ok := gcal.IsFetchError(err)
	assert.True(t, ok)
}

func TestComputeAvailableSlots_HoursReadFailureUnrestricted(t *testing.T) {
	resolver := new(mockResolver)
	hours := new(mockHours)
	hours.On("OpeningHours", mock.Anything).Return("", assert.AnError)
	resolver.On("Configured").Return(true)
	resolver.On("BusyIntervals", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]models.TimeInterval{}, nil)

	res, err := newTestService(resolver, hours).ComputeAvailableSlots(context.Background(), testDate, "cal")

	assert.NoError(t, err)
	assert.Len(t, res.Slots, 9)
}

func TestSlotBusy_BoundaryContract(t *testing.T) {
	busy := []models.TimeInterval{{Start: at(10, 0), End: at(11, 0)}}

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"start inside interval", at(10, 0), true},
		{"start at interval end minus one minute", at(10, 59), true},
		{"start exactly at interval end", at(11, 0), false},
		{"tail grazes interval start", at(9, 2), true},
		{"tail one minute before interval start", at(9, 1), false},
		{"ends exactly at interval start", at(9, 0), false},
		{"well before", at(8, 0), false},
		{"well after", at(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slotBusy(tt.start, busy))
		})
	}
}
