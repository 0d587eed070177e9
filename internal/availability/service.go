// Package availability derives the bookable slots for a date by
// reconciling the opening-hours grid against busy calendar intervals.
package availability

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/markdias/hair.studio9381-sub000/internal/gcal"
	"github.com/markdias/hair.studio9381-sub000/internal/models"
	"github.com/markdias/hair.studio9381-sub000/internal/schedule"
	"github.com/markdias/hair.studio9381-sub000/internal/slots"
)

// WarningNoCalendar is attached to responses when the deployment has no
// calendar credentials and fallback slots are served.
const WarningNoCalendar = "calendar not configured; showing default slots"

// BusyIntervalResolver supplies committed time ranges from the external
// calendar for one day.
type BusyIntervalResolver interface {
	Configured() bool
	BusyIntervals(ctx context.Context, calendarID string, dayStart, dayEnd time.Time) ([]models.TimeInterval, error)
}

// OpeningHoursSource reads the persisted weekly-hours string. An empty
// string means no opening-hours restriction is configured.
type OpeningHoursSource interface {
	OpeningHours(ctx context.Context) (string, error)
}

// Result is the outcome of an availability computation.
type Result struct {
	Slots   []string
	Closed  bool
	Warning string
}

// Service composes the schedule grid, slot generator and busy-interval
// resolver into the bookable-slot list for a date.
type Service struct {
	resolver BusyIntervalResolver
	hours    OpeningHoursSource
	gen      *slots.Generator
	logger   *zerolog.Logger
}

// NewService creates the availability service.
func NewService(resolver BusyIntervalResolver, hours OpeningHoursSource, gen *slots.Generator, logger *zerolog.Logger) *Service {
	return &Service{resolver: resolver, hours: hours, gen: gen, logger: logger}
}

// ComputeAvailableSlots returns the free "HH:MM" start times for a date
// on the given calendar, in chronological order.
//
// A closed day short-circuits to an empty, Closed-tagged result. Missing
// calendar credentials degrade to a fixed fallback slot set with a
// warning. A genuine busy-interval fetch failure propagates as
// *gcal.FetchError and is never silently treated as an empty list.
func (s *Service) ComputeAvailableSlots(ctx context.Context, date time.Time, calendarID string) (Result, error) {
	if text, ok := s.openingHours(ctx); ok && text != "" {
		grid, _ := schedule.Parse(text)
		if !schedule.IsOpenOn(grid, date) {
			return Result{Slots: []string{}, Closed: true}, nil
		}
	}

	candidates := s.gen.Generate(date)

	if !s.resolver.Configured() {
		return Result{Slots: slots.Labels(candidates), Warning: WarningNoCalendar}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	busy, err := s.resolver.BusyIntervals(ctx, calendarID, dayStart, dayEnd)
	if err != nil {
		if errors.Is(err, gcal.ErrNotConfigured) {
			return Result{Slots: slots.Labels(candidates), Warning: WarningNoCalendar}, nil
		}
		return Result{}, err
	}

	free := make([]time.Time, 0, len(candidates))
	for _, start := range candidates {
		if !slotBusy(start, busy) {
			free = append(free, start)
		}
	}

	return Result{Slots: slots.Labels(free)}, nil
}

// slotBusy applies the governing boundary contract for a 60-minute-wide
// candidate: the slot is busy if its start falls within
// [B.start, B.end-1m] or its start+59m falls within [B.start+1m, B.end]
// for any busy interval B. The one-minute nudges are asymmetric on
// purpose; keep them exactly as they are.
func slotBusy(start time.Time, busy []models.TimeInterval) bool {
	slotTail := start.Add(59 * time.Minute)
	for _, b := range busy {
		headWindow := models.TimeInterval{Start: b.Start, End: b.End.Add(-time.Minute)}
		tailWindow := models.TimeInterval{Start: b.Start.Add(time.Minute), End: b.End}
		if headWindow.Contains(start) || tailWindow.Contains(slotTail) {
			return true
		}
	}
	return false
}

// openingHours reads the persisted hours string. A read failure is
// logged and treated as "no restriction".
func (s *Service) openingHours(ctx context.Context) (string, bool) {
	if s.hours == nil {
		return "", false
	}
	text, err := s.hours.OpeningHours(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("opening hours read failed; treating day as unrestricted")
		return "", false
	}
	return text, true
}
