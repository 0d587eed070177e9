package models

import "time"

// TimeInterval is a half-open [Start, End) time range.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether the interval has positive length.
func (i TimeInterval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Contains reports whether t falls within [Start, End].
// Both boundaries inclusive; callers that need the half-open
// form shift the boundaries themselves.
func (i TimeInterval) Contains(t time.Time) bool {
	return !t.Before(i.Start) && !t.After(i.End)
}

// StylistCalendar binds a stylist display name to an external
// Google Calendar identifier. Rows are owned by the admin side;
// the scheduling engine only reads them.
type StylistCalendar struct {
	Stylist    string    `json:"stylist"`
	CalendarID string    `json:"calendar_id"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Client is a salon customer record, keyed by email.
type Client struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Visits    int       `json:"visits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BookingRequest carries everything needed to commit a booking.
type BookingRequest struct {
	Stylist         string `json:"stylist,omitempty"`
	Service         string `json:"service"`
	Date            string `json:"date"` // YYYY-MM-DD
	Time            string `json:"time"` // HH:MM
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

// BookingResult is the outcome of a booking attempt.
type BookingResult struct {
	Success   bool   `json:"success"`
	EventID   string `json:"eventId,omitempty"`
	Simulated bool   `json:"-"`
	Message   string `json:"message,omitempty"`
}

// EventTimes computes the local wall-clock start and end of the
// requested appointment. Duration defaults to 60 minutes.
func (r *BookingRequest) EventTimes(loc *time.Location) (start, end time.Time, err error) {
	day, err := time.ParseInLocation("2006-01-02", r.Date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	at, err := time.Parse("15:04", r.Time)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start = time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), 0, 0, loc)

	minutes := r.DurationMinutes
	if minutes <= 0 {
		minutes = 60
	}
	end = start.Add(time.Duration(minutes) * time.Minute)
	return start, end, nil
}
