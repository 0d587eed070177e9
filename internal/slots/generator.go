// Package slots enumerates candidate booking start times within the
// salon's booking window.
package slots

import "time"

// Defaults for the booking window. The window is fixed per deployment
// and independent of the opening-hours grid, which only gates whether
// generation is attempted at all.
const (
	DefaultStepMinutes     = 60
	DefaultWindowStartHour = 9
	DefaultWindowEndHour   = 18
)

// Generator produces candidate start times for a date.
type Generator struct {
	StepMinutes     int
	WindowStartHour int
	WindowEndHour   int
}

// NewGenerator creates a generator, falling back to the default window
// for non-positive parameters.
func NewGenerator(stepMinutes, windowStartHour, windowEndHour int) *Generator {
	g := &Generator{
		StepMinutes:     stepMinutes,
		WindowStartHour: windowStartHour,
		WindowEndHour:   windowEndHour,
	}
	if g.StepMinutes <= 0 {
		g.StepMinutes = DefaultStepMinutes
	}
	if g.WindowStartHour <= 0 {
		g.WindowStartHour = DefaultWindowStartHour
	}
	if g.WindowEndHour <= g.WindowStartHour {
		g.WindowEndHour = DefaultWindowEndHour
	}
	return g
}

// Generate returns start instants covering [windowStart, windowEnd) of
// the given date at step granularity, in chronological order.
func (g *Generator) Generate(date time.Time) []time.Time {
	start := time.Date(date.Year(), date.Month(), date.Day(), g.WindowStartHour, 0, 0, 0, date.Location())
	end := time.Date(date.Year(), date.Month(), date.Day(), g.WindowEndHour, 0, 0, 0, date.Location())
	step := time.Duration(g.StepMinutes) * time.Minute

	var out []time.Time
	for cursor := start; cursor.Before(end); cursor = cursor.Add(step) {
		out = append(out, cursor)
	}
	return out
}

// Labels renders start instants as "HH:MM" strings.
func Labels(starts []time.Time) []string {
	out := make([]string, len(starts))
	for i, s := range starts {
		out[i] = s.Format("15:04")
	}
	return out
}
