// Package schedule converts the salon's human-written weekly opening-hours
// string into a structured grid and back.
package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// FirstHour and LastHour bound the hourly bucket domain.
	FirstHour = 8
	LastHour  = 20
	// NumBuckets is the number of one-hour buckets per day (8..20).
	NumBuckets = LastHour - FirstHour + 1
)

// Grid holds the open/closed flag for each weekday and hour bucket.
// Day index 0 is Monday. Bucket index b covers hour FirstHour+b.
// A zero Grid is an all-closed week.
type Grid [7][NumBuckets]bool

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var rangePattern = regexp.MustCompile(`(?i)^(\d{1,2})\s*(AM|PM)\s*-\s*(\d{1,2})\s*(AM|PM)$`)

// Parse reads a weekly-hours string such as
// "Mon-Fri: 9 AM - 6 PM, Sat: 10 AM - 4 PM" into a Grid.
//
// Parsing is lenient and never fails: segments that do not match the
// grammar are dropped and reported back as diagnostics. An empty string
// or "closed" (any case) yields an all-closed grid.
func Parse(text string) (Grid, []string) {
	var g Grid

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, "closed") {
		return g, nil
	}

	var ignored []string

	// Clauses and their extra ranges share the comma separator, so a
	// segment with a colon opens a clause and colon-less segments extend
	// the one before it.
	var days []int
	haveClause := false

	for _, seg := range strings.Split(text, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		if colon := strings.Index(seg, ":"); colon >= 0 {
			daySet, ok := parseDaySpec(seg[:colon])
			if !ok {
				ignored = append(ignored, seg)
				days, haveClause = nil, false
				continue
			}
			days, haveClause = daySet, true

			if rest := strings.TrimSpace(seg[colon+1:]); rest != "" {
				if !applyRange(&g, days, rest) {
					ignored = append(ignored, seg)
				}
			}
			continue
		}

		if !haveClause || !applyRange(&g, days, seg) {
			ignored = append(ignored, seg)
		}
	}

	return g, ignored
}

// parseDaySpec expands "Mon" or "Mon-Fri" into day indexes. A reversed
// range ("Fri-Mon") yields an empty set: the range only runs forward
// through the Mon..Sun week, with no wraparound.
func parseDaySpec(spec string) ([]int, bool) {
	spec = strings.TrimSpace(spec)

	first, rest, found := strings.Cut(spec, "-")
	start, ok := dayIndex(first)
	if !ok {
		return nil, false
	}
	end := start
	if found {
		end, ok = dayIndex(rest)
		if !ok {
			return nil, false
		}
	}

	var days []int
	for d := start; d <= end; d++ {
		days = append(days, d)
	}
	return days, true
}

func dayIndex(name string) (int, bool) {
	name = strings.TrimSpace(name)
	for i, d := range dayNames {
		if strings.EqualFold(d, name) {
			return i, true
		}
	}
	return 0, false
}

// applyRange marks the buckets of an "H AM - H PM" range open on the
// given days. Returns false if the range does not match the grammar.
func applyRange(g *Grid, days []int, text string) bool {
	m := rangePattern.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return false
	}

	startHour, ok1 := to24Hour(m[1], m[2])
	endHour, ok2 := to24Hour(m[3], m[4])
	if !ok1 || !ok2 {
		return false
	}

	for _, d := range days {
		for b := 0; b < NumBuckets; b++ {
			h := FirstHour + b
			if h >= startHour && h < endHour {
				g[d][b] = true
			}
		}
	}
	return true
}

// to24Hour converts a 12-hour clock value: 12 AM is 0 and 12 PM is 12.
func to24Hour(hourStr, meridiem string) (int, bool) {
	h, err := strconv.Atoi(hourStr)
	if err != nil || h < 1 || h > 12 {
		return 0, false
	}
	if h == 12 {
		h = 0
	}
	if strings.EqualFold(meridiem, "PM") {
		h += 12
	}
	return h, true
}

// Format renders a grid back into the canonical weekly-hours string.
// Adjacent days with identical open ranges collapse into "Mon-Fri" style
// groups; an all-closed grid formats to "Closed".
func Format(g Grid) string {
	ranges := make([][][2]int, 7)
	any := false
	for d := 0; d < 7; d++ {
		ranges[d] = openRanges(g[d])
		if len(ranges[d]) > 0 {
			any = true
		}
	}
	if !any {
		return "Closed"
	}

	var clauses []string
	for d := 0; d < 7; {
		if len(ranges[d]) == 0 {
			d++
			continue
		}
		last := d
		for last+1 < 7 && sameRanges(ranges[last+1], ranges[d]) {
			last++
		}

		label := dayNames[d]
		if last > d {
			label = dayNames[d] + "-" + dayNames[last]
		}
		clauses = append(clauses, label+": "+formatRanges(ranges[d]))
		d = last + 1
	}
	return strings.Join(clauses, ", ")
}

// openRanges collapses a day's bucket flags into [start, end) hour pairs.
func openRanges(day [NumBuckets]bool) [][2]int {
	var out [][2]int
	b := 0
	for b < NumBuckets {
		if !day[b] {
			b++
			continue
		}
		start := b
		for b < NumBuckets && day[b] {
			b++
		}
		out = append(out, [2]int{FirstHour + start, FirstHour + b})
	}
	return out
}

func sameRanges(a, b [][2]int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func formatRanges(rs [][2]int) string {
	parts := make([]string, len(rs))
	for i, r := range rs {
		parts[i] = formatHour(r[0]) + " - " + formatHour(r[1])
	}
	return strings.Join(parts, ", ")
}

func formatHour(h int) string {
	switch {
	case h == 0:
		return "12 AM"
	case h < 12:
		return fmt.Sprintf("%d AM", h)
	case h == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", h-12)
	}
}

// IsOpenOn reports whether any bucket of the date's weekday is open.
func IsOpenOn(g Grid, date time.Time) bool {
	d := (int(date.Weekday()) + 6) % 7 // Monday-first index
	for b := 0; b < NumBuckets; b++ {
		if g[d][b] {
			return true
		}
	}
	return false
}
