package booking

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports required request fields that are missing or
// unusable. It fails the request before any external call is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// IsValidationError checks if the error is a ValidationError.
func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// CalendarWriteError wraps an event-creation failure. It is the only
// fatal error class of booking creation.
type CalendarWriteError struct {
	Err error
}

func (e *CalendarWriteError) Error() string {
	return fmt.Sprintf("calendar write failed: %v", e.Err)
}

func (e *CalendarWriteError) Unwrap() error { return e.Err }

// IsCalendarWriteError checks if the error is a CalendarWriteError.
func IsCalendarWriteError(err error) (*CalendarWriteError, bool) {
	var ce *CalendarWriteError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
