package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/markdias/hair.studio9381-sub000/internal/database"
	"github.com/markdias/hair.studio9381-sub000/internal/gcal"
	"github.com/markdias/hair.studio9381-sub000/internal/metrics"
)

// AvailabilityResponse is the response for GET /api/availability.
type AvailabilityResponse struct {
	Slots   []string `json:"slots"`
	Closed  bool     `json:"closed,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

// handleAvailability returns bookable slots for a date.
// GET /api/availability?date=YYYY-MM-DD&stylist=NAME
func (s *HTTPServer) handleAvailability(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		writeError(w, http.StatusBadRequest, "date is required")
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format; expected YYYY-MM-DD")
		return
	}

	calendarID := s.defaultCalendarID
	if stylist := r.URL.Query().Get("stylist"); stylist != "" {
		id, err := s.db.GetStylistCalendar(r.Context(), stylist)
		if err == nil && id != "" {
			calendarID = id
		} else if !errors.Is(err, database.ErrStylistNotFound) && err != nil {
			s.log.Error().Err(err).Str("stylist", stylist).Msg("stylist lookup failed; using default calendar")
		}
	}

	result, err := s.availability.ComputeAvailableSlots(r.Context(), date, calendarID)
	if err != nil {
		if fe, ok := gcal.IsFetchError(err); ok {
			metrics.IncAvailability("fetch_error")
			writeErrorDetails(w, http.StatusInternalServerError, "failed to fetch calendar availability", fe.Error())
			return
		}
		metrics.IncAvailability("error")
		writeErrorDetails(w, http.StatusInternalServerError, "failed to compute availability", err.Error())
		return
	}

	switch {
	case result.Closed:
		metrics.IncAvailability("closed")
	case result.Warning != "":
		metrics.IncAvailability("fallback")
	default:
		metrics.IncAvailability("ok")
	}

	if result.Slots == nil {
		result.Slots = []string{}
	}
	writeJSON(w, http.StatusOK, AvailabilityResponse{
		Slots:   result.Slots,
		Closed:  result.Closed,
		Warning: result.Warning,
	})
}
