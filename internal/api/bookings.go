package api

import (
	"encoding/json"
	"net/http"

	"github.com/markdias/hair.studio9381-sub000/internal/booking"
	"github.com/markdias/hair.studio9381-sub000/internal/metrics"
	"github.com/markdias/hair.studio9381-sub000/internal/models"
)

// handleCreateBooking commits a booking.
// POST /api/bookings
func (s *HTTPServer) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("bookings")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req models.BookingRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.coordinator.CreateBooking(r.Context(), req)
	if err != nil {
		if ve, ok := booking.IsValidationError(err); ok {
			writeError(w, http.StatusBadRequest, ve.Error())
			return
		}
		if ce, ok := booking.IsCalendarWriteError(err); ok {
			s.log.Error().Err(ce.Err).Str("date", req.Date).Str("time", req.Time).Msg("calendar write failed")
			writeErrorDetails(w, http.StatusInternalServerError, "failed to create calendar event", ce.Err.Error())
			return
		}
		s.log.Error().Err(err).Msg("booking failed")
		writeErrorDetails(w, http.StatusInternalServerError, "booking failed", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, result)
}
