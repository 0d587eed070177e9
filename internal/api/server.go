// Package api exposes the availability and booking endpoints over HTTP.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/markdias/hair.studio9381-sub000/internal/availability"
	"github.com/markdias/hair.studio9381-sub000/internal/booking"
	"github.com/markdias/hair.studio9381-sub000/internal/database"
)

// HTTPServer serves the public booking API.
type HTTPServer struct {
	server *http.Server

	availability *availability.Service
	coordinator  *booking.Coordinator
	db           *database.DB

	defaultCalendarID string
	apiKey            string
	log               *zerolog.Logger
}

// NewHTTPServer builds the server and its routes.
func NewHTTPServer(
	port int,
	apiKey string,
	defaultCalendarID string,
	avail *availability.Service,
	coord *booking.Coordinator,
	db *database.DB,
	logger *zerolog.Logger,
) *HTTPServer {
	s := &HTTPServer{
		availability:      avail,
		coordinator:       coord,
		db:                db,
		defaultCalendarID: defaultCalendarID,
		apiKey:            apiKey,
		log:               logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/availability", s.handleAvailability)
	mux.HandleFunc("/api/bookings", s.handleCreateBooking)
	mux.HandleFunc("/api/admin/clients/export", s.handleExportClients)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withRequestID(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start serves until the context is cancelled, then shuts down
// gracefully.
func (s *HTTPServer) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.server.Shutdown(ctxShutdown)
	}()

	s.log.Info().Str("addr", s.server.Addr).Msg("api server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// withRequestID tags every request with an id for log correlation.
func (s *HTTPServer) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.NewString()
		w.Header().Set("X-Request-Id", reqID)
		s.log.Debug().
			Str("request_id", reqID).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeErrorDetails(w http.ResponseWriter, status int, msg, details string) {
	writeJSON(w, status, map[string]string{"error": msg, "details": details})
}
