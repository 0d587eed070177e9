package api

import (
	"net/http"
	"time"

	"github.com/markdias/hair.studio9381-sub000/internal/audit"
	"github.com/markdias/hair.studio9381-sub000/internal/metrics"
)

// handleExportClients streams the client records as an xlsx workbook.
// GET /api/admin/clients/export (requires x-api-key)
func (s *HTTPServer) handleExportClients(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("clients_export")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if s.apiKey == "" || r.Header.Get("x-api-key") != s.apiKey {
		writeError(w, http.StatusUnauthorized, "invalid api key")
		return
	}

	clients, err := s.db.ListClients(r.Context())
	if err != nil {
		writeErrorDetails(w, http.StatusInternalServerError, "failed to list clients", err.Error())
		return
	}

	filename := "clients_" + time.Now().Format("20060102") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if err := audit.WriteClients(w, clients); err != nil {
		s.log.Error().Err(err).Msg("client export failed")
	}
}
