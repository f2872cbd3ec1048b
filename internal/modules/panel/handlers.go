package panel

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog"
)

// dateParamRe is the wire-format gate for date query parameters. Values that
// pass the pattern are additionally required to be real calendar dates, so
// "2025-13-40" is rejected even though it matches.
var dateParamRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Handler handles panel HTTP requests
type Handler struct {
	svc *Service
	log zerolog.Logger
}

// NewHandler creates a new panel handler
func NewHandler(svc *Service, log zerolog.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log.With().Str("handler", "panel").Logger(),
	}
}

// HandlePanel handles GET /panel?startDate=..&endDate=..
func (h *Handler) HandlePanel(w http.ResponseWriter, r *http.Request) {
	start, err := dateParam(r, "startDate")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid date filter", err.Error())
		return
	}
	end, err := dateParam(r, "endDate")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid date filter", err.Error())
		return
	}

	rows, err := h.svc.Panel(r.Context(), start, end)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build service order panel")
		h.writeError(w, http.StatusInternalServerError, "Failed to query service order panel", "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    rows,
		"total":   len(rows),
		"filters": map[string]string{
			"startDate": start.Format("2006-01-02"),
			"endDate":   end.Format("2006-01-02"),
		},
	})
}

// HandleHeader handles GET /panel-header?startDate=..
func (h *Handler) HandleHeader(w http.ResponseWriter, r *http.Request) {
	start, err := dateParam(r, "startDate")
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid date filter", err.Error())
		return
	}

	counts, err := h.svc.Header(r.Context(), start)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to build panel header")
		h.writeError(w, http.StatusInternalServerError, "Failed to query panel header", "internal error")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    counts,
		"filters": map[string]string{
			"startDate": start.Format("2006-01-02"),
		},
	})
}

// dateParam extracts and validates a required YYYY-MM-DD query parameter.
func dateParam(r *http.Request, name string) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, fmt.Errorf("%s is required (format YYYY-MM-DD)", name)
	}
	if !dateParamRe.MatchString(value) {
		return time.Time{}, fmt.Errorf("%s must match YYYY-MM-DD", name)
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s is not a valid calendar date", name)
	}
	return parsed, nil
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes an error response envelope
func (h *Handler) writeError(w http.ResponseWriter, status int, message, detail string) {
	h.writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
		"error":   detail,
	})
}
