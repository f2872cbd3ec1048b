package catalog

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles catalog HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new catalog handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "catalog").Logger(),
	}
}

// HandleListSystems handles GET /systems
func (h *Handler) HandleListSystems(w http.ResponseWriter, r *http.Request) {
	systems, err := h.repo.ListSystems(r.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list systems")
		h.writeError(w, http.StatusInternalServerError, "Failed to list systems", "database error")
		return
	}

	if systems == nil {
		systems = []System{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    systems,
	})
}

// HandleListRoutines handles GET /routines/{systemID}
func (h *Handler) HandleListRoutines(w http.ResponseWriter, r *http.Request) {
	systemID, err := strconv.ParseInt(chi.URLParam(r, "systemID"), 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid system ID", "system ID must be an integer")
		return
	}

	routines, err := h.repo.ListRoutines(r.Context(), systemID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list routines")
		h.writeError(w, http.StatusInternalServerError, "Failed to list routines", "database error")
		return
	}

	if routines == nil {
		routines = []Routine{}
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    routines,
	})
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
