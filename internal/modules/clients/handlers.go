package clients

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Handler handles client HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new client handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "clients").Logger(),
	}
}

// HandleGetByTaxID handles GET /{taxID} - look up a client
func (h *Handler) HandleGetByTaxID(w http.ResponseWriter, r *http.Request) {
	taxID := chi.URLParam(r, "taxID")
	if len(taxID) != TaxIDLength {
		h.writeError(w, http.StatusBadRequest, "Invalid tax ID", "tax ID must contain 14 characters")
		return
	}

	client, err := h.repo.GetByTaxID(r.Context(), taxID)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to look up client")
		h.writeError(w, http.StatusInternalServerError, "Failed to look up client", "database error")
		return
	}
	if client == nil {
		h.writeError(w, http.StatusNotFound, "Client not found", "no client with that tax ID")
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    client,
	})
}

type createClientRequest struct {
	TaxID string `json:"taxId"`
	Name  string `json:"name"`
}

// HandleCreate handles POST / - register a client
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", "body must be valid JSON")
		return
	}

	if req.TaxID == "" || req.Name == "" {
		h.writeError(w, http.StatusBadRequest, "Missing required fields", "taxId and name are required")
		return
	}
	if len(req.TaxID) != TaxIDLength {
		h.writeError(w, http.StatusBadRequest, "Invalid tax ID", "tax ID must contain 14 characters")
		return
	}

	id, err := h.repo.Create(r.Context(), req.TaxID, req.Name)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to register client")
		h.writeError(w, http.StatusInternalServerError, "Failed to register client", "database error")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Client registered",
		"data":    Client{ID: id, TaxID: req.TaxID, Name: req.Name},
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
