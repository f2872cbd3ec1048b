package orders

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"regexp"

	"github.com/rs/zerolog"
)

// Handler handles service-order HTTP requests
type Handler struct {
	repo *Repository
	log  zerolog.Logger
}

// NewHandler creates a new service-order handler
func NewHandler(repo *Repository, log zerolog.Logger) *Handler {
	return &Handler{
		repo: repo,
		log:  log.With().Str("handler", "orders").Logger(),
	}
}

type createOrderRequest struct {
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ClientID       int64   `json:"clientId"`
	SystemID       int64   `json:"systemId"`
	RoutineID      int64   `json:"routineId"`
	AttachmentNote *string `json:"attachmentNote"`
	Kind           *string `json:"kind"`
	Image          string  `json:"image"` // optional, base64 or data URI
}

var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// HandleCreate handles POST / - register a new service order
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body", "body must be valid JSON")
		return
	}

	if req.Title == "" || req.Description == "" || req.ClientID == 0 || req.SystemID == 0 || req.RoutineID == 0 {
		h.writeError(w, http.StatusBadRequest, "Missing required fields",
			"title, description, clientId, systemId and routineId are required")
		return
	}

	var image []byte
	if req.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(dataURIPrefix.ReplaceAllString(req.Image, ""))
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "Invalid image", "image must be base64 encoded")
			return
		}
		image = decoded
	}

	id, err := h.repo.Create(r.Context(), CreateOrder{
		Title:          req.Title,
		Description:    req.Description,
		ClientID:       req.ClientID,
		SystemID:       req.SystemID,
		RoutineID:      req.RoutineID,
		AttachmentNote: req.AttachmentNote,
		Kind:           req.Kind,
		Image:          image,
	})
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to create service order")
		h.writeError(w, http.StatusInternalServerError, "Failed to create service order", "database error")
		return
	}

	h.writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Service order created",
		"data":    map[string]int64{"orderId": id},
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
