package orders

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHandleCreate(t *testing.T) {
	repo, db := newTestRepo(t)
	handler := NewHandler(repo, zerolog.Nop())

	payload := `{
		"title": "Report crashes on export",
		"description": "Crashes when exporting to PDF",
		"clientId": 1,
		"systemId": 1,
		"routineId": 1,
		"image": "data:image/png;base64,iVBORw0KGgo="
	}`
	req := httptest.NewRequest("POST", "/orders", strings.NewReader(payload))
	w := httptest.NewRecorder()
	handler.HandleCreate(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Greater(t, data["orderId"], float64(0))

	// Image is stored decoded, stripped of the data URI prefix.
	var size int
	require.NoError(t, db.QueryRow(`SELECT length(image) FROM service_orders`).Scan(&size))
	assert.Equal(t, 8, size)
}

func TestHandleCreate_Validation(t *testing.T) {
	repo, _ := newTestRepo(t)
	handler := NewHandler(repo, zerolog.Nop())

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json"},
		{"missing title", `{"description":"d","clientId":1,"systemId":1,"routineId":1}`},
		{"missing description", `{"title":"t","clientId":1,"systemId":1,"routineId":1}`},
		{"missing clientId", `{"title":"t","description":"d","systemId":1,"routineId":1}`},
		{"bad image encoding", `{"title":"t","description":"d","clientId":1,"systemId":1,"routineId":1,"image":"%%%"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/orders", strings.NewReader(tt.payload))
			w := httptest.NewRecorder()
			handler.HandleCreate(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
		})
	}
}
