package clients

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func newTestRouter(t *testing.T) (chi.Router, *sql.DB) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))

	handler := NewHandler(NewRepository(db, zerolog.Nop()), zerolog.Nop())

	r := chi.NewRouter()
	r.Get("/clients/{taxID}", handler.HandleGetByTaxID)
	r.Post("/clients", handler.HandleCreate)
	return r, db
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestGetByTaxID(t *testing.T) {
	router, db := newTestRouter(t)

	_, err := db.Exec(`INSERT INTO clients (tax_id, name) VALUES ('12345678000190', 'Acme Corp')`)
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/clients/12345678000190", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Acme Corp", data["name"])
	assert.Equal(t, "12345678000190", data["taxId"])
}

func TestGetByTaxID_WrongLength(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/clients/123", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
}

func TestGetByTaxID_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/clients/99999999000199", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Client not found", body["message"])
}

func TestCreateClient(t *testing.T) {
	router, db := newTestRouter(t)

	payload := `{"taxId":"12345678000190","name":"Acme Corp"}`
	req := httptest.NewRequest("POST", "/clients", strings.NewReader(payload))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, true, body["success"])

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM clients WHERE tax_id = '12345678000190'`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestCreateClient_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name    string
		payload string
	}{
		{"not json", "not json"},
		{"missing name", `{"taxId":"12345678000190"}`},
		{"missing taxId", `{"name":"Acme Corp"}`},
		{"short taxId", `{"taxId":"123","name":"Acme Corp"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/clients", strings.NewReader(tt.payload))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeBody(t, w)
			assert.Equal(t, false, body["success"])
		})
	}
}
