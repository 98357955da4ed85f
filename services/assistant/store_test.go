package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/savinash9/happy-hotels/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPRecordStoreCreate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/bookings", r.URL.Path)
		require.Equal(t, "s3cret", r.Header.Get("X-API-Key"))

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Resort Hotel", payload["hotel"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]any{"id": "bk-1", "hotel": "Resort Hotel"}})
	}))
	defer srv.Close()

	store := NewHTTPRecordStore(StoreConfig{BaseURL: srv.URL, APIKey: "s3cret"})
	data, err := store.Create(context.Background(), map[string]any{"hotel": "Resort Hotel"})
	require.NoError(t, err)
	assert.Equal(t, "bk-1", data["id"])
}

func TestHTTPRecordStoreMapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{
			"code":    "NOT_FOUND",
			"message": "booking missing not found",
			"details": map[string]any{"id": "missing"},
		}})
	}))
	defer srv.Close()

	store := NewHTTPRecordStore(StoreConfig{BaseURL: srv.URL})
	_, err := store.Get(context.Background(), "missing")

	var notFound *booking.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
}

func TestHTTPRecordStoreMapsValidation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]any{"error": map[string]any{
			"code":    "VALIDATION",
			"message": "booking payload failed validation",
			"details": map[string]any{"adults": "must be an integer"},
		}})
	}))
	defer srv.Close()

	store := NewHTTPRecordStore(StoreConfig{BaseURL: srv.URL})
	_, err := store.Create(context.Background(), map[string]any{})

	var validation *booking.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "must be an integer", validation.Details["adults"])
}

func TestHTTPRecordStoreListKeepsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Resort Hotel", r.URL.Query().Get("hotel"))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data":       []any{map[string]any{"id": "bk-1"}},
			"pagination": map[string]any{"page": float64(1), "page_size": float64(20), "total": float64(1)},
		})
	}))
	defer srv.Close()

	store := NewHTTPRecordStore(StoreConfig{BaseURL: srv.URL})
	envelope, err := store.List(context.Background(), map[string]any{"hotel": "Resort Hotel"})
	require.NoError(t, err)
	assert.Contains(t, envelope, "data")
	assert.Contains(t, envelope, "pagination")
}

func TestHTTPRecordStoreUnreachable(t *testing.T) {
	store := NewHTTPRecordStore(StoreConfig{BaseURL: "http://127.0.0.1:1"})
	_, err := store.Get(context.Background(), "bk-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
}
