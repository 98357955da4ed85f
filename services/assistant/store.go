package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/savinash9/happy-hotels/services/booking"
	"github.com/savinash9/happy-hotels/utils"
)

// StoreConfig addresses the record-store collaborator. It is passed in
// explicitly at construction; there is no package-level default client.
type StoreConfig struct {
	BaseURL string
	APIKey  string
}

// HTTPRecordStore talks to the booking record store over REST+JSON.
type HTTPRecordStore struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewHTTPRecordStore builds a store client for the given base URL and
// optional shared secret.
func NewHTTPRecordStore(cfg StoreConfig) *HTTPRecordStore {
	return &HTTPRecordStore{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPRecordStore) Create(ctx context.Context, payload map[string]any) (map[string]any, error) {
	return s.dataCall(ctx, http.MethodPost, "/api/bookings", payload)
}

func (s *HTTPRecordStore) Get(ctx context.Context, id string) (map[string]any, error) {
	return s.dataCall(ctx, http.MethodGet, "/api/bookings/"+url.PathEscape(id), nil)
}

func (s *HTTPRecordStore) Update(ctx context.Context, id string, patch map[string]any) (map[string]any, error) {
	return s.dataCall(ctx, http.MethodPatch, "/api/bookings/"+url.PathEscape(id), patch)
}

// List returns the full listing envelope, data plus pagination.
func (s *HTTPRecordStore) List(ctx context.Context, filter map[string]any) (map[string]any, error) {
	query := url.Values{}
	for k, v := range filter {
		query.Set(k, fmt.Sprintf("%v", v))
	}
	path := "/api/bookings"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return s.call(ctx, http.MethodGet, path, nil)
}

// dataCall unwraps the {data: ...} envelope of a single-record response.
func (s *HTTPRecordStore) dataCall(ctx context.Context, method, path string, body map[string]any) (map[string]any, error) {
	envelope, err := s.call(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("record store returned an unexpected payload for %s %s", method, path)
	}
	return data, nil
}

func (s *HTTPRecordStore) call(ctx context.Context, method, path string, body map[string]any) (map[string]any, error) {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("X-API-Key", s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("record store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, decodeStoreError(resp)
	}

	var envelope map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode record store response: %w", err)
	}
	return envelope, nil
}

// decodeStoreError maps the store's error envelope back to the typed
// errors the rest of the system understands.
func decodeStoreError(resp *http.Response) error {
	var envelope utils.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("record store returned status %d", resp.StatusCode)
	}

	switch envelope.Error.Code {
	case "NOT_FOUND":
		return &booking.NotFoundError{ID: fmt.Sprintf("%v", envelope.Error.Details["id"])}
	case "VALIDATION":
		details := make(map[string]string, len(envelope.Error.Details))
		for k, v := range envelope.Error.Details {
			details[k] = fmt.Sprintf("%v", v)
		}
		return &booking.ValidationError{Details: details}
	case "INVALID_MONTH":
		return &booking.InvalidMonthError{Value: fmt.Sprintf("%v", envelope.Error.Details["value"])}
	}
	return fmt.Errorf("record store error %s: %s", envelope.Error.Code, envelope.Error.Message)
}
