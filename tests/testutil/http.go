package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/interfaces/http/handler"
)

// APIClient issues JSON requests against an in-process handler
type APIClient struct {
	t       *testing.T
	handler http.Handler
}

// NewAPIClient creates a client for h
func NewAPIClient(t *testing.T, h http.Handler) *APIClient {
	return &APIClient{t: t, handler: h}
}

// Do sends body encoded as JSON. Headers are given as key, value pairs.
func (c *APIClient) Do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	c.t.Helper()
	require.True(c.t, len(headers)%2 == 0, "headers must be key, value pairs")

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(c.t, err, "Failed to marshal request body")
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	return w
}

// Get is Do without a body
func (c *APIClient) Get(path string) *httptest.ResponseRecorder {
	c.t.Helper()
	return c.Do(http.MethodGet, path, nil)
}

// Decode parses a response envelope carrying T
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) handler.APIResponse[T] {
	t.Helper()

	var resp handler.APIResponse[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "Failed to parse response: %s", w.Body.String())
	return resp
}

// RequireData asserts status and success, then returns the payload
func RequireData[T any](t *testing.T, w *httptest.ResponseRecorder, status int) T {
	t.Helper()

	require.Equal(t, status, w.Code, "body: %s", w.Body.String())
	resp := Decode[T](t, w)
	require.True(t, resp.Success)
	return resp.Data
}

// AssertError asserts an error envelope with the given status and code
func AssertError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) {
	t.Helper()

	assert.Equal(t, status, w.Code, "body: %s", w.Body.String())
	resp := Decode[json.RawMessage](t, w)
	assert.False(t, resp.Success)
	if assert.NotNil(t, resp.Error) {
		assert.Equal(t, code, resp.Error.Code)
	}
}
