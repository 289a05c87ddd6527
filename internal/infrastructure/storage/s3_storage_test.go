package storage

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/shopledger/backend/internal/infrastructure/config"
)

func testStorageConfig(endpoint string) *config.StorageConfig {
	return &config.StorageConfig{
		Enabled:           true,
		Bucket:            "product-images",
		AccessKey:         "test-key",
		SecretKey:         "test-secret",
		Region:            "us-east-1",
		Endpoint:          endpoint,
		UsePathStyle:      true,
		PresignExpiration: 15 * time.Minute,
	}
}

// recordedRequest captures what the fake S3 server received
type recordedRequest struct {
	Method      string
	Path        string
	ContentType string
	Body        string
}

func newFakeS3(t *testing.T, status int) (*httptest.Server, func() []recordedRequest) {
	t.Helper()
	var (
		mu   sync.Mutex
		reqs []recordedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		reqs = append(reqs, recordedRequest{
			Method:      r.Method,
			Path:        r.URL.Path,
			ContentType: r.Header.Get("Content-Type"),
			Body:        string(body),
		})
		mu.Unlock()
		w.WriteHeader(status)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []recordedRequest {
		mu.Lock()
		defer mu.Unlock()
		out := make([]recordedRequest, len(reqs))
		copy(out, reqs)
		return out
	}
}

func TestNewS3ImageStorage_Validation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		cfg     *config.StorageConfig
		wantErr string
	}{
		{"nil config", nil, "configuration is required"},
		{"missing bucket", &config.StorageConfig{AccessKey: "k", SecretKey: "s"}, "bucket is required"},
		{"missing access key", &config.StorageConfig{Bucket: "b", SecretKey: "s"}, "access key is required"},
		{"missing secret key", &config.StorageConfig{Bucket: "b", AccessKey: "k"}, "secret key is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewS3ImageStorage(ctx, tt.cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	t.Run("valid config", func(t *testing.T) {
		s, err := NewS3ImageStorage(ctx, testStorageConfig("http://localhost:9000"))
		require.NoError(t, err)
		assert.Equal(t, "product-images", s.Bucket())
		assert.Equal(t, 15*time.Minute, s.presignExpiration)
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := testStorageConfig("http://localhost:9000")
		cfg.PresignExpiration = 0
		s, err := NewS3ImageStorage(ctx, cfg, WithLogger(zaptest.NewLogger(t)), WithPresignExpiration(time.Hour))
		require.NoError(t, err)
		assert.Equal(t, time.Hour, s.presignExpiration)
	})
}

func TestNormalizeEndpoint(t *testing.T) {
	assert.Equal(t, "", normalizeEndpoint("", false))
	assert.Equal(t, "http://localhost:9000", normalizeEndpoint("localhost:9000", false))
	assert.Equal(t, "https://s3.example.com", normalizeEndpoint("s3.example.com", true))
	assert.Equal(t, "http://minio:9000", normalizeEndpoint("http://minio:9000/", true))
}

func TestS3ImageStorage_Upload(t *testing.T) {
	srv, requests := newFakeS3(t, http.StatusOK)
	s, err := NewS3ImageStorage(context.Background(), testStorageConfig(srv.URL))
	require.NoError(t, err)

	err = s.Upload(context.Background(), "products/p1/img.png", strings.NewReader("png-data"), 8, "image/png")
	require.NoError(t, err)

	reqs := requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPut, reqs[0].Method)
	assert.Equal(t, "/product-images/products/p1/img.png", reqs[0].Path)
	assert.Equal(t, "image/png", reqs[0].ContentType)
	assert.Contains(t, reqs[0].Body, "png-data")
}

func TestS3ImageStorage_Delete(t *testing.T) {
	srv, requests := newFakeS3(t, http.StatusNoContent)
	s, err := NewS3ImageStorage(context.Background(), testStorageConfig(srv.URL))
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), "products/p1/img.png"))

	reqs := requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodDelete, reqs[0].Method)
	assert.Equal(t, "/product-images/products/p1/img.png", reqs[0].Path)
}

func TestS3ImageStorage_UploadFailure(t *testing.T) {
	srv, _ := newFakeS3(t, http.StatusForbidden)
	s, err := NewS3ImageStorage(context.Background(), testStorageConfig(srv.URL))
	require.NoError(t, err)

	err = s.Upload(context.Background(), "products/p1/img.png", strings.NewReader("x"), 1, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload image")
}

func TestS3ImageStorage_EmptyKey(t *testing.T) {
	s, err := NewS3ImageStorage(context.Background(), testStorageConfig("http://localhost:9000"))
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, s.Upload(ctx, "", strings.NewReader(""), 0, "image/png"))
	assert.Error(t, s.Delete(ctx, ""))
	_, _, err = s.DownloadURL(ctx, "", 0)
	assert.Error(t, err)
}

func TestS3ImageStorage_DownloadURL(t *testing.T) {
	s, err := NewS3ImageStorage(context.Background(), testStorageConfig("http://localhost:9000"))
	require.NoError(t, err)

	url, expiresAt, err := s.DownloadURL(context.Background(), "products/p1/img.png", 0)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "http://localhost:9000/product-images/products/p1/img.png?"))
	assert.Contains(t, url, "X-Amz-Signature=")
	assert.Contains(t, url, "X-Amz-Expires=900")
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)
}
