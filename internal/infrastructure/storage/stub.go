package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"
	"time"

	catalogapp "github.com/shopledger/backend/internal/application/catalog"
)

// MemoryImageStorage keeps images in memory and hands out URLs under a
// fixed base. Used when object storage is disabled and in tests.
type MemoryImageStorage struct {
	BaseURL string

	mu      sync.RWMutex
	objects map[string][]byte
}

var _ catalogapp.ImageStorage = (*MemoryImageStorage)(nil)

// NewMemoryImageStorage creates an empty store
func NewMemoryImageStorage(baseURL string) *MemoryImageStorage {
	return &MemoryImageStorage{
		BaseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string][]byte),
	}
}

// Upload reads body fully and keeps it under key
func (s *MemoryImageStorage) Upload(_ context.Context, key string, body io.Reader, _ int64, _ string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	s.mu.Lock()
	s.objects[key] = buf.Bytes()
	s.mu.Unlock()
	return nil
}

// Delete forgets key
func (s *MemoryImageStorage) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// DownloadURL returns BaseURL/key with an expiry hint
func (s *MemoryImageStorage) DownloadURL(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	expiresAt := time.Now().Add(expiresIn)
	u := fmt.Sprintf("%s/%s?expires=%s", s.BaseURL, key, url.QueryEscape(expiresAt.UTC().Format(time.RFC3339)))
	return u, expiresAt, nil
}

// Object returns the stored bytes for key
func (s *MemoryImageStorage) Object(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects
func (s *MemoryImageStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
