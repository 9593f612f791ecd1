package storage

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"sync"
	"time"
)

// MockPageStore is an in-memory implementation of PageStore for testing.
type MockPageStore struct {
	mu    sync.RWMutex
	pages map[string]*mockPage

	// FailWith, when set, is returned by every operation. It lets tests
	// exercise the gateway's degraded paths.
	FailWith error
}

type mockPage struct {
	data         []byte
	contentType  string
	lastModified time.Time
	etag         string
}

// NewMockPageStore creates a new MockPageStore instance
func NewMockPageStore() *MockPageStore {
	return &MockPageStore{
		pages: make(map[string]*mockPage),
	}
}

// Put seeds a page into the store.
func (m *MockPageStore) Put(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := time.Now()
	m.pages[key] = &mockPage{
		data:         append([]byte(nil), data...),
		contentType:  contentType,
		lastModified: now,
		etag:         fmt.Sprintf("%d-%d", len(data), now.Unix()),
	}
}

// Retrieve implements PageStore.Retrieve
func (m *MockPageStore) Retrieve(ctx context.Context, key string) ([]byte, error) {
	if m.FailWith != nil {
		return nil, NewStoreError("Retrieve", key, m.FailWith, IsRetryable(m.FailWith))
	}
	if key == "" {
		return nil, NewStoreError("Retrieve", key, ErrInvalidKey, false)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	page, exists := m.pages[key]
	if !exists {
		return nil, NewStoreError("Retrieve", key, ErrPageNotFound, false)
	}

	return append([]byte(nil), page.data...), nil
}

// Exists implements PageStore.Exists
func (m *MockPageStore) Exists(ctx context.Context, key string) (bool, error) {
	if m.FailWith != nil {
		return false, NewStoreError("Exists", key, m.FailWith, IsRetryable(m.FailWith))
	}
	if key == "" {
		return false, NewStoreError("Exists", key, ErrInvalidKey, false)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	_, exists := m.pages[key]
	return exists, nil
}

// GetMetadata implements PageStore.GetMetadata
func (m *MockPageStore) GetMetadata(ctx context.Context, key string) (*PageMetadata, error) {
	if m.FailWith != nil {
		return nil, NewStoreError("GetMetadata", key, m.FailWith, IsRetryable(m.FailWith))
	}
	if key == "" {
		return nil, NewStoreError("GetMetadata", key, ErrInvalidKey, false)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	page, exists := m.pages[key]
	if !exists {
		return nil, NewStoreError("GetMetadata", key, ErrPageNotFound, false)
	}

	return &PageMetadata{
		Key:          key,
		Size:         int64(len(page.data)),
		ContentType:  page.contentType,
		LastModified: page.lastModified,
		ETag:         page.etag,
	}, nil
}

// Close implements PageStore.Close
func (m *MockPageStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pages = make(map[string]*mockPage)
	return nil
}

// Reset clears all stored pages and any injected failure.
func (m *MockPageStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages = make(map[string]*mockPage)
	m.FailWith = nil
}

// PageCount returns the number of stored pages
func (m *MockPageStore) PageCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.pages)
}
