package storage

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// LocalPageStore reads maintenance pages from a local directory. It exists
// for the preview server; deployed gateways use S3.
type LocalPageStore struct {
	basePath string
}

// NewLocalPageStore creates a page store rooted at basePath.
func NewLocalPageStore(basePath string) (*LocalPageStore, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path is required")
	}

	absPath, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve base path: %w", err)
	}

	return &LocalPageStore{basePath: absPath}, nil
}

// Retrieve implements PageStore.Retrieve
func (l *LocalPageStore) Retrieve(ctx context.Context, key string) ([]byte, error) {
	path, err := l.resolve("Retrieve", key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, l.wrapError("Retrieve", key, err)
	}

	return data, nil
}

// Exists implements PageStore.Exists
func (l *LocalPageStore) Exists(ctx context.Context, key string) (bool, error) {
	path, err := l.resolve("Exists", key)
	if err != nil {
		return false, err
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, l.wrapError("Exists", key, err)
	}
	return true, nil
}

// GetMetadata implements PageStore.GetMetadata
func (l *LocalPageStore) GetMetadata(ctx context.Context, key string) (*PageMetadata, error) {
	path, err := l.resolve("GetMetadata", key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, l.wrapError("GetMetadata", key, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	return &PageMetadata{
		Key:          key,
		Size:         info.Size(),
		ContentType:  contentType,
		LastModified: info.ModTime(),
	}, nil
}

// Close implements PageStore.Close
func (l *LocalPageStore) Close() error {
	return nil
}

// resolve maps a storage key to a path under basePath, rejecting keys that
// would escape it.
func (l *LocalPageStore) resolve(op, key string) (string, error) {
	if key == "" {
		return "", NewStoreError(op, key, ErrInvalidKey, false)
	}

	path := filepath.Join(l.basePath, filepath.FromSlash(key))
	if !strings.HasPrefix(path, l.basePath+string(filepath.Separator)) {
		return "", NewStoreError(op, key, ErrInvalidKey, false)
	}

	return path, nil
}

func (l *LocalPageStore) wrapError(op, key string, err error) error {
	if os.IsNotExist(err) {
		return NewStoreError(op, key, ErrPageNotFound, false)
	}
	if os.IsPermission(err) {
		return NewStoreError(op, key, ErrPermissionDenied, false)
	}
	return NewStoreError(op, key, fmt.Errorf("%w: %v", ErrStoreUnavailable, err), true)
}
