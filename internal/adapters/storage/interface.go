package storage

import (
	"context"
	"time"
)

// PageMetadata describes a stored maintenance page.
type PageMetadata struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	ContentType  string    `json:"content_type"`
	LastModified time.Time `json:"last_modified"`
	ETag         string    `json:"etag,omitempty"`
}

// PageStore provides read access to maintenance page documents. The gateway
// never writes pages; they are published out of band.
type PageStore interface {
	// Retrieve fetches the page stored at the given key.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Exists reports whether a page is present at the given key.
	Exists(ctx context.Context, key string) (bool, error)

	// GetMetadata returns metadata for a stored page.
	GetMetadata(ctx context.Context, key string) (*PageMetadata, error)

	// Close releases any resources held by the store.
	Close() error
}

// Config selects and configures a PageStore implementation.
type Config struct {
	Type     string `json:"type" yaml:"type"`           // "s3", "local", "mock"
	Bucket   string `json:"bucket" yaml:"bucket"`       // For S3
	Region   string `json:"region" yaml:"region"`       // For S3
	BasePath string `json:"base_path" yaml:"base_path"` // For local storage
}
