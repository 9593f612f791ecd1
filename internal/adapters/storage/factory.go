package storage

import (
	"context"
	"fmt"
	"strings"
)

// StoreType represents the type of page store implementation
type StoreType string

const (
	StoreTypeS3    StoreType = "s3"
	StoreTypeLocal StoreType = "local"
	StoreTypeMock  StoreType = "mock"
)

// Factory creates PageStore instances based on configuration
type Factory struct {
	retryConfig *RetryConfig
}

// NewFactory creates a new store factory. A nil retryConfig disables the
// retry wrapper.
func NewFactory(retryConfig *RetryConfig) *Factory {
	return &Factory{
		retryConfig: retryConfig,
	}
}

// Create creates a PageStore instance based on the provided configuration
func (f *Factory) Create(ctx context.Context, config *Config) (PageStore, error) {
	if config == nil {
		return nil, fmt.Errorf("store config is required")
	}

	storeType := StoreType(strings.ToLower(config.Type))

	var store PageStore
	var err error

	switch storeType {
	case StoreTypeS3:
		store, err = NewS3PageStore(ctx, config.Bucket, config.Region)
	case StoreTypeLocal:
		store, err = NewLocalPageStore(config.BasePath)
	case StoreTypeMock:
		store = NewMockPageStore()
	default:
		return nil, fmt.Errorf("unsupported store type: %s", config.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s store: %w", config.Type, err)
	}

	if f.retryConfig != nil {
		store = NewRetryablePageStore(store, f.retryConfig)
	}

	return store, nil
}

// DefaultFactory returns a factory with default retry configuration
func DefaultFactory() *Factory {
	return NewFactory(DefaultRetryConfig())
}

// CreateFromConfig is a convenience function to create a store from config
func CreateFromConfig(ctx context.Context, config *Config) (PageStore, error) {
	return DefaultFactory().Create(ctx, config)
}
