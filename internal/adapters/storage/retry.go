package storage

import (
	"context"
	"math"
	"math/rand"
	"time"
)

// RetryConfig configures retry behavior for store operations
type RetryConfig struct {
	MaxAttempts   int           `json:"max_attempts" yaml:"max_attempts"`
	InitialDelay  time.Duration `json:"initial_delay" yaml:"initial_delay"`
	MaxDelay      time.Duration `json:"max_delay" yaml:"max_delay"`
	BackoffFactor float64       `json:"backoff_factor" yaml:"backoff_factor"`
	JitterEnabled bool          `json:"jitter_enabled" yaml:"jitter_enabled"`
}

// DefaultRetryConfig returns a sensible default retry configuration. The
// delays stay small: retries must fit inside the dispatcher's per-call
// timeout, which caps the whole fetch.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxAttempts:   2,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      1 * time.Second,
		BackoffFactor: 2.0,
		JitterEnabled: true,
	}
}

// RetryableOperation represents an operation that can be retried
type RetryableOperation func(ctx context.Context) error

// WithRetry executes an operation with retry logic. Non-retryable errors
// (not found, denied, invalid key) fail immediately.
func WithRetry(ctx context.Context, config *RetryConfig, op RetryableOperation) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	var lastErr error

	for attempt := 1; attempt <= config.MaxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err := op(ctx)
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt >= config.MaxAttempts || !IsRetryable(err) {
			break
		}

		delay := config.calculateDelay(attempt)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return lastErr
}

// calculateDelay calculates the delay before the next retry attempt
func (c *RetryConfig) calculateDelay(attempt int) time.Duration {
	delay := float64(c.InitialDelay) * math.Pow(c.BackoffFactor, float64(attempt-1))

	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}

	if c.JitterEnabled {
		delay += rand.Float64() * 0.1 * delay
	}

	return time.Duration(delay)
}

// RetryablePageStore wraps a PageStore implementation with retry logic
type RetryablePageStore struct {
	store  PageStore
	config *RetryConfig
}

// NewRetryablePageStore creates a new RetryablePageStore
func NewRetryablePageStore(store PageStore, config *RetryConfig) *RetryablePageStore {
	if config == nil {
		config = DefaultRetryConfig()
	}

	return &RetryablePageStore{
		store:  store,
		config: config,
	}
}

// Retrieve implements PageStore.Retrieve with retry logic
func (r *RetryablePageStore) Retrieve(ctx context.Context, key string) ([]byte, error) {
	var result []byte
	err := WithRetry(ctx, r.config, func(ctx context.Context) error {
		data, err := r.store.Retrieve(ctx, key)
		if err != nil {
			return err
		}
		result = data
		return nil
	})
	return result, err
}

// Exists implements PageStore.Exists with retry logic
func (r *RetryablePageStore) Exists(ctx context.Context, key string) (bool, error) {
	var result bool
	err := WithRetry(ctx, r.config, func(ctx context.Context) error {
		exists, err := r.store.Exists(ctx, key)
		if err != nil {
			return err
		}
		result = exists
		return nil
	})
	return result, err
}

// GetMetadata implements PageStore.GetMetadata with retry logic
func (r *RetryablePageStore) GetMetadata(ctx context.Context, key string) (*PageMetadata, error) {
	var result *PageMetadata
	err := WithRetry(ctx, r.config, func(ctx context.Context) error {
		metadata, err := r.store.GetMetadata(ctx, key)
		if err != nil {
			return err
		}
		result = metadata
		return nil
	})
	return result, err
}

// Close implements PageStore.Close
func (r *RetryablePageStore) Close() error {
	return r.store.Close()
}
