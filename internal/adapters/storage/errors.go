package storage

import (
	"errors"
	"fmt"
)

// Common store error types
var (
	ErrPageNotFound     = errors.New("page not found")
	ErrInvalidKey       = errors.New("invalid storage key")
	ErrStoreUnavailable = errors.New("storage service unavailable")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTimeout          = errors.New("operation timeout")
)

// StoreError represents a store operation error with additional context
type StoreError struct {
	Op        string // Operation that failed (e.g., "Retrieve")
	Key       string // Storage key involved in the operation
	Err       error  // Underlying error
	Retryable bool   // Whether the operation can be retried
}

func (e *StoreError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("storage %s operation failed for key '%s': %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s operation failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError
func NewStoreError(op, key string, err error, retryable bool) *StoreError {
	return &StoreError{
		Op:        op,
		Key:       key,
		Err:       err,
		Retryable: retryable,
	}
}

// IsNotFound returns true if the error indicates a missing page
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPageNotFound)
}

// IsPermissionDenied returns true if the error indicates denied access
func IsPermissionDenied(err error) bool {
	return errors.Is(err, ErrPermissionDenied)
}

// IsRetryable returns true if the error indicates a retryable condition
func IsRetryable(err error) bool {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Retryable
	}

	return errors.Is(err, ErrStoreUnavailable) || errors.Is(err, ErrTimeout)
}
