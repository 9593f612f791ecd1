// Package invoke forwards load-balancer events to a downstream function and
// decodes its response.
package invoke

import (
	"context"
	"errors"
)

// Common invocation error types
var (
	ErrFunctionUnavailable = errors.New("downstream function unavailable")
	ErrMalformedResponse   = errors.New("malformed downstream response")
	ErrTimeout             = errors.New("invocation timeout")
)

// FunctionContext carries the calling function's runtime identity to the
// downstream function.
type FunctionContext struct {
	FunctionName    string `json:"function_name"`
	FunctionVersion string `json:"function_version"`
	RequestID       string `json:"request_id"`
	MemoryLimitInMB int32  `json:"memory_limit_in_mb"`
}

// Payload is the envelope sent to the downstream function: the inbound
// event plus the caller's context.
type Payload struct {
	Event   any             `json:"event"`
	Context FunctionContext `json:"context"`
}

// Result is the downstream function's response, in the shape the load
// balancer expects so it can be relayed verbatim.
type Result struct {
	StatusCode        int               `json:"statusCode"`
	StatusDescription string            `json:"statusDescription"`
	Headers           map[string]string `json:"headers"`
	Body              string            `json:"body"`
	IsBase64Encoded   bool              `json:"isBase64Encoded"`
}

// FunctionInvoker invokes a downstream function synchronously and returns
// its decoded response.
type FunctionInvoker interface {
	Invoke(ctx context.Context, functionRef string, payload *Payload) (*Result, error)
}
