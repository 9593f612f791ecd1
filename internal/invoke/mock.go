package invoke

import (
	"context"
	"sync"
)

// MockInvoker is a FunctionInvoker for testing. It records calls and
// returns a canned result or error.
type MockInvoker struct {
	mu sync.Mutex

	Result *Result
	Err    error

	Calls       int
	LastRef     string
	LastPayload *Payload
}

// Invoke implements FunctionInvoker.Invoke
func (m *MockInvoker) Invoke(ctx context.Context, functionRef string, payload *Payload) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	m.LastRef = functionRef
	m.LastPayload = payload

	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}
