package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestMockInvoker_RecordsCalls(t *testing.T) {
	invoker := &MockInvoker{
		Result: &Result{StatusCode: 200, Body: "OK"},
	}

	payload := &Payload{
		Event: map[string]string{"path": "/special"},
		Context: FunctionContext{
			FunctionName: "gateway",
			RequestID:    "req-1",
		},
	}

	result, err := invoker.Invoke(context.Background(), "arn:test", payload)
	if err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.Body != "OK" {
		t.Errorf("Body = %q, want %q", result.Body, "OK")
	}
	if invoker.Calls != 1 {
		t.Errorf("Calls = %d, want 1", invoker.Calls)
	}
	if invoker.LastRef != "arn:test" {
		t.Errorf("LastRef = %q", invoker.LastRef)
	}
	if invoker.LastPayload.Context.RequestID != "req-1" {
		t.Errorf("LastPayload.Context.RequestID = %q", invoker.LastPayload.Context.RequestID)
	}
}

func TestMockInvoker_ReturnsError(t *testing.T) {
	invoker := &MockInvoker{Err: ErrFunctionUnavailable}

	_, err := invoker.Invoke(context.Background(), "arn:test", &Payload{})
	if !errors.Is(err, ErrFunctionUnavailable) {
		t.Errorf("Invoke() error = %v, want ErrFunctionUnavailable", err)
	}
}

func TestPayload_WireShape(t *testing.T) {
	payload := &Payload{
		Event: map[string]string{"path": "/special"},
		Context: FunctionContext{
			FunctionName:    "gateway",
			FunctionVersion: "$LATEST",
			RequestID:       "req-1",
			MemoryLimitInMB: 128,
		},
	}

	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if _, ok := decoded["event"]; !ok {
		t.Error("payload is missing the event envelope")
	}

	var ctx map[string]any
	if err := json.Unmarshal(decoded["context"], &ctx); err != nil {
		t.Fatalf("Unmarshal(context) error = %v", err)
	}
	for _, key := range []string{"function_name", "function_version", "request_id", "memory_limit_in_mb"} {
		if _, ok := ctx[key]; !ok {
			t.Errorf("context is missing %q", key)
		}
	}
}

func TestResult_DecodesALBShape(t *testing.T) {
	raw := `{"statusCode":200,"statusDescription":"200 OK","headers":{"Content-Type":"text/plain"},"body":"OK","isBase64Encoded":false}`

	var result Result
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if result.StatusCode != 200 {
		t.Errorf("StatusCode = %d", result.StatusCode)
	}
	if result.Headers["Content-Type"] != "text/plain" {
		t.Errorf("Headers = %v", result.Headers)
	}
	if result.Body != "OK" {
		t.Errorf("Body = %q", result.Body)
	}
}
