package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"maintenance-gateway/internal/config"
	"maintenance-gateway/internal/gateway"
)

func testGatewayRequest() *gateway.Request {
	return &gateway.Request{
		Method:    "GET",
		Path:      "/",
		RequestID: "test-req",
		Headers:   map[string]string{"host": "example.com"},
	}
}

func mockConfig() *config.Config {
	return &config.Config{
		Environment: "test",
		LogLevel:    "error",
		Maintenance: config.MaintenanceConfig{Enabled: true, RetryAfter: 3600},
		Storage: config.StorageConfig{
			Type:    "mock",
			Bucket:  "maintenance-pages",
			Key:     "maintenance.html",
			Timeout: time.Second,
		},
		Special: config.SpecialRouteConfig{Timeout: time.Second},
	}
}

func TestNewContainer(t *testing.T) {
	container, err := NewContainer(context.Background(), mockConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	defer container.Close()

	if container.Dispatcher == nil {
		t.Fatal("container has no dispatcher")
	}
	if container.Config == nil {
		t.Fatal("container has no config")
	}
}

func TestNewContainer_NilConfig(t *testing.T) {
	if _, err := NewContainer(context.Background(), nil); err == nil {
		t.Error("NewContainer(nil) should fail")
	}
}

func TestContainer_DispatcherServesMaintenance(t *testing.T) {
	container, err := NewContainer(context.Background(), mockConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}
	defer container.Close()

	// The mock store is empty, so the dispatcher must degrade to the
	// compiled-in fallback page.
	resp := container.Dispatcher.Handle(context.Background(), testGatewayRequest())

	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want 503", resp.StatusCode)
	}
	if resp.StatusDescription == "" {
		t.Error("response is missing statusDescription")
	}
	if resp.Body == "" {
		t.Error("response is missing body")
	}
}

func TestContainer_Close(t *testing.T) {
	container, err := NewContainer(context.Background(), mockConfig())
	if err != nil {
		t.Fatalf("NewContainer() error = %v", err)
	}

	if err := container.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
