package storage

import (
	"context"
	"testing"
)

func TestMockPageStore_Retrieve(t *testing.T) {
	store := NewMockPageStore()
	defer store.Close()

	ctx := context.Background()
	store.Put("maintenance.html", []byte("<html>down</html>"))

	tests := []struct {
		name      string
		key       string
		want      string
		wantErr   bool
		errAssert func(error) bool
	}{
		{
			name: "existing page",
			key:  "maintenance.html",
			want: "<html>down</html>",
		},
		{
			name:      "missing page",
			key:       "missing.html",
			wantErr:   true,
			errAssert: IsNotFound,
		},
		{
			name:    "empty key",
			key:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := store.Retrieve(ctx, tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Retrieve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.errAssert != nil && !tt.errAssert(err) {
					t.Errorf("error %v does not match expected class", err)
				}
				return
			}
			if string(data) != tt.want {
				t.Errorf("Retrieve() = %q, want %q", data, tt.want)
			}
		})
	}
}

func TestMockPageStore_Exists(t *testing.T) {
	store := NewMockPageStore()
	defer store.Close()

	ctx := context.Background()
	store.Put("maintenance.html", []byte("x"))

	exists, err := store.Exists(ctx, "maintenance.html")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false for seeded page")
	}

	exists, err = store.Exists(ctx, "other.html")
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for missing page")
	}
}

func TestMockPageStore_GetMetadata(t *testing.T) {
	store := NewMockPageStore()
	defer store.Close()

	store.Put("pages/maintenance.html", []byte("<html></html>"))

	meta, err := store.GetMetadata(context.Background(), "pages/maintenance.html")
	if err != nil {
		t.Fatalf("GetMetadata() error = %v", err)
	}
	if meta.Size != int64(len("<html></html>")) {
		t.Errorf("Size = %d, want %d", meta.Size, len("<html></html>"))
	}
	if meta.ContentType != "text/html; charset=utf-8" {
		t.Errorf("ContentType = %q", meta.ContentType)
	}
	if meta.ETag == "" {
		t.Error("ETag should not be empty")
	}
}

func TestMockPageStore_InjectedFailure(t *testing.T) {
	store := NewMockPageStore()
	store.Put("maintenance.html", []byte("x"))
	store.FailWith = ErrStoreUnavailable

	_, err := store.Retrieve(context.Background(), "maintenance.html")
	if err == nil {
		t.Fatal("Retrieve() should fail when FailWith is set")
	}
	if !IsRetryable(err) {
		t.Errorf("unavailable error should be retryable, got %v", err)
	}

	store.Reset()
	if store.PageCount() != 0 {
		t.Errorf("PageCount() = %d after Reset, want 0", store.PageCount())
	}
	if _, err := store.Exists(context.Background(), "maintenance.html"); err != nil {
		t.Errorf("Exists() after Reset should not fail: %v", err)
	}
}

func TestStoreError_Classification(t *testing.T) {
	notFound := NewStoreError("Retrieve", "k", ErrPageNotFound, false)
	if !IsNotFound(notFound) {
		t.Error("IsNotFound should unwrap StoreError")
	}
	if IsRetryable(notFound) {
		t.Error("not-found must not be retryable")
	}

	denied := NewStoreError("Retrieve", "k", ErrPermissionDenied, false)
	if !IsPermissionDenied(denied) {
		t.Error("IsPermissionDenied should unwrap StoreError")
	}

	transient := NewStoreError("Retrieve", "k", ErrStoreUnavailable, true)
	if !IsRetryable(transient) {
		t.Error("unavailable must be retryable")
	}
}
