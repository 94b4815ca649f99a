package badger

import (
	"bytes"
	"context"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	repo := NewSettingsRepository(backend)
	ctx := context.Background()

	if err := repo.SetSetting(ctx, "search:history", []byte("blob")); err != nil {
		t.Fatalf("Failed to set setting: %v", err)
	}

	value, err := repo.GetSetting(ctx, "search:history")
	if err != nil {
		t.Fatalf("Failed to get setting: %v", err)
	}
	if !bytes.Equal(value, []byte("blob")) {
		t.Fatalf("Expected 'blob', got '%s'", value)
	}

	// Overwrite replaces the previous value
	if err := repo.SetSetting(ctx, "search:history", []byte("new blob")); err != nil {
		t.Fatalf("Failed to overwrite setting: %v", err)
	}
	value, err = repo.GetSetting(ctx, "search:history")
	if err != nil {
		t.Fatalf("Failed to get setting: %v", err)
	}
	if !bytes.Equal(value, []byte("new blob")) {
		t.Fatalf("Expected 'new blob', got '%s'", value)
	}
}

func TestSettingsMissingKey(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	repo := NewSettingsRepository(backend)

	value, err := repo.GetSetting(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Expected no error for missing key, got %v", err)
	}
	if value != nil {
		t.Fatalf("Expected nil value for missing key, got '%s'", value)
	}
}

func TestSettingsDelete(t *testing.T) {
	backend, err := OpenBackend("", true)
	if err != nil {
		t.Fatalf("Failed to open backend: %v", err)
	}
	defer backend.Close()

	repo := NewSettingsRepository(backend)
	ctx := context.Background()

	if err := repo.SetSetting(ctx, "key", []byte("value")); err != nil {
		t.Fatalf("Failed to set setting: %v", err)
	}
	if err := repo.DeleteSetting(ctx, "key"); err != nil {
		t.Fatalf("Failed to delete setting: %v", err)
	}

	value, err := repo.GetSetting(ctx, "key")
	if err != nil {
		t.Fatalf("Failed to get setting after delete: %v", err)
	}
	if value != nil {
		t.Fatalf("Expected nil value after delete, got '%s'", value)
	}

	// Deleting a missing key is not an error
	if err := repo.DeleteSetting(ctx, "never-existed"); err != nil {
		t.Fatalf("Expected no error deleting missing key, got %v", err)
	}
}
