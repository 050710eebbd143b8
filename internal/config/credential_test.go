package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCredentialStore_LoadMissingFile(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	store := NewCredentialStoreAt(filepath.Join(t.TempDir(), "nope", ".env"))

	key, err := store.Load()
	if err != nil {
		t.Fatalf("Load() with missing file should not error, got %v", err)
	}
	if key != "" {
		t.Errorf("Expected empty key for missing file, got %q", key)
	}
}

func TestCredentialStore_SaveLoadRoundtrip(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	store := NewCredentialStoreAt(filepath.Join(t.TempDir(), "app", ".env"))

	if err := store.Save("AIza-test-credential"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	key, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if key != "AIza-test-credential" {
		t.Errorf("Expected saved key back, got %q", key)
	}

	// Plain key=value format on disk
	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("reading credential file: %v", err)
	}
	if !strings.Contains(string(data), EnvAPIKey+"=") {
		t.Errorf("credential file should contain %s=..., got %q", EnvAPIKey, string(data))
	}
}

func TestCredentialStore_EnvOverridesFile(t *testing.T) {
	store := NewCredentialStoreAt(filepath.Join(t.TempDir(), ".env"))
	if err := store.Save("from-file"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	t.Setenv(EnvAPIKey, "from-env")

	key, err := store.Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if key != "from-env" {
		t.Errorf("Environment variable should win, got %q", key)
	}
}

func TestCredentialStore_SavePreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("OTHER_SETTING=keep-me\n"), 0600); err != nil {
		t.Fatalf("seeding env file: %v", err)
	}

	store := NewCredentialStoreAt(path)
	if err := store.Save("AIza-test"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading credential file: %v", err)
	}
	if !strings.Contains(string(data), "OTHER_SETTING") {
		t.Error("Save() should preserve unrelated keys in the file")
	}
}
