package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestInitAndLoadRoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DefaultDir)

	cfg, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if cfg.DataFile != DefaultDataFile {
		t.Errorf("DataFile = %q, want %q", cfg.DataFile, DefaultDataFile)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Version != CurrentVersion {
		t.Errorf("Version = %d, want %d", loaded.Version, CurrentVersion)
	}
	if loaded.DefaultCategory != DefaultCategory {
		t.Errorf("DefaultCategory = %q, want %q", loaded.DefaultCategory, DefaultCategory)
	}
	if loaded.Notifications.Enabled {
		t.Error("Notifications.Enabled = true, want false by default")
	}
	if loaded.DataPath() != filepath.Join(loaded.Dir(), DefaultDataFile) {
		t.Errorf("DataPath = %q", loaded.DataPath())
	}
}

func TestLoadMissingDir(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nowhere"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load error = %v, want ErrNotFound", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad version", "version: 99\ndata_file: tasks.json\ndefault_category: other\n"},
		{"missing data file", "version: 1\ndefault_category: other\n"},
		{"data file with path", "version: 1\ndata_file: ../tasks.json\ndefault_category: other\n"},
		{"unknown category", "version: 1\ndata_file: tasks.json\ndefault_category: urgent\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(tt.yaml), 0o600); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(dir); !errors.Is(err, ErrInvalid) {
				t.Errorf("Load error = %v, want ErrInvalid", err)
			}
		})
	}
}

func TestSaveNotificationsToggle(t *testing.T) {
	dir := filepath.Join(t.TempDir(), DefaultDir)
	cfg, err := Init(dir)
	if err != nil {
		t.Fatalf("Init: %v", err)
	}

	cfg.Notifications.Enabled = true
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Notifications.Enabled {
		t.Error("Notifications.Enabled = false after save, want true")
	}
}

func TestFindDir(t *testing.T) {
	root := t.TempDir()
	if _, err := Init(filepath.Join(root, DefaultDir)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	got, err := FindDir(nested)
	if err != nil {
		t.Fatalf("FindDir: %v", err)
	}
	want, _ := filepath.Abs(filepath.Join(root, DefaultDir))
	if got != want {
		t.Errorf("FindDir = %q, want %q", got, want)
	}

	// Starting inside the taskwatch directory itself also resolves.
	got, err = FindDir(want)
	if err != nil {
		t.Fatalf("FindDir from inside: %v", err)
	}
	if got != want {
		t.Errorf("FindDir from inside = %q, want %q", got, want)
	}
}
