package config

import (
	"os"
	"path/filepath"
	"testing"
)

// testAnkiDir creates an Anki profile directory with a collection.media
// subdirectory.
func testAnkiDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, MediaDirName), 0o750); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}
}

func TestConfigValidate(t *testing.T) {
	ankiDir := testAnkiDir(t)
	rosterPath := filepath.Join(t.TempDir(), "math115a.pdf")

	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: &Config{
				RosterPath: rosterPath,
				AnkiDir:    ankiDir,
				LogLevel:   "info",
			},
			wantErr: false,
		},
		{
			name: "empty roster path",
			config: &Config{
				AnkiDir:  ankiDir,
				LogLevel: "info",
			},
			wantErr: true,
		},
		{
			name: "roster is not a pdf",
			config: &Config{
				RosterPath: filepath.Join(t.TempDir(), "math115a.csv"),
				AnkiDir:    ankiDir,
				LogLevel:   "info",
			},
			wantErr: true,
		},
		{
			name: "empty anki directory",
			config: &Config{
				RosterPath: rosterPath,
				LogLevel:   "info",
			},
			wantErr: true,
		},
		{
			name: "anki directory without media subdirectory",
			config: &Config{
				RosterPath: rosterPath,
				AnkiDir:    t.TempDir(),
				LogLevel:   "info",
			},
			wantErr: true,
		},
		{
			name: "invalid log level",
			config: &Config{
				RosterPath: rosterPath,
				AnkiDir:    ankiDir,
				LogLevel:   "verbose",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPhotoDir(t *testing.T) {
	cfg := &Config{AnkiDir: "/home/user/Anki/User"}
	want := filepath.Join("/home/user/Anki/User", MediaDirName)
	if cfg.PhotoDir() != want {
		t.Errorf("Expected photo dir '%s', got '%s'", want, cfg.PhotoDir())
	}
}

func TestIsDebug(t *testing.T) {
	cfg := &Config{LogLevel: "debug"}
	if !cfg.IsDebug() {
		t.Error("Expected IsDebug to be true for debug log level")
	}

	cfg.LogLevel = "info"
	if cfg.IsDebug() {
		t.Error("Expected IsDebug to be false for info log level")
	}
}
