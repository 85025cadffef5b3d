package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PDFDirectory == "" {
		t.Error("Expected PDFDirectory to be set")
	}
	if cfg.PrefsPath == "" {
		t.Error("Expected PrefsPath to be set")
	}
	if filepath.Base(cfg.PrefsPath) != DefaultPrefsFile {
		t.Errorf("Expected prefs file name %s, got %s", DefaultPrefsFile, filepath.Base(cfg.PrefsPath))
	}
	if cfg.ServerName != "mcp-pdf-comments" {
		t.Errorf("Expected server name mcp-pdf-comments, got %s", cfg.ServerName)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Expected log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.MaxFileSize != DefaultMaxFileSize {
		t.Errorf("Expected max file size %d, got %d", DefaultMaxFileSize, cfg.MaxFileSize)
	}
}

func TestConfigValidate(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errText string
	}{
		{
			name:    "valid configuration",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "empty PDF directory",
			mutate:  func(c *Config) { c.PDFDirectory = "" },
			wantErr: true,
			errText: "PDF directory cannot be empty",
		},
		{
			name: "missing PDF directory is created",
			mutate: func(c *Config) {
				c.PDFDirectory = filepath.Join(tempDir, "created")
			},
			wantErr: false,
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
			errText: "maximum file size must be positive",
		},
		{
			name:    "negative max file size",
			mutate:  func(c *Config) { c.MaxFileSize = -1 },
			wantErr: true,
			errText: "maximum file size must be positive",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
			errText: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PDFDirectory = tempDir
			cfg.PrefsPath = filepath.Join(tempDir, DefaultPrefsFile)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected validation error, got nil")
				}
				if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
					t.Errorf("Expected error containing %q, got %q", tt.errText, err.Error())
				}
			} else if err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestConfigIsDebug(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.IsDebug() {
		t.Error("Expected IsDebug to be false for default log level")
	}

	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("Expected IsDebug to be true for debug log level")
	}
}

func TestConfigString(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PDFDirectory = "/tmp/pdfs"

	s := cfg.String()
	if !strings.Contains(s, "/tmp/pdfs") {
		t.Errorf("Expected string representation to contain directory, got %s", s)
	}
	if !strings.Contains(s, cfg.LogLevel) {
		t.Errorf("Expected string representation to contain log level, got %s", s)
	}
}
