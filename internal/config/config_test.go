package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// Helper to create a temp config file.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()
	tmpDir := t.TempDir()

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp config file: %v", err)
	}

	return configPath
}

// clearEnv blanks the variables Load reads so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"COMPETITOR_API_URL", "LISTEN_ADDR", "GIN_MODE", "REQUEST_TIMEOUT"} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("expected base url %q, got %q", DefaultBackendURL, cfg.Backend.BaseURL)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("expected addr %q, got %q", DefaultAddr, cfg.Server.Addr)
	}
	if cfg.Backend.RequestTimeout != 0 {
		t.Errorf("expected no request timeout by default, got %v", cfg.Backend.RequestTimeout)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := createTempConfigFile(t, `
server:
  addr: ":9000"
  mode: "debug"
backend:
  base_url: "https://competitors.example.com"
  request_timeout: 15s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.Mode != "debug" {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Backend.BaseURL != "https://competitors.example.com" {
		t.Errorf("unexpected base url: %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.RequestTimeout != 15*time.Second {
		t.Errorf("expected 15s timeout, got %v", cfg.Backend.RequestTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	path := createTempConfigFile(t, `
backend:
  base_url: "https://file.example.com"
`)
	t.Setenv("COMPETITOR_API_URL", "http://env.example.com:5002")
	t.Setenv("LISTEN_ADDR", "127.0.0.1:7000")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Backend.BaseURL != "http://env.example.com:5002" {
		t.Errorf("expected env base url to win, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("expected env addr, got %q", cfg.Server.Addr)
	}
	if cfg.Backend.RequestTimeout != 2*time.Second {
		t.Errorf("expected 2s timeout, got %v", cfg.Backend.RequestTimeout)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		wantErr error
	}{
		{
			name:    "relative backend url",
			content: "backend:\n  base_url: \"/api\"\n",
			wantErr: ErrInvalidBackendURL,
		},
		{
			name:    "unsupported scheme",
			content: "backend:\n  base_url: \"ftp://example.com\"\n",
			wantErr: ErrInvalidBackendURL,
		},
		{
			name:    "bad mode",
			content: "server:\n  mode: \"verbose\"\n",
			wantErr: ErrInvalidMode,
		},
		{
			name:    "empty addr",
			content: "server:\n  addr: \"\"\n",
			wantErr: ErrMissingAddr,
		},
		{
			name:    "negative timeout",
			content: "backend:\n  request_timeout: -1s\n",
			wantErr: ErrNegativeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			path := createTempConfigFile(t, tt.content)

			_, err := Load(path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadInvalidEnvTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "soon")

	if _, err := Load(""); err == nil {
		t.Fatal("expected error for unparsable REQUEST_TIMEOUT")
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
