package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir string, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_NonExistent(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.json")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	def := DefaultConfig()
	if cfg.Registrar.BaseURL != def.Registrar.BaseURL {
		t.Errorf("expected default base URL %q, got %q", def.Registrar.BaseURL, cfg.Registrar.BaseURL)
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, map[string]any{
		"registrar": map[string]any{
			"baseUrl":        "https://registrar.internal",
			"timeoutSeconds": 5,
		},
		"server": map[string]any{
			"name": "domainmcp-test",
		},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Registrar.BaseURL != "https://registrar.internal" {
		t.Errorf("expected base URL %q, got %q", "https://registrar.internal", cfg.Registrar.BaseURL)
	}
	if cfg.Registrar.TimeoutSeconds != 5 {
		t.Errorf("expected timeoutSeconds 5, got %d", cfg.Registrar.TimeoutSeconds)
	}
	if cfg.Server.Name != "domainmcp-test" {
		t.Errorf("expected server name %q, got %q", "domainmcp-test", cfg.Server.Name)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte("{not valid json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("expected no error for invalid JSON (falls back to default), got: %v", err)
	}
	def := DefaultConfig()
	if cfg.Registrar.BaseURL != def.Registrar.BaseURL {
		t.Errorf("expected default base URL %q, got %q", def.Registrar.BaseURL, cfg.Registrar.BaseURL)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DOMAINMCP_API_URL", "https://override.example")
	t.Setenv("DOMAINMCP_API_KEY", "secret-key")

	dir := t.TempDir()
	path := writeConfig(t, dir, map[string]any{
		"registrar": map[string]any{"baseUrl": "https://from-file.example"},
	})

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Registrar.BaseURL != "https://override.example" {
		t.Errorf("env override lost: got base URL %q", cfg.Registrar.BaseURL)
	}
	if cfg.Registrar.APIKey != "secret-key" {
		t.Errorf("env override lost: got API key %q", cfg.Registrar.APIKey)
	}
}

func TestTimeout_Default(t *testing.T) {
	var rc RegistrarConfig
	if got := rc.Timeout().Seconds(); got != 30 {
		t.Errorf("expected 30s default timeout, got %vs", got)
	}
	rc.TimeoutSeconds = 7
	if got := rc.Timeout().Seconds(); got != 7 {
		t.Errorf("expected 7s timeout, got %vs", got)
	}
}
