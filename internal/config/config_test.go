package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}
}

func TestLoad_ReadsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "base_url = \"http://localhost:9001\"\npage_size = 24\ndebounce_ms = 250\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BaseURL != "http://localhost:9001" {
		t.Fatalf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.PageSize != 24 {
		t.Fatalf("PageSize = %d, want 24", cfg.PageSize)
	}
	if got := cfg.Debounce(); got != 250*time.Millisecond {
		t.Fatalf("Debounce() = %v, want 250ms", got)
	}
}

func TestLoad_PartialConfigKeepsOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("page_size = 6\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != 6 {
		t.Fatalf("PageSize = %d, want 6", cfg.PageSize)
	}
	if cfg.BaseURL != defaultBaseURL {
		t.Fatalf("BaseURL = %q, want default", cfg.BaseURL)
	}
	if cfg.DebounceMS != defaultDebounceMS {
		t.Fatalf("DebounceMS = %d, want default", cfg.DebounceMS)
	}
}

func TestLoad_MalformedConfigErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("base_url = [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestLoad_NonPositiveValuesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("page_size = 0\ndebounce_ms = -5\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.PageSize != defaultPageSize || cfg.DebounceMS != defaultDebounceMS {
		t.Fatalf("cfg = %#v, want non-positive values replaced with defaults", cfg)
	}
}
