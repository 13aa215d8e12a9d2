package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures the settings pixelfront reads at startup.
type Config struct {
	BaseURL    string // product API base URL
	PageSize   int    // products per page when the location names no limit
	DebounceMS int    // quiet period for text filter commits
}

const (
	defaultConfigPath = "~/.config/pixelfront/config.toml"
	defaultBaseURL    = "https://dummyjson.com"
	defaultPageSize   = 12
	defaultDebounceMS = 500
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:    defaultBaseURL,
		PageSize:   defaultPageSize,
		DebounceMS: defaultDebounceMS,
	}
}

// Load locates and parses the config file, falling back to defaults when it
// does not exist.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BaseURL    string `toml:"base_url"`
		PageSize   int    `toml:"page_size"`
		DebounceMS int    `toml:"debounce_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if base := strings.TrimSpace(raw.BaseURL); base != "" {
		cfg.BaseURL = base
	}
	if raw.PageSize > 0 {
		cfg.PageSize = raw.PageSize
	}
	if raw.DebounceMS > 0 {
		cfg.DebounceMS = raw.DebounceMS
	}

	return cfg, nil
}

// Debounce returns the quiet period as a duration.
func (c Config) Debounce() time.Duration {
	if c.DebounceMS <= 0 {
		return defaultDebounceMS * time.Millisecond
	}
	return time.Duration(c.DebounceMS) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
