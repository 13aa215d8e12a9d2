package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()

	p := Load(filepath.Join(dir, "missing.toml"))

	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
	if p.Currency != defaultCurrency {
		t.Fatalf("Currency = %q, want %q", p.Currency, defaultCurrency)
	}
}

func TestLoad_MalformedFileDegradesGracefully(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = [oops"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	p := Load(path)

	if p.Theme != defaultTheme || p.Currency != defaultCurrency {
		t.Fatalf("prefs = %#v, want defaults on parse failure", p)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prefs.toml")

	saved := Prefs{Theme: "Nord", Currency: "EUR"}
	if err := Save(path, saved); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	got := Load(path)
	if got != saved {
		t.Fatalf("Load = %#v, want %#v", got, saved)
	}
}

func TestLoad_BlankFieldsFallBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"  \"\ncurrency = \"\"\n"), 0o644); err != nil {
		t.Fatalf("write prefs: %v", err)
	}

	p := Load(path)

	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want default for blank value", p.Theme)
	}
	if p.Currency != defaultCurrency {
		t.Fatalf("Currency = %q, want default for blank value", p.Currency)
	}
}
