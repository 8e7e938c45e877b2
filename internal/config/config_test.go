package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultKeyMappings(t *testing.T) {
	defaults := DefaultKeyMappings()

	if defaults.Quit != "q" {
		t.Errorf("Default Quit key = %s, want q", defaults.Quit)
	}
	if defaults.PickUp != "space" {
		t.Errorf("Default PickUp key = %s, want space", defaults.PickUp)
	}
	if defaults.Drop != "enter" {
		t.Errorf("Default Drop key = %s, want enter", defaults.Drop)
	}
	if defaults.Cancel != "esc" {
		t.Errorf("Default Cancel key = %s, want esc", defaults.Cancel)
	}
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvThemeFile, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() without config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "q" {
		t.Errorf("Loaded config Quit key = %s, want q (default)", cfg.KeyMappings.Quit)
	}
	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("Backend.BaseURL = %s, want %s", cfg.Backend.BaseURL, DefaultBackendURL)
	}
	if cfg.Backend.Timeout != DefaultTimeout {
		t.Errorf("Backend.Timeout = %v, want %v", cfg.Backend.Timeout, DefaultTimeout)
	}
	if cfg.Preferences.Density != DensityComfortable {
		t.Errorf("Preferences.Density = %s, want %s", cfg.Preferences.Density, DensityComfortable)
	}
	if cfg.ColorScheme.Preset != "default" {
		t.Errorf("ColorScheme.Preset = %s, want default", cfg.ColorScheme.Preset)
	}
}

func TestLoadConfigWithFile(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvThemeFile, "")

	configDir := filepath.Join(tempDir, "plantel")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}

	configContent := `backend:
  base_url: "http://clinic.test/api"
  timeout: 3s
services:
  curp_url: "http://curp.test"
preferences:
  density: compact
  hidden_columns: [2]
key_mappings:
  quit: "x"
  pick_up: "v"
`
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Loaded Quit key = %s, want x", cfg.KeyMappings.Quit)
	}
	if cfg.KeyMappings.PickUp != "v" {
		t.Errorf("Loaded PickUp key = %s, want v", cfg.KeyMappings.PickUp)
	}
	if cfg.KeyMappings.Drop != "enter" {
		t.Errorf("Loaded Drop key = %s, want enter (default)", cfg.KeyMappings.Drop)
	}
	if cfg.Backend.BaseURL != "http://clinic.test/api" {
		t.Errorf("Backend.BaseURL = %s", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout != 3*time.Second {
		t.Errorf("Backend.Timeout = %v, want 3s", cfg.Backend.Timeout)
	}
	if cfg.Services.CURPURL != "http://curp.test" {
		t.Errorf("Services.CURPURL = %s", cfg.Services.CURPURL)
	}
	if !cfg.Preferences.Compact() {
		t.Error("Expected compact density")
	}
	if !cfg.Preferences.IsHidden(2) || cfg.Preferences.IsHidden(1) {
		t.Errorf("HiddenColumns = %v, want [2]", cfg.Preferences.HiddenColumns)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	configDir := filepath.Join(tempDir, "plantel")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("backend: [oops"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() with malformed yaml should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvBackendURL, "http://override.test/api")
	t.Setenv(EnvDBPath, "/tmp/plantel-test.db")
	t.Setenv(EnvListenAddr, ":9999")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Backend.BaseURL != "http://override.test/api" {
		t.Errorf("Backend.BaseURL = %s", cfg.Backend.BaseURL)
	}
	if cfg.Server.Database != "/tmp/plantel-test.db" {
		t.Errorf("Server.Database = %s", cfg.Server.Database)
	}
	if cfg.Server.Listen != ":9999" {
		t.Errorf("Server.Listen = %s", cfg.Server.Listen)
	}
}

func TestSaveConfig(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tempDir)
	t.Setenv(EnvBackendURL, "")
	t.Setenv(EnvThemeFile, "")

	cfg := &Config{
		KeyMappings: KeyMappings{Quit: "x"},
		Preferences: Preferences{PinnedColumns: []int{3}},
	}
	cfg.applyDefaults()

	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	configPath := filepath.Join(tempDir, "plantel", "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Fatalf("Config file not created at %s", configPath)
	}

	cfg2, err := Load()
	if err != nil {
		t.Fatalf("Load() after Save() failed: %v", err)
	}

	if cfg2.KeyMappings.Quit != "x" {
		t.Errorf("Reloaded Quit key = %s, want x", cfg2.KeyMappings.Quit)
	}
	if !cfg2.Preferences.IsPinned(3) {
		t.Errorf("Reloaded PinnedColumns = %v, want [3]", cfg2.Preferences.PinnedColumns)
	}
}

func TestPreferences(t *testing.T) {
	t.Parallel()

	var p Preferences

	if err := p.SetDensity("huge"); err == nil {
		t.Error("SetDensity(huge) should fail")
	}
	if err := p.SetDensity(DensityCompact); err != nil {
		t.Fatalf("SetDensity(compact) failed: %v", err)
	}
	if !p.Compact() {
		t.Error("Expected compact after SetDensity")
	}

	p.ToggleHidden(4)
	if !p.IsHidden(4) {
		t.Error("Expected column 4 hidden")
	}
	p.ToggleHidden(4)
	if p.IsHidden(4) {
		t.Error("Expected column 4 visible after second toggle")
	}

	p.TogglePinned(1)
	p.TogglePinned(2)
	p.TogglePinned(1)
	if p.IsPinned(1) || !p.IsPinned(2) {
		t.Errorf("PinnedColumns = %v, want [2]", p.PinnedColumns)
	}
}
