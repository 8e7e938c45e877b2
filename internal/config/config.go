package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment overrides
const (
	EnvBackendURL = "PLANTEL_BACKEND_URL"
	EnvDBPath     = "PLANTEL_DB_PATH"
	EnvListenAddr = "PLANTEL_LISTEN_ADDR"
	EnvThemeFile  = "PLANTEL_THEME_FILE"
)

// Defaults
const (
	DefaultBackendURL = "http://localhost:8080/api"
	DefaultTimeout    = 10 * time.Second
	DefaultListenAddr = ":8080"
)

// Card density
const (
	DensityComfortable = "comfortable"
	DensityCompact     = "compact"
)

// ErrInvalidDensity is returned when a density preference is not recognized
var ErrInvalidDensity = errors.New("density must be comfortable or compact")

// Config represents the application configuration
type Config struct {
	Backend     BackendConfig  `yaml:"backend"`
	Services    ServicesConfig `yaml:"services"`
	Server      ServerConfig   `yaml:"server"`
	Preferences Preferences    `yaml:"preferences"`
	KeyMappings KeyMappings    `yaml:"key_mappings"`
	ColorScheme ColorScheme    `yaml:"theme"`
}

// BackendConfig points the client at the REST backend
type BackendConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ServicesConfig holds the external services used by validation and lookups.
// An empty URL disables the feature that needs it.
type ServicesConfig struct {
	CURPURL        string `yaml:"curp_url"`
	MedicationURL  string `yaml:"medication_url"`
	TranslationURL string `yaml:"translation_url"`
}

// ServerConfig configures the development backend
type ServerConfig struct {
	Listen   string `yaml:"listen"`
	Database string `yaml:"database"`
	Seed     bool   `yaml:"seed"`
}

// Preferences are per-user board settings
type Preferences struct {
	Density       string `yaml:"density" json:"density"`
	HiddenColumns []int  `yaml:"hidden_columns" json:"hidden_columns"`
	PinnedColumns []int  `yaml:"pinned_columns" json:"pinned_columns"`
}

// IsHidden reports whether the program column is hidden
func (p Preferences) IsHidden(programID int) bool {
	return slices.Contains(p.HiddenColumns, programID)
}

// IsPinned reports whether the program column is pinned to the left
func (p Preferences) IsPinned(programID int) bool {
	return slices.Contains(p.PinnedColumns, programID)
}

// Compact reports whether cards render on a single line
func (p Preferences) Compact() bool {
	return p.Density == DensityCompact
}

// SetDensity validates and stores a density value
func (p *Preferences) SetDensity(density string) error {
	switch density {
	case DensityComfortable, DensityCompact:
		p.Density = density
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDensity, density)
	}
}

// ToggleHidden hides a visible column or shows a hidden one
func (p *Preferences) ToggleHidden(programID int) {
	p.HiddenColumns = toggle(p.HiddenColumns, programID)
}

// TogglePinned pins or unpins a column
func (p *Preferences) TogglePinned(programID int) {
	p.PinnedColumns = toggle(p.PinnedColumns, programID)
}

func toggle(ids []int, id int) []int {
	if i := slices.Index(ids, id); i >= 0 {
		return slices.Delete(ids, i, i+1)
	}
	return append(ids, id)
}

// Default returns a config populated with default values
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

// loadThemeFile loads and merges theme from PLANTEL_THEME_FILE environment variable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(EnvThemeFile)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// applyEnv overrides file values with PLANTEL_* variables
func applyEnv(config *Config) {
	if v := os.Getenv(EnvBackendURL); v != "" {
		config.Backend.BaseURL = v
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		config.Server.Database = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		config.Server.Listen = v
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	config := &Config{}

	configPath, err := Path()
	if err == nil {
		data, err := os.ReadFile(configPath)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, config); err != nil {
				return nil, fmt.Errorf("parse %s: %w", configPath, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return nil, err
		}
	}

	loadThemeFile(config)
	applyEnv(config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "plantel", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "plantel", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = DefaultBackendURL
	}
	if c.Backend.Timeout <= 0 {
		c.Backend.Timeout = DefaultTimeout
	}
	if c.Server.Listen == "" {
		c.Server.Listen = DefaultListenAddr
	}
	if c.Preferences.Density == "" {
		c.Preferences.Density = DensityComfortable
	}
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
