package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"findbar/internal/domain"
	"findbar/internal/eventbus"
)

// MaxDebounce bounds the configurable debounce delay
const MaxDebounce = 10 * time.Second

// Config represents the application configuration
type Config struct {
	Version    int               `toml:"version"`
	Dataset    string            `toml:"dataset"`     // empty = built-in records
	DebounceMs int               `toml:"debounce_ms"` // delay between an edit and recomputation
	Visibility domain.Visibility `toml:"visibility"`
	UI         UISettings        `toml:"ui"`
	Log        LogSettings       `toml:"log"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowHint bool `toml:"show_hint"`
	Mouse    bool `toml:"mouse"`
}

// LogSettings represents logging configuration
type LogSettings struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Debounce returns the configured delay as a duration
func (c *Config) Debounce() time.Duration {
	return time.Duration(c.DebounceMs) * time.Millisecond
}

// Validate checks the configuration for values the program cannot use
func (c *Config) Validate() error {
	d := c.Debounce()
	if d <= 0 || d > MaxDebounce {
		return fmt.Errorf("debounce_ms must be between 1 and %d, got %d", MaxDebounce.Milliseconds(), c.DebounceMs)
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns $XDG_CONFIG_HOME/findbar/config.toml (or the platform
// equivalent), falling back to ~/.config
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "findbar", "config.toml")
}

// NewConfigService creates a config service reading path, or DefaultPath
// when path is empty
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads by default
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, os.ErrNotExist) {
		cfg = DefaultConfig()
		err = nil
	}
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(domain.ConfigLoadedEvent{
			Path:    cs.filePath,
			Dataset: cfg.Dataset,
		})
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific path. Keys absent from
// the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if cfg.Dataset != "" && !filepath.IsAbs(cfg.Dataset) {
		cfg.Dataset = filepath.Join(filepath.Dir(path), cfg.Dataset)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := Encode(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Encode renders the configuration as TOML
func Encode(config *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(config); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		DebounceMs: 300,
		Visibility: domain.DefaultVisibility(),
		UI: UISettings{
			ShowHint: true,
			Mouse:    true,
		},
		Log: LogSettings{
			Level: "info",
		},
	}
}
