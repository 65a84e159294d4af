package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"eventdeck/internal/domain"
	"eventdeck/internal/eventbus"
)

// CurrentVersion is written into newly created config files
const CurrentVersion = 1

// DefaultDateFormat is the Go layout used to print event times
const DefaultDateFormat = "Mon 02 Jan 2006 15:04"

// Config represents the application configuration
type Config struct {
	Version      int                `toml:"version"`
	DatabasePath string             `toml:"database_path"`
	LogFile      string             `toml:"log_file"`
	UISettings   UISettings         `toml:"ui"`
	Filter       domain.FilterState `toml:"filter"` // last filter, used when RememberFilter is set
}

// UISettings represents UI-related configuration
type UISettings struct {
	DateFormat     string `toml:"date_format"`
	RememberFilter bool   `toml:"remember_filter"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultDir returns the per-user eventdeck directory
func DefaultDir() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "eventdeck")
}

// NewConfigService creates a config service reading the default config file
func NewConfigService() ConfigService {
	return NewConfigServiceAt(filepath.Join(DefaultDir(), "config.toml"))
}

// NewConfigServiceAt creates a config service bound to path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the file does not exist
func (cs *configService) Load() (*Config, error) {
	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		cfg, err = cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			Path:   cs.filePath,
			Filter: cfg.Filter,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if _, err := domain.ParseSortKey(string(cfg.Filter.Sort)); err != nil {
		return nil, fmt.Errorf("invalid filter in config: %w", err)
	}
	cfg.Filter.Query = domain.NormalizeQuery(cfg.Filter.Query)
	if cfg.UISettings.DateFormat == "" {
		cfg.UISettings.DateFormat = DefaultDateFormat
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	dir := DefaultDir()
	return &Config{
		Version:      CurrentVersion,
		DatabasePath: filepath.Join(dir, "events.db"),
		LogFile:      "eventdeck.log",
		UISettings: UISettings{
			DateFormat:     DefaultDateFormat,
			RememberFilter: true,
		},
	}
}
