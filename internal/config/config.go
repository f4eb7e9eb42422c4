package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/twiced-technology-gmbh/taskwatch/internal/clierr"
	"github.com/twiced-technology-gmbh/taskwatch/internal/task"
)

const fileMode = 0o600

// Sentinel errors.
var (
	ErrNotFound = errors.New("no taskwatch directory found (run 'taskwatch init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the taskwatch configuration.
type Config struct {
	Version         int                 `yaml:"version"`
	DataFile        string              `yaml:"data_file"`
	DefaultCategory string              `yaml:"default_category"`
	Notifications   NotificationsConfig `yaml:"notifications"`

	// dir is the absolute path to the taskwatch directory (not serialized).
	dir string `yaml:"-"`
}

// NotificationsConfig holds push alert settings. Enabled stands in for the
// browser-style notification permission: alerts only fire when granted.
type NotificationsConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Dir returns the absolute path to the taskwatch directory.
func (c *Config) Dir() string {
	return c.dir
}

// DataPath returns the absolute path to the tasks file.
func (c *Config) DataPath() string {
	return filepath.Join(c.dir, c.DataFile)
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// NewDefault creates a Config with default values.
func NewDefault() *Config {
	return &Config{
		Version:         CurrentVersion,
		DataFile:        DefaultDataFile,
		DefaultCategory: DefaultCategory,
	}
}

// SetDir sets the taskwatch directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.DataFile == "" {
		return fmt.Errorf("%w: data_file is required", ErrInvalid)
	}
	if filepath.Base(c.DataFile) != c.DataFile {
		return fmt.Errorf("%w: data_file must be a plain file name, got %q", ErrInvalid, c.DataFile)
	}
	if _, ok := task.ParseCategory(c.DefaultCategory); !ok {
		return fmt.Errorf("%w: default_category %q not one of %v",
			ErrInvalid, c.DefaultCategory, task.CategoryNames())
	}
	return nil
}

// Init creates a new taskwatch directory with default settings.
// It creates the directory and writes the config file.
func Init(dir string) (*Config, error) {
	const dirMode = 0o750

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault()
	cfg.SetDir(absDir)

	if err := os.MkdirAll(absDir, dirMode); err != nil {
		return nil, fmt.Errorf("creating taskwatch directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given taskwatch directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.dir = absDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FindDir walks upward from startDir looking for a taskwatch directory
// containing config.yml. Returns the absolute path to the taskwatch directory.
func FindDir(startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, DefaultDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Join(dir, DefaultDir), nil
		}

		// Also check if we're inside the taskwatch directory itself.
		candidate = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.StoreNotFound,
				"no taskwatch directory found (run 'taskwatch init' to create one)")
		}
		dir = parent
	}
}

// UserDir returns the per-user taskwatch directory under the OS config root,
// e.g. ~/.config/taskwatch on Linux.
func UserDir() (string, error) {
	root, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config directory: %w", err)
	}
	return filepath.Join(root, DefaultDir), nil
}
