package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var (
	ErrLockFileNotSet     = errors.New("lock file path is not configured")
	ErrUpdateScriptNotSet = errors.New("update script path is not configured")
	ErrInvalidThreshold   = errors.New("stale_after_days must not be negative")
	ErrConfigExists       = errors.New("config file already exists (use --force to overwrite)")
)

// Default values, relative to the home directory
const (
	DefaultLockFile       = "~/.dotfiles/flake.lock"
	DefaultUpdateScript   = "~/.dotfiles/scripts/update.sh"
	DefaultSchema         = "nodes"
	DefaultStaleAfterDays = 30
)

// Config represents the application configuration
type Config struct {
	LockFile       string `yaml:"lock_file" toml:"lock_file"`
	UpdateScript   string `yaml:"update_script" toml:"update_script"`
	Schema         string `yaml:"schema" toml:"schema"`                     // "nodes" or "root-inputs"
	StaleAfterDays int    `yaml:"stale_after_days" toml:"stale_after_days"` // 0 disables the stale warning
	LogFile        bool   `yaml:"log_file" toml:"log_file"`                 // Also log to $XDG_STATE_HOME/flakeage/logs
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LockFile:       DefaultLockFile,
		UpdateScript:   DefaultUpdateScript,
		Schema:         DefaultSchema,
		StaleAfterDays: DefaultStaleAfterDays,
	}
}

// ConfigPaths returns all possible config file paths in priority order
// 1. $XDG_CONFIG_HOME/flakeage/config.yaml
// 2. $XDG_CONFIG_HOME/flakeage/config.toml
// 3. ~/.flakeage/config.yaml
func ConfigPaths() ([]string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}

	return []string{
		filepath.Join(xdgConfig, "flakeage", "config.yaml"),
		filepath.Join(xdgConfig, "flakeage", "config.toml"),
		filepath.Join(home, ".flakeage", "config.yaml"),
	}, nil
}

// DefaultConfigPath returns the default config file path (XDG standard)
func DefaultConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}
	return paths[0], nil
}

// FindConfigPath returns the first existing config file path.
// Returns the default path if no config file exists yet.
func FindConfigPath() (string, error) {
	paths, err := ConfigPaths()
	if err != nil {
		return "", err
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return paths[0], nil
}

// Load reads configuration from the first available config file
func Load() (*Config, error) {
	configPath, err := FindConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(configPath)
}

// LoadFrom reads configuration from a specific file path.
// A missing file yields the defaults; nothing is written.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if isTOML(path) {
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// SaveTo writes configuration to a specific file path, as TOML when the
// path ends in .toml and YAML otherwise
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := c.Marshal(path)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the configuration in the format implied by path
func (c *Config) Marshal(path string) ([]byte, error) {
	if isTOML(path) {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return yaml.Marshal(c)
}

// Init writes the default configuration to path.
// An existing file is only replaced when force is set.
func Init(path string, force bool) (*Config, error) {
	if _, err := os.Stat(path); err == nil && !force {
		return nil, ErrConfigExists
	}

	cfg := Default()
	if err := cfg.SaveTo(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can be used
func (c *Config) Validate() error {
	if strings.TrimSpace(c.LockFile) == "" {
		return ErrLockFileNotSet
	}
	if strings.TrimSpace(c.UpdateScript) == "" {
		return ErrUpdateScriptNotSet
	}
	if c.StaleAfterDays < 0 {
		return ErrInvalidThreshold
	}
	return nil
}

// LockFilePath returns the lock file path with ~ expanded
func (c *Config) LockFilePath() (string, error) {
	if strings.TrimSpace(c.LockFile) == "" {
		return "", ErrLockFileNotSet
	}
	return ExpandHome(c.LockFile)
}

// UpdateScriptPath returns the update script path with ~ expanded
func (c *Config) UpdateScriptPath() (string, error) {
	if strings.TrimSpace(c.UpdateScript) == "" {
		return "", ErrUpdateScriptNotSet
	}
	return ExpandHome(c.UpdateScript)
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
