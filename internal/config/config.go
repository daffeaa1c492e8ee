package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pegtools/jsonpeg/internal/transform"
)

// Config represents the complete configuration for jsonpeg
type Config struct {
	Indent   int       `yaml:"indent"`
	KeyCase  string    `yaml:"key_case"`
	MaxDepth int       `yaml:"max_depth"`
	Compact  bool      `yaml:"compact"`
	Dev      DevConfig `yaml:"dev"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug   bool `yaml:"debug"`
	Verbose bool `yaml:"verbose"`
}

// Defaults mirrored by the CLI flag defaults in main.go.
const (
	DefaultIndent   = 4
	DefaultMaxDepth = 4096
)

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Indent:   DefaultIndent,
		MaxDepth: DefaultMaxDepth,
		Dev: DevConfig{
			Debug:   false,
			Verbose: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// Validate checks the loaded settings for values the codec cannot use
func (c *Config) Validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("indent must be non-negative, got %d", c.Indent)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max_depth must be positive, got %d", c.MaxDepth)
	}
	if c.KeyCase != "" {
		if _, err := transform.ParseKeyCase(c.KeyCase); err != nil {
			return err
		}
	}
	return nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".jsonpeg.yml", ".jsonpeg.yaml", "jsonpeg.yml", "jsonpeg.yaml"}

	// Start from current directory
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		// Move up one directory
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI
// values override file values only when they differ from the flag
// defaults, so a config file still applies when a flag is left alone.
func LoadConfigWithCLI(configPath string, cliIndent int, cliKeyCase string, cliMaxDepth int, cliCompact bool) (*Config, error) {
	// Start with defaults
	cfg := NewConfig()

	// Load config file if provided
	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliIndent != DefaultIndent {
		cfg.Indent = cliIndent
	}
	if cliKeyCase != "" {
		cfg.KeyCase = cliKeyCase
	}
	if cliMaxDepth != DefaultMaxDepth {
		cfg.MaxDepth = cliMaxDepth
	}
	if cliCompact {
		cfg.Compact = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
