package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ppipada/spiralcode-go/gridsize"
)

// Filler source kinds.
const (
	FillerRandom  = "random"
	FillerSeeded  = "seeded"
	FillerKeyring = "keyring"
)

// Config holds all spiralcode configuration.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Filler  FillerConfig  `yaml:"filler"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// GridConfig configures grid sizing for encode.
type GridConfig struct {
	// 0 picks the minimum size per message.
	Size int `yaml:"size"`
}

// FillerConfig configures the filler source.
type FillerConfig struct {
	Source         string `yaml:"source"` // random, seeded, keyring
	Seed           uint64 `yaml:"seed"`
	KeyringService string `yaml:"keyring_service"`
	KeyringUser    string `yaml:"keyring_user"`
}

// OutputConfig configures where batch results are saved.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Overwrite bool   `yaml:"overwrite"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Filler: FillerConfig{
			Source: FillerRandom,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// Defaults.
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Size != 0 {
		if err := gridsize.Validate(c.Grid.Size, 0); err != nil {
			errs = append(errs, fmt.Errorf("grid.size: %w", err))
		}
	}
	switch c.Filler.Source {
	case FillerRandom, FillerSeeded, FillerKeyring:
	default:
		errs = append(errs, fmt.Errorf("filler.source: unknown source %q", c.Filler.Source))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("logging.level: unknown level %q", c.Logging.Level))
	}
	if c.Output.Dir == "" {
		errs = append(errs, errors.New("output.dir: must not be empty"))
	}
	return errors.Join(errs...)
}

func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SPIRALCODE_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToLower(v)
	}
	if v := os.Getenv("SPIRALCODE_OUTPUT_DIR"); v != "" {
		c.Output.Dir = v
	}
	if v := os.Getenv("SPIRALCODE_FILLER_SOURCE"); v != "" {
		c.Filler.Source = strings.ToLower(v)
	}
	if v := os.Getenv("SPIRALCODE_FILLER_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid SPIRALCODE_FILLER_SEED %q: %w", v, err)
		}
		c.Filler.Seed = seed
	}
	return nil
}
