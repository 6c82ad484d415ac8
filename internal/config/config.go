package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all portfolio-terminal configuration.
type Config struct {
	// Identity shown by whoami and in the prompt
	User string `yaml:"user"`
	Host string `yaml:"host"`

	// GitHubOrg is the organisation offered by clone completions
	GitHubOrg string `yaml:"github_org"`

	// BaseDirectory is the working directory outside any repository
	BaseDirectory string `yaml:"base_directory"`

	// MaxSuggestions caps the autocomplete list, the rest is shown as a count
	MaxSuggestions int `yaml:"max_suggestions"`

	// CatalogPath points to a JSON project catalog. Empty uses the built-in one.
	CatalogPath string `yaml:"catalog_path"`

	Timing  TimingConfig  `yaml:"timing"`
	Logging LoggingConfig `yaml:"logging"`
}

// TimingConfig configures the pacing of multi-step commands.
type TimingConfig struct {
	StepDelay string `yaml:"step_delay"` // base pause before each progress line
	Jitter    string `yaml:"jitter"`     // random extra pause, up to this value
	Seed      int64  `yaml:"seed"`       // 0 seeds from the clock
}

// LoggingConfig configures the zap logger. The TUI owns the screen, so logs
// only ever go to a file.
type LoggingConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`  // debug, info, warn, error
	Format  string `yaml:"format"` // json, console
	Path    string `yaml:"path"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		User:           "nassim",
		Host:           "portfolio",
		GitHubOrg:      "nassimmaaoui",
		BaseDirectory:  "~/technical-portfolio",
		MaxSuggestions: 6,
		Timing: TimingConfig{
			StepDelay: "400ms",
			Jitter:    "300ms",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Path:   filepath.Join(os.TempDir(), "portfolio-terminal.log"),
		},
	}
}

// DefaultPath returns ~/.config/portfolio-terminal/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, "portfolio-terminal", "config.yaml")
}

// Load reads the config at path on top of the defaults. A missing file is
// not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
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

// Validate checks values that would otherwise fail later at runtime.
func (c *Config) Validate() error {
	if c.User == "" {
		return fmt.Errorf("user must not be empty")
	}
	if c.BaseDirectory == "" {
		return fmt.Errorf("base_directory must not be empty")
	}
	if c.MaxSuggestions < 1 {
		return fmt.Errorf("max_suggestions must be at least 1, got %d", c.MaxSuggestions)
	}
	if _, err := parseDuration(c.Timing.StepDelay); err != nil {
		return fmt.Errorf("invalid timing.step_delay: %w", err)
	}
	if _, err := parseDuration(c.Timing.Jitter); err != nil {
		return fmt.Errorf("invalid timing.jitter: %w", err)
	}
	return nil
}

// StepDelay returns the parsed base delay between progress lines
func (c *Config) StepDelay() time.Duration {
	d, _ := parseDuration(c.Timing.StepDelay)
	return d
}

// Jitter returns the parsed maximum extra delay
func (c *Config) Jitter() time.Duration {
	d, _ := parseDuration(c.Timing.Jitter)
	return d
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative: %s", s)
	}
	return d, nil
}
