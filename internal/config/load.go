package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs error
	if c.Rope.Points < 2 {
		errs = multierr.Append(errs, fmt.Errorf("rope.points must be at least 2, got %d", c.Rope.Points))
	}
	if c.Rope.Iterations < 1 {
		errs = multierr.Append(errs, fmt.Errorf("rope.iterations must be positive, got %d", c.Rope.Iterations))
	}
	if c.Physics.Gravity <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.MaxFrameTime <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("physics.max_frame_time must be positive, got %v", c.Physics.MaxFrameTime))
	}
	if c.Run.FixedDT <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("run.fixed_dt must be positive, got %v", c.Run.FixedDT))
	}
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = multierr.Append(errs, fmt.Errorf("graphics viewport must be positive, got %dx%d", c.Graphics.Width, c.Graphics.Height))
	}
	return errs
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Grapple")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Grapple")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "grapple")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "grapple")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
