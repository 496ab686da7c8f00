// Package config holds the parser's tunable behavior — resource limits
// that bound an otherwise-unbounded grammar and the ambient diagnostic
// verbosity — loaded from a TOML file the way config.Config loads the
// teacher ARM emulator's settings. None of these fields are required by
// spec.md's grammar or error taxonomy; they are the ambient configuration
// layer a complete Go module carries regardless (SPEC_FULL.md's ambient
// stack section), not a core parsing concern.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config controls polyparse.ParseWithConfig's resource limits and the
// CLI's diagnostic behavior. The grammar itself places no bound on token count, exponent
// magnitude, or complex-coefficient stitching depth; a hosting service
// embedding this library needs one, the same way the teacher repo's
// config.Config bounds CPU cycles and stack size for an otherwise
// unbounded emulated program.
type Config struct {
	Limits struct {
		MaxTokens            int `toml:"max_tokens"`
		MaxExponent          int `toml:"max_exponent"`
		MaxComplexStitchJoin int `toml:"max_complex_stitch_tokens"`
	} `toml:"limits"`

	Diagnostics struct {
		Verbose bool `toml:"verbose"`
	} `toml:"diagnostics"`
}

// DefaultConfig returns a Config with conservative but generous defaults.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Limits.MaxTokens = 1_000_000
	cfg.Limits.MaxExponent = 1_000_000
	cfg.Limits.MaxComplexStitchJoin = 64
	cfg.Diagnostics.Verbose = false
	return cfg
}

// GetConfigPath returns the platform-specific config file path, mirroring
// the teacher's per-OS config.Config.GetConfigPath layout.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "polyparse")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "polyparse.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "polyparse")

	default:
		return "polyparse.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "polyparse.toml"
	}

	return filepath.Join(configDir, "polyparse.toml")
}

// Load loads configuration from the default config file, falling back to
// DefaultConfig when no file is present.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from path.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// SaveTo writes cfg to path as TOML.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- caller-supplied config path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
