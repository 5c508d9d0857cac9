package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given workspace root.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (CALLSCOPE_*)
// 2. Config file (.callscope/config.yml or .callscope/config.yaml)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	// Set up config file search
	configDir := filepath.Join(l.rootDir, ".callscope")
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	// Enable environment variable overrides
	v.SetEnvPrefix("CALLSCOPE")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., CALLSCOPE_WALKER_MAX_DEPTH)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("language")
	v.BindEnv("walker.max_depth")
	v.BindEnv("walker.overload_aware_keys")
	v.BindEnv("walker.expand_property_dependencies")
	v.BindEnv("entry.type_suffix")

	v.SetDefault("language", "csharp")
	v.SetDefault("walker.max_depth", 64)
	v.SetDefault("entry.type_suffix", "Controller")

	// Try to read config file
	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Language-dependent defaults fill anything the file left unset
	applyLanguageDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadFromDir is a convenience wrapper around NewLoader(...).Load().
func LoadFromDir(rootDir string) (*Config, error) {
	return NewLoader(rootDir).Load()
}
