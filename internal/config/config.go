package config

import "fmt"

// Config represents the complete callscope configuration.
// It can be loaded from .callscope/config.yml with environment variable overrides.
type Config struct {
	Language string       `yaml:"language" mapstructure:"language"` // "csharp" or "java"
	Paths    PathsConfig  `yaml:"paths" mapstructure:"paths"`
	Walker   WalkerConfig `yaml:"walker" mapstructure:"walker"`
	Filter   FilterConfig `yaml:"filter" mapstructure:"filter"`
	Entry    EntryConfig  `yaml:"entry" mapstructure:"entry"`
}

// PathsConfig defines which files to analyze and which to ignore.
type PathsConfig struct {
	Include []string `yaml:"include" mapstructure:"include"` // glob patterns for source files
	Ignore  []string `yaml:"ignore" mapstructure:"ignore"`   // glob patterns to ignore
}

// WalkerConfig holds the traversal policy choices.
type WalkerConfig struct {
	MaxDepth                   int  `yaml:"max_depth" mapstructure:"max_depth"`
	OverloadAwareKeys          bool `yaml:"overload_aware_keys" mapstructure:"overload_aware_keys"`
	ExpandPropertyDependencies bool `yaml:"expand_property_dependencies" mapstructure:"expand_property_dependencies"`
}

// FilterConfig configures the noise filter.
type FilterConfig struct {
	FrameworkRoots []string `yaml:"framework_roots" mapstructure:"framework_roots"`
	ObjectProtocol []string `yaml:"object_protocol" mapstructure:"object_protocol"`
}

// EntryConfig configures the entry resolution heuristics.
type EntryConfig struct {
	TypeSuffix      string   `yaml:"type_suffix" mapstructure:"type_suffix"`
	RouteAttributes []string `yaml:"route_attributes" mapstructure:"route_attributes"`
	ResultTypes     []string `yaml:"result_types" mapstructure:"result_types"`
}

// Default returns a configuration with sensible defaults for the given
// language. Empty language defaults to csharp.
func Default(language string) *Config {
	if language == "" {
		language = "csharp"
	}
	cfg := &Config{
		Language: language,
		Walker: WalkerConfig{
			MaxDepth: 64,
		},
		Entry: EntryConfig{
			TypeSuffix: "Controller",
		},
	}
	applyLanguageDefaults(cfg)
	return cfg
}

// applyLanguageDefaults fills language-dependent fields that are unset.
func applyLanguageDefaults(cfg *Config) {
	switch cfg.Language {
	case "java":
		if len(cfg.Paths.Include) == 0 {
			cfg.Paths.Include = []string{"**/*.java"}
		}
		if len(cfg.Paths.Ignore) == 0 {
			cfg.Paths.Ignore = []string{"target/**", "build/**", ".git/**"}
		}
		if len(cfg.Filter.FrameworkRoots) == 0 {
			cfg.Filter.FrameworkRoots = []string{"java", "javax"}
		}
		if len(cfg.Filter.ObjectProtocol) == 0 {
			cfg.Filter.ObjectProtocol = []string{"toString", "equals", "hashCode", "getClass"}
		}
		if len(cfg.Entry.RouteAttributes) == 0 {
			cfg.Entry.RouteAttributes = []string{"RequestMapping", "GetMapping", "PostMapping", "PutMapping", "DeleteMapping", "PatchMapping"}
		}
		if len(cfg.Entry.ResultTypes) == 0 {
			cfg.Entry.ResultTypes = []string{"ResponseEntity", "ModelAndView"}
		}
	default: // csharp
		if len(cfg.Paths.Include) == 0 {
			cfg.Paths.Include = []string{"**/*.cs"}
		}
		if len(cfg.Paths.Ignore) == 0 {
			cfg.Paths.Ignore = []string{"bin/**", "obj/**", ".git/**"}
		}
		if len(cfg.Filter.FrameworkRoots) == 0 {
			cfg.Filter.FrameworkRoots = []string{"System", "Microsoft"}
		}
		if len(cfg.Filter.ObjectProtocol) == 0 {
			cfg.Filter.ObjectProtocol = []string{"ToString", "Equals", "GetHashCode", "GetType"}
		}
		if len(cfg.Entry.RouteAttributes) == 0 {
			cfg.Entry.RouteAttributes = []string{"Http", "Route"}
		}
		if len(cfg.Entry.ResultTypes) == 0 {
			cfg.Entry.ResultTypes = []string{"ActionResult", "IActionResult", "ViewResult", "JsonResult"}
		}
	}
}

// Validate checks the configuration for inconsistencies.
func Validate(cfg *Config) error {
	switch cfg.Language {
	case "csharp", "java":
	default:
		return fmt.Errorf("unsupported language: %q (supported: csharp, java)", cfg.Language)
	}
	if cfg.Walker.MaxDepth < 1 {
		return fmt.Errorf("walker.max_depth must be at least 1, got %d", cfg.Walker.MaxDepth)
	}
	if cfg.Entry.TypeSuffix == "" {
		return fmt.Errorf("entry.type_suffix must not be empty")
	}
	return nil
}
