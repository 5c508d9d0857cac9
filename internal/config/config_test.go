package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CSharp(t *testing.T) {
	t.Parallel()

	cfg := Default("")

	assert.Equal(t, "csharp", cfg.Language)
	assert.Equal(t, []string{"**/*.cs"}, cfg.Paths.Include)
	assert.Contains(t, cfg.Paths.Ignore, "bin/**")
	assert.Equal(t, []string{"System", "Microsoft"}, cfg.Filter.FrameworkRoots)
	assert.Contains(t, cfg.Filter.ObjectProtocol, "GetHashCode")
	assert.Equal(t, "Controller", cfg.Entry.TypeSuffix)
	assert.Equal(t, 64, cfg.Walker.MaxDepth)
	assert.False(t, cfg.Walker.OverloadAwareKeys)
	assert.False(t, cfg.Walker.ExpandPropertyDependencies)
	require.NoError(t, Validate(cfg))
}

func TestDefault_Java(t *testing.T) {
	t.Parallel()

	cfg := Default("java")

	assert.Equal(t, []string{"**/*.java"}, cfg.Paths.Include)
	assert.Equal(t, []string{"java", "javax"}, cfg.Filter.FrameworkRoots)
	assert.Contains(t, cfg.Filter.ObjectProtocol, "hashCode")
	assert.Contains(t, cfg.Entry.RouteAttributes, "GetMapping")
	assert.Contains(t, cfg.Entry.ResultTypes, "ResponseEntity")
	require.NoError(t, Validate(cfg))
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"unknown language", func(c *Config) { c.Language = "ruby" }, "unsupported language"},
		{"zero depth", func(c *Config) { c.Walker.MaxDepth = 0 }, "max_depth"},
		{"empty suffix", func(c *Config) { c.Entry.TypeSuffix = "" }, "type_suffix"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default("csharp")
			tc.mutate(cfg)
			err := Validate(cfg)
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			}
		})
	}
}
