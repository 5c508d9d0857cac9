package codemodel

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery finds source files in a workspace using glob patterns and
// ignore rules. Results are sorted so providers see files in a stable
// order regardless of filesystem enumeration.
type Discovery struct {
	rootDir         string
	includePatterns []compiledPattern
	ignorePatterns  []compiledPattern
}

// NewDiscovery creates a new file discovery instance.
func NewDiscovery(rootDir string, includePatterns, ignorePatterns []string) (*Discovery, error) {
	d := &Discovery{
		rootDir: rootDir,
	}

	// Compile glob patterns
	for _, pattern := range includePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.includePatterns = append(d.includePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern, '/')
		if err != nil {
			return nil, err
		}
		d.ignorePatterns = append(d.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	return d, nil
}

// DiscoverFiles walks the workspace and returns matching source files as
// paths relative to the workspace root, sorted lexicographically.
func (d *Discovery) DiscoverFiles() ([]string, error) {
	files := []string{}

	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}
		// Normalize to forward slashes for glob matching
		relPath = filepath.ToSlash(relPath)

		if info.IsDir() {
			// Skip ignored directories entirely
			if relPath != "." && d.isIgnored(relPath+"/") {
				return filepath.SkipDir
			}
			return nil
		}

		if d.isIgnored(relPath) {
			return nil
		}

		if d.matchesInclude(relPath) {
			files = append(files, relPath)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// matchesInclude checks whether the relative path matches any include pattern.
func (d *Discovery) matchesInclude(relPath string) bool {
	for _, p := range d.includePatterns {
		if p.glob.Match(relPath) {
			return true
		}
		// Patterns like "**/*.cs" should also match files at the root
		if strings.HasPrefix(p.pattern, "**/") {
			if g, err := glob.Compile(strings.TrimPrefix(p.pattern, "**/"), '/'); err == nil && g.Match(relPath) {
				return true
			}
		}
	}
	return false
}

// isIgnored checks whether the relative path matches any ignore pattern.
func (d *Discovery) isIgnored(relPath string) bool {
	for _, p := range d.ignorePatterns {
		if p.glob.Match(relPath) {
			return true
		}
		// Directory prefixes: "bin/**" ignores everything under bin/
		prefix := strings.TrimSuffix(p.pattern, "/**")
		if prefix != p.pattern && (relPath == prefix || strings.HasPrefix(relPath, prefix+"/")) {
			return true
		}
	}
	return false
}
