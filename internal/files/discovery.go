// Package files discovers source files for batch generation and watch mode.
package files

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// Discovery handles source file discovery with glob patterns and ignore rules.
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

// Discover walks the directory tree and returns matching source files in
// walk order.
func (d *Discovery) Discover() ([]string, error) {
	files := []string{}

	err := filepath.Walk(d.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		relPath, err := filepath.Rel(d.rootDir, path)
		if err != nil {
			return err
		}

		// Normalize path separators for glob matching
		relPath = filepath.ToSlash(relPath)

		if d.shouldIgnore(relPath) {
			return nil
		}

		if d.matchesAnyPattern(relPath, d.includePatterns) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// shouldIgnore checks if a path matches any ignore pattern.
func (d *Discovery) shouldIgnore(relPath string) bool {
	// Always ignore the tool's own directory
	if strings.HasPrefix(relPath, ".go2uml/") || relPath == ".go2uml" {
		return true
	}

	if d.matchesAnyPattern(relPath, d.ignorePatterns) {
		return true
	}

	// Also match directories against patterns with a /** suffix, so an
	// ignore pattern "vendor/**" covers the "vendor" directory entry too.
	pathWithSuffix := relPath + "/**"
	return d.matchesAnyPattern(pathWithSuffix, d.ignorePatterns)
}

// matchesAnyPattern checks if a path matches any of the given patterns.
func (d *Discovery) matchesAnyPattern(path string, patterns []compiledPattern) bool {
	for _, cp := range patterns {
		if cp.glob.Match(path) {
			return true
		}
	}

	// If path is in root (no slash), also try matching against patterns
	// with the **/ prefix removed, so "**/*.go" matches "main.go" as users
	// would expect.
	if !strings.Contains(path, "/") {
		for _, cp := range patterns {
			if strings.HasPrefix(cp.pattern, "**/") {
				simplified := strings.TrimPrefix(cp.pattern, "**/")
				if simplifiedGlob, err := glob.Compile(simplified, '/'); err == nil {
					if simplifiedGlob.Match(path) {
						return true
					}
				}
			}
		}
	}

	return false
}
