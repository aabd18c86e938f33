package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, paths ...string) {
	t.Helper()

	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("type T struct {}\n"), 0o644))
	}
}

func relPaths(t *testing.T, root string, files []string) []string {
	t.Helper()

	var rels []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rels = append(rels, filepath.ToSlash(rel))
	}
	return rels
}

func TestDiscovery_IncludePatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "main.go", "pkg/model.go", "pkg/README.md", "notes.txt")

	d, err := NewDiscovery(root, []string{"**/*.go"}, nil)
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go", "pkg/model.go"}, relPaths(t, root, files))
}

func TestDiscovery_IgnorePatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "main.go", "vendor/dep/dep.go", "pkg/model_test.go", "pkg/model.go")

	d, err := NewDiscovery(root, []string{"**/*.go"}, []string{"vendor/**", "**/*_test.go"})
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.go", "pkg/model.go"}, relPaths(t, root, files))
}

func TestDiscovery_ToolDirAlwaysIgnored(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "main.go", ".go2uml/config.yml")

	d, err := NewDiscovery(root, []string{"**/*"}, nil)
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, relPaths(t, root, files))
}

func TestDiscovery_RootLevelFileMatchesDoubleStarPattern(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeTree(t, root, "main.go")

	d, err := NewDiscovery(root, []string{"**/*.go"}, nil)
	require.NoError(t, err)

	files, err := d.Discover()
	require.NoError(t, err)
	assert.Equal(t, []string{"main.go"}, relPaths(t, root, files))
}

func TestDiscovery_InvalidPattern(t *testing.T) {
	t.Parallel()

	_, err := NewDiscovery(t.TempDir(), []string{"[unclosed"}, nil)
	assert.Error(t, err)
}
