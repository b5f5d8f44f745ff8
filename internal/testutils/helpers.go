// Package testutils holds filesystem helpers shared by the command tests.
package testutils

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// ComponentsDir is the components directory CreateTempProject creates.
const ComponentsDir = "src/components"

// CreateTempProject creates a temporary project with an empty components
// directory and returns the project root.
func CreateTempProject(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()

	err := os.MkdirAll(filepath.Join(tempDir, filepath.FromSlash(ComponentsDir)), 0755)
	require.NoError(t, err)

	return tempDir
}

// WriteConfigFile writes a .new-component-config file with the given
// extension into dir and returns its path.
func WriteConfigFile(t *testing.T, dir, ext, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))

	path := filepath.Join(dir, ".new-component-config."+ext)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// Snapshot lists every path under root in lexical order.
func Snapshot(t *testing.T, root string) []string {
	t.Helper()
	var paths []string
	err := filepath.Walk(root, func(path string, _ os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		paths = append(paths, path)
		return nil
	})
	require.NoError(t, err)
	sort.Strings(paths)
	return paths
}

// AssertFilePermissions checks that a file has the expected permissions
func AssertFilePermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)

	actualMode := info.Mode()
	require.Equal(t, expectedMode, actualMode&os.FileMode(0777),
		"File %s has incorrect permissions: got %o, want %o",
		path, actualMode&os.FileMode(0777), expectedMode)
}

// AssertDirectoryPermissions checks that a directory has the expected permissions
func AssertDirectoryPermissions(t *testing.T, path string, expectedMode os.FileMode) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	require.True(t, info.IsDir(), "Path %s is not a directory", path)

	actualMode := info.Mode()
	require.Equal(t, expectedMode, actualMode&os.FileMode(0777),
		"Directory %s has incorrect permissions: got %o, want %o",
		path, actualMode&os.FileMode(0777), expectedMode)
}
