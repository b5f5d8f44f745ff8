package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTempProject(t *testing.T) {
	root := CreateTempProject(t)
	assert.DirExists(t, filepath.Join(root, "src", "components"))
}

func TestWriteConfigFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "work")
	path := WriteConfigFile(t, dir, "json", `{"type": "class"}`)

	assert.Equal(t, filepath.Join(dir, ".new-component-config.json"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "class"}`, string(data))
}

func TestSnapshot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), nil, 0644))

	assert.Equal(t, []string{
		root,
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "b"),
	}, Snapshot(t, root))
}

func TestAssertPermissions(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "f")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	require.NoError(t, os.Chmod(file, 0600))
	require.NoError(t, os.Chmod(root, 0750))

	AssertFilePermissions(t, file, 0600)
	AssertDirectoryPermissions(t, root, 0750)
}
