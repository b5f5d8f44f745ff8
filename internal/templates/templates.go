// Package templates bundles the component and test templates into the binary.
//
// Templates are plain source text. Every occurrence of Placeholder is
// replaced verbatim with the component name; no other templating is applied.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/conneroisu/new-component/internal/config"
)

// Placeholder is the token substituted with the component name.
const Placeholder = "COMPONENT_NAME"

// Dir is the directory holding the templates inside FS.
const Dir = "templates"

//go:embed templates/*.js
var bundled embed.FS

// FS returns the bundled template filesystem.
func FS() fs.FS {
	return bundled
}

// PathFor returns the template path for a component type.
func PathFor(t config.ComponentType) string {
	return path.Join(Dir, string(t)+".js")
}

// TestPath returns the path of the test template.
func TestPath() string {
	return path.Join(Dir, "test.js")
}

// Load reads the template at name from fsys and substitutes the component
// name for every placeholder.
func Load(fsys fs.FS, name, componentName string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", name, err)
	}
	return Render(string(data), componentName), nil
}

// Render replaces every placeholder in src with componentName.
func Render(src, componentName string) string {
	return strings.ReplaceAll(src, Placeholder, componentName)
}
