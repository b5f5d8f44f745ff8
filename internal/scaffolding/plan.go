// Package scaffolding plans, validates and writes a component scaffold.
//
// A run has three phases. NewPlan derives every path from the component name
// and configuration without touching the filesystem. Preflight checks that
// the plan can be applied and reports usage problems as a Result instead of
// exiting. Runner then creates the directories and files in a fixed order,
// stopping at the first failure. Nothing is rolled back: files written
// before a failure stay on disk.
package scaffolding

import (
	"path/filepath"

	"github.com/conneroisu/new-component/internal/config"
	"github.com/conneroisu/new-component/internal/templates"
)

// TestDirName is the directory holding the generated test stub.
const TestDirName = "__test__"

// Plan holds every path of one scaffold.
type Plan struct {
	ComponentName     string
	ComponentType     config.ComponentType
	ComponentDir      string
	TestDir           string
	ComponentFilePath string
	IndexFilePath     string
	HelpersFilePath   string
	TestFilePath      string
	// TemplatePath and TestTemplatePath are paths inside the bundled
	// template filesystem, never on the target filesystem.
	TemplatePath     string
	TestTemplatePath string
}

// NewPlan derives the scaffold paths for name under cfg.Dir.
func NewPlan(name string, cfg config.Config) Plan {
	componentDir := filepath.Join(cfg.Dir, name)
	testDir := filepath.Join(componentDir, TestDirName)
	ext := cfg.Extension

	return Plan{
		ComponentName:     name,
		ComponentType:     cfg.Type,
		ComponentDir:      componentDir,
		TestDir:           testDir,
		ComponentFilePath: filepath.Join(componentDir, name+"."+ext+"x"),
		IndexFilePath:     filepath.Join(componentDir, "index."+ext),
		HelpersFilePath:   filepath.Join(componentDir, name+".helpers."+ext),
		TestFilePath:      filepath.Join(testDir, name+".test."+ext),
		TemplatePath:      templates.PathFor(cfg.Type),
		TestTemplatePath:  templates.TestPath(),
	}
}

// Files lists the files the plan writes, in write order.
func (p Plan) Files() []string {
	return []string{p.ComponentFilePath, p.HelpersFilePath, p.IndexFilePath, p.TestFilePath}
}
