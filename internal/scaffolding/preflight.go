package scaffolding

import (
	"fmt"

	"github.com/conneroisu/new-component/internal/config"
	"github.com/spf13/afero"
)

// ResultKind tags the outcome of Preflight.
type ResultKind int

const (
	Ready ResultKind = iota
	MissingName
	MissingParentDir
	AlreadyExists
)

// String returns a short name for the result kind
func (k ResultKind) String() string {
	switch k {
	case Ready:
		return "ready"
	case MissingName:
		return "missing name"
	case MissingParentDir:
		return "missing parent directory"
	case AlreadyExists:
		return "component already exists"
	default:
		return "unknown"
	}
}

// Result is the outcome of Preflight. Message is set for every kind other
// than Ready and tells the user how to fix the problem.
type Result struct {
	Kind    ResultKind
	Message string
}

// OK reports whether scaffolding may proceed.
func (r Result) OK() bool {
	return r.Kind == Ready
}

// Preflight checks, in order, that a name was given, that the parent
// directory dir exists and that the component directory does not. It stops
// at the first failing check and never writes to fsys.
func Preflight(fsys afero.Fs, plan Plan, dir string) Result {
	if plan.ComponentName == "" {
		return Result{
			Kind:    MissingName,
			Message: "Sorry, you need to specify a name for your component like this: new-component <name>",
		}
	}

	parent, err := config.ResolveDir(dir)
	if err != nil || !exists(fsys, parent) {
		return Result{
			Kind: MissingParentDir,
			Message: fmt.Sprintf("Sorry, you need to create a parent \"components\" directory.\n"+
				"(new-component is looking for a directory at %s).", dir),
		}
	}

	componentDir, err := config.ResolveDir(plan.ComponentDir)
	if err != nil || exists(fsys, componentDir) {
		return Result{
			Kind: AlreadyExists,
			Message: fmt.Sprintf("Looks like this component already exists! There's already a component at %s.\n"+
				"Please delete this directory and try again.", plan.ComponentDir),
		}
	}

	return Result{Kind: Ready}
}

func exists(fsys afero.Fs, path string) bool {
	ok, err := afero.Exists(fsys, path)
	return err == nil && ok
}
