package scaffolding

import (
	"context"
	"fmt"
	"io/fs"

	scaffolderrors "github.com/conneroisu/new-component/internal/errors"
	"github.com/conneroisu/new-component/internal/format"
	"github.com/conneroisu/new-component/internal/logging"
	"github.com/conneroisu/new-component/internal/report"
	"github.com/conneroisu/new-component/internal/templates"
	"github.com/spf13/afero"
)

// Step names, as recorded in errors and logs.
const (
	StepDirectory = "directory"
	StepComponent = "component"
	StepHelpers   = "helpers"
	StepIndex     = "index"
	StepTest      = "test"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	helpersSource = "export {}"
)

// Progress receives the runner's progress, one Item per finished step and a
// Conclusion once every step succeeded.
type Progress interface {
	Item(msg string)
	Conclusion()
}

// Runner writes a planned scaffold.
type Runner struct {
	fs        afero.Fs
	templates fs.FS
	formatter format.Formatter
	progress  Progress
	logger    logging.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithTemplates replaces the bundled templates.
func WithTemplates(fsys fs.FS) Option {
	return func(r *Runner) {
		r.templates = fsys
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger logging.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a runner writing to fsys.
func NewRunner(fsys afero.Fs, formatter format.Formatter, progress Progress, opts ...Option) *Runner {
	r := &Runner{
		fs:        fsys,
		templates: templates.FS(),
		formatter: formatter,
		progress:  progress,
		logger:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithComponent("runner")
	return r
}

type step struct {
	name string
	path string
	done string
	run  func(ctx context.Context) error
}

// Run executes every step of plan in order. The first failing step aborts
// the run and its error is returned as a *errors.ScaffoldError; directories
// and files created by earlier steps are not removed.
func (r *Runner) Run(ctx context.Context, plan Plan) error {
	logger := r.logger.With("name", plan.ComponentName)

	for _, s := range r.steps(plan) {
		if err := ctx.Err(); err != nil {
			logger.Warn(ctx, err, "scaffold interrupted", "step", s.name)
			return scaffolderrors.NewCanceledError(s.name, err)
		}

		logger.Debug(ctx, "running scaffold step", "step", s.name, "path", s.path)
		if err := s.run(ctx); err != nil {
			logger.Error(ctx, err, "scaffold step failed", "step", s.name, "path", s.path)
			return err
		}
		r.progress.Item(s.done)
	}

	r.progress.Conclusion()
	return nil
}

func (r *Runner) steps(plan Plan) []step {
	return []step{
		{
			name: StepDirectory,
			path: plan.ComponentDir,
			done: report.DirectoryCreated,
			run: func(ctx context.Context) error {
				return r.mkdir(StepDirectory, plan.ComponentDir)
			},
		},
		{
			name: StepComponent,
			path: plan.ComponentFilePath,
			done: report.ComponentBuilt,
			run: func(ctx context.Context) error {
				src, err := r.loadTemplate(StepComponent, plan.TemplatePath, plan.ComponentName)
				if err != nil {
					return err
				}
				return r.write(ctx, StepComponent, plan.ComponentFilePath, src)
			},
		},
		{
			name: StepHelpers,
			path: plan.HelpersFilePath,
			done: report.HelpersBuilt,
			run: func(ctx context.Context) error {
				return r.write(ctx, StepHelpers, plan.HelpersFilePath, helpersSource)
			},
		},
		{
			name: StepIndex,
			path: plan.IndexFilePath,
			done: report.IndexBuilt,
			run: func(ctx context.Context) error {
				return r.write(ctx, StepIndex, plan.IndexFilePath, IndexSource(plan.ComponentName))
			},
		},
		{
			name: StepTest,
			path: plan.TestFilePath,
			done: report.TestBuilt,
			run: func(ctx context.Context) error {
				if err := r.mkdir(StepTest, plan.TestDir); err != nil {
					return err
				}
				src, err := r.loadTemplate(StepTest, plan.TestTemplatePath, plan.ComponentName)
				if err != nil {
					return err
				}
				return r.write(ctx, StepTest, plan.TestFilePath, src)
			},
		},
	}
}

// IndexSource is the barrel file re-exporting the component module.
func IndexSource(name string) string {
	return fmt.Sprintf("export * from './%s'\nexport { default } from './%s'\n", name, name)
}

func (r *Runner) mkdir(stepName, dir string) error {
	if err := r.fs.MkdirAll(dir, dirPerm); err != nil {
		return scaffolderrors.NewIOError(scaffolderrors.CodeMkdir, stepName, dir, err)
	}
	return nil
}

func (r *Runner) loadTemplate(stepName, path, name string) (string, error) {
	src, err := templates.Load(r.templates, path, name)
	if err != nil {
		return "", scaffolderrors.NewTemplateError(stepName, path, err)
	}
	return src, nil
}

func (r *Runner) write(ctx context.Context, stepName, path, src string) error {
	formatted, err := r.formatter.Format(ctx, path, src)
	if err != nil {
		return scaffolderrors.NewFormatError(stepName, path, err)
	}
	if err := afero.WriteFile(r.fs, path, []byte(formatted), filePerm); err != nil {
		return scaffolderrors.NewIOError(scaffolderrors.CodeWriteFile, stepName, path, err)
	}
	return nil
}
