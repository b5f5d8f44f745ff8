package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/conneroisu/new-component/internal/config"
	scaffolderrors "github.com/conneroisu/new-component/internal/errors"
	"github.com/conneroisu/new-component/internal/format"
	"github.com/conneroisu/new-component/internal/logging"
	"github.com/conneroisu/new-component/internal/report"
	"github.com/conneroisu/new-component/internal/scaffolding"
	"github.com/conneroisu/new-component/internal/version"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Environment is everything the command touches outside its arguments.
type Environment struct {
	Fs      afero.Fs
	Stdout  io.Writer
	Stderr  io.Writer
	HomeDir string
	WorkDir string
}

// DefaultEnvironment uses the OS filesystem and standard streams.
func DefaultEnvironment() Environment {
	home, _ := os.UserHomeDir()
	wd, _ := os.Getwd()
	return Environment{
		Fs:      afero.NewOsFs(),
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		HomeDir: home,
		WorkDir: wd,
	}
}

type rootOptions struct {
	cfgFile     string
	logLevel    string
	logFormat   string
	printConfig bool
}

// reportedError marks an error already shown to the user.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// NewRootCommand builds the new-component command bound to env.
func NewRootCommand(env Environment) *cobra.Command {
	opts := &rootOptions{}
	defaults := config.Default()

	cmd := &cobra.Command{
		Use:   "new-component <componentName>",
		Short: "Scaffold a front-end component from templates",
		Long: `new-component creates a component directory containing the component source,
a helpers module, a barrel index file and a test stub:

  <dir>/<name>/
    <name>.<ext>x
    <name>.helpers.<ext>
    index.<ext>
    __test__/
      <name>.test.<ext>

Defaults come from ~/.new-component-config.json and ./.new-component-config.json
(local wins), NEW_COMPONENT_* environment variables, and finally the flags below.

Examples:
  new-component Button
  new-component Modal --type class
  new-component Avatar -t pure-class -d app/components -x js`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version.GetShortVersion(),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScaffold(cmd, env, opts, args)
		},
	}

	cmd.SetOut(env.Stdout)
	cmd.SetErr(env.Stderr)
	cmd.SetVersionTemplate(versionTemplate())

	flags := cmd.Flags()
	flags.StringP("type", "t", "",
		fmt.Sprintf("Type of React component to generate: class|pure-class|functional (default: %q)", defaults.Type))
	flags.StringP("dir", "d", "",
		fmt.Sprintf("Path to the \"components\" directory (default: %q)", defaults.Dir))
	flags.StringP("extension", "x", "",
		fmt.Sprintf("Which file extension to use for the component (default: %q)", defaults.Extension))
	flags.StringVar(&opts.cfgFile, "config", "", "Local config file (default is ./.new-component-config.json)")
	flags.StringVarP(&opts.logLevel, "log-level", "l", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format (text, json)")
	flags.BoolVar(&opts.printConfig, "print-config", false, "Print the resolved configuration as YAML and exit")

	return cmd
}

func versionTemplate() string {
	info := version.GetBuildInfo()
	return fmt.Sprintf("new-component {{.Version}}\ncommit: %s\nbuilt with %s for %s\n",
		info.GitCommit, info.GoVersion, info.Platform)
}

// Execute runs the command against the real environment.
func Execute(ctx context.Context) error {
	env := DefaultEnvironment()
	err := NewRootCommand(env).ExecuteContext(ctx)

	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		fmt.Fprintln(env.Stderr, "Error:", err)
	}
	return err
}

func runScaffold(cmd *cobra.Command, env Environment, opts *rootOptions, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	logCfg := logging.DefaultConfig()
	logCfg.Level = level
	logCfg.Format = opts.logFormat
	logCfg.Output = env.Stderr
	logCfg.AddSource = level == logging.LevelDebug
	logger := logging.NewLogger(logCfg)

	resolver := config.NewResolver(config.Options{
		Fs:         env.Fs,
		HomeDir:    env.HomeDir,
		WorkDir:    env.WorkDir,
		ConfigFile: opts.cfgFile,
		Flags:      cmd.Flags(),
	})
	cfg, err := resolver.Resolve()
	if err != nil {
		return scaffolderrors.NewConfigError("failed to resolve configuration", err)
	}
	for _, file := range resolver.FilesUsed() {
		logger.Debug(ctx, "Using config file", "path", file)
	}

	if opts.printConfig {
		return printConfig(env.Stdout, cfg)
	}

	// Relative directories are taken from the working directory the
	// environment names, the same one the local config file was found in.
	if env.WorkDir != "" && !filepath.IsAbs(cfg.Dir) {
		cfg.Dir = filepath.Join(env.WorkDir, cfg.Dir)
	}

	var name string
	if len(args) > 0 {
		name = args[0]
	}

	reporter := report.New(env.Stdout, env.Stderr)
	plan := scaffolding.NewPlan(name, cfg)

	result := scaffolding.Preflight(env.Fs, plan, cfg.Dir)
	if !result.OK() {
		logger.Info(ctx, "Nothing scaffolded", "reason", result.Kind.String())
		reporter.UsageError(result.Message)
		return nil
	}

	reporter.Intro(name, plan.ComponentDir, string(cfg.Type))

	runner := scaffolding.NewRunner(env.Fs, format.New(cfg.Formatter), reporter,
		scaffolding.WithLogger(logger))

	op := logging.StartOperation(logger, "scaffold")
	if err := runner.Run(ctx, plan); err != nil {
		op.EndWithError(ctx, err)
		reporter.Failure(err)
		return &reportedError{err: err}
	}
	op.End(ctx)

	return nil
}

func printConfig(w io.Writer, cfg config.Config) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	return encoder.Close()
}
