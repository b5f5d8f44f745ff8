// Package config resolves the configuration for a single new-component
// invocation using Viper, layering built-in defaults, a global override file
// in the user's home directory, a local override file in the working
// directory, NEW_COMPONENT_ environment variables and command-line flags.
//
// The resolved Config is a plain value. It is built once by the entry point
// and passed to the planner and runner; nothing in this package keeps global
// state between calls.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
)

// FileBaseName is the name (without extension) of both the global and the
// local override files.
const FileBaseName = ".new-component-config"

// EnvPrefix is prepended to environment variable overrides, e.g.
// NEW_COMPONENT_DIR or NEW_COMPONENT_FORMATTER_SEMI.
const EnvPrefix = "NEW_COMPONENT"

var fileExtensions = []string{"json", "yaml", "yml", "toml"}

// legacyFormatterKey is the lower-cased prettierConfig key.
const legacyFormatterKey = "prettierconfig"

// ComponentType selects the component template variant.
type ComponentType string

const (
	TypeClass      ComponentType = "class"
	TypePureClass  ComponentType = "pure-class"
	TypeFunctional ComponentType = "functional"
)

// ComponentTypes returns every supported component type in help order.
func ComponentTypes() []ComponentType {
	return []ComponentType{TypeClass, TypePureClass, TypeFunctional}
}

// ParseComponentType matches s against the supported types, ignoring case
// and surrounding whitespace.
func ParseComponentType(s string) (ComponentType, error) {
	folded := cases.Fold().String(strings.TrimSpace(s))
	for _, t := range ComponentTypes() {
		if folded == string(t) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown component type %q (expected one of %s)", s, typeList())
}

func typeList() string {
	names := make([]string, 0, len(ComponentTypes()))
	for _, t := range ComponentTypes() {
		names = append(names, string(t))
	}
	return strings.Join(names, "|")
}

// Config is the resolved configuration of one invocation.
type Config struct {
	Type      ComponentType   `mapstructure:"type" yaml:"type" validate:"required,oneof=class pure-class functional"`
	Dir       string          `mapstructure:"dir" yaml:"dir" validate:"required"`
	Extension string          `mapstructure:"extension" yaml:"extension" validate:"required,alphanum,max=10"`
	Formatter FormatterConfig `mapstructure:"formatter" yaml:"formatter"`
}

// FormatterConfig controls how generated source is normalized. When Command
// is set the source is piped through that external program instead of the
// built-in normalizer.
type FormatterConfig struct {
	Command     string `mapstructure:"command" yaml:"command,omitempty"`
	SingleQuote bool   `mapstructure:"singleQuote" yaml:"singleQuote"`
	Semi        bool   `mapstructure:"semi" yaml:"semi"`
	TabWidth    int    `mapstructure:"tabWidth" yaml:"tabWidth" validate:"gte=1,lte=16"`
	UseTabs     bool   `mapstructure:"useTabs" yaml:"useTabs"`
}

// Default returns the built-in configuration used when no override applies.
func Default() Config {
	return Config{
		Type:      TypeFunctional,
		Dir:       "src/components",
		Extension: "ts",
		Formatter: FormatterConfig{
			SingleQuote: true,
			Semi:        true,
			TabWidth:    2,
		},
	}
}

// Options describes where the resolver looks for overrides.
type Options struct {
	// Fs is the filesystem the override files are read from. Defaults to the
	// OS filesystem.
	Fs afero.Fs
	// HomeDir holds the global override file. Empty disables it.
	HomeDir string
	// WorkDir holds the local override file. Empty disables it.
	WorkDir string
	// ConfigFile replaces the local override lookup when set.
	ConfigFile string
	// Flags are bound on top of every other source. Only flags the user
	// actually changed take effect.
	Flags *pflag.FlagSet
}

// Resolver merges the configuration sources of one invocation.
type Resolver struct {
	opts  Options
	v     *viper.Viper
	files []string
}

// NewResolver creates a resolver with its own Viper instance.
func NewResolver(opts Options) *Resolver {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	return &Resolver{opts: opts, v: viper.New()}
}

// Resolve reads every source and returns the validated configuration.
// Precedence, highest first: flags, environment, local file, global file,
// defaults.
func (r *Resolver) Resolve() (Config, error) {
	v := r.v
	v.SetFs(r.opts.Fs)
	setDefaults(v, Default())

	if global := findConfigFile(r.opts.Fs, r.opts.HomeDir); global != "" {
		if err := r.merge(global); err != nil {
			return Config{}, err
		}
	}

	local := r.opts.ConfigFile
	if local == "" {
		local = findConfigFile(r.opts.Fs, r.opts.WorkDir)
	} else if ok, _ := afero.Exists(r.opts.Fs, local); !ok {
		return Config{}, fmt.Errorf("config file %s does not exist", local)
	}
	if local != "" {
		if err := r.merge(local); err != nil {
			return Config{}, err
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if r.opts.Flags != nil {
		for _, key := range []string{"type", "dir", "extension"} {
			if flag := r.opts.Flags.Lookup(key); flag != nil {
				if err := v.BindPFlag(key, flag); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}

	componentType, err := ParseComponentType(v.GetString("type"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.Type = componentType
	cfg.Extension = strings.TrimPrefix(cfg.Extension, ".")

	if err := Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// FilesUsed lists the override files merged by the last Resolve call, in
// the order they were applied.
func (r *Resolver) FilesUsed() []string {
	return append([]string(nil), r.files...)
}

// merge reads one override file on its own and layers it over the sources
// merged so far. A prettierConfig key, used by older override files, is read
// as formatter unless the same file also sets formatter.
func (r *Resolver) merge(path string) error {
	file := viper.New()
	file.SetFs(r.opts.Fs)
	file.SetConfigFile(path)
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	settings := file.AllSettings()
	if legacy, ok := settings[legacyFormatterKey]; ok {
		if _, set := settings["formatter"]; !set {
			settings["formatter"] = legacy
		}
		delete(settings, legacyFormatterKey)
	}

	if err := r.v.MergeConfigMap(settings); err != nil {
		return fmt.Errorf("failed to merge config file %s: %w", path, err)
	}
	r.files = append(r.files, path)
	return nil
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("type", string(cfg.Type))
	v.SetDefault("dir", cfg.Dir)
	v.SetDefault("extension", cfg.Extension)
	v.SetDefault("formatter.command", cfg.Formatter.Command)
	v.SetDefault("formatter.singleQuote", cfg.Formatter.SingleQuote)
	v.SetDefault("formatter.semi", cfg.Formatter.Semi)
	v.SetDefault("formatter.tabWidth", cfg.Formatter.TabWidth)
	v.SetDefault("formatter.useTabs", cfg.Formatter.UseTabs)
}

// findConfigFile returns the first override file present in dir.
func findConfigFile(fs afero.Fs, dir string) string {
	if dir == "" {
		return ""
	}
	for _, ext := range fileExtensions {
		candidate := filepath.Join(dir, FileBaseName+"."+ext)
		if ok, err := afero.Exists(fs, candidate); err == nil && ok {
			return candidate
		}
	}
	return ""
}
