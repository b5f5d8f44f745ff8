// Package format normalizes generated source before it is written.
//
// Two formatters are provided. Normalizer is built in and covers what the
// bundled templates need: indentation width, quote style and semicolons on
// module statements, trailing whitespace and the final newline. Command pipes
// the source through an external program such as prettier.
package format

import (
	"context"

	"github.com/conneroisu/new-component/internal/config"
)

// Formatter turns source text into its formatted form. path is the file the
// text will be written to and lets external tools infer the language.
type Formatter interface {
	Format(ctx context.Context, path, src string) (string, error)
}

// New returns the formatter selected by cfg.
func New(cfg config.FormatterConfig) Formatter {
	if cfg.Command != "" {
		return NewCommand(cfg.Command)
	}
	return NewNormalizer(cfg)
}
