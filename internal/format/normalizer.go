package format

import (
	"context"
	"regexp"
	"strings"

	"github.com/conneroisu/new-component/internal/config"
)

// indentUnit is the indentation width the bundled templates are written in.
const indentUnit = 2

var (
	// import/export statements that fit on one line.
	fromClause      = regexp.MustCompile(`^(import|export)\b.*\bfrom\s+(['"])[^'"]*['"];?$`)
	bareImport      = regexp.MustCompile(`^import\s+(['"])[^'"]*['"];?$`)
	emptyExport     = regexp.MustCompile(`^export\s*\{[^}]*\};?$`)
	defaultExport   = regexp.MustCompile(`^export\s+default\s+[A-Za-z_$][\w$]*;?$`)
	moduleSpecifier = regexp.MustCompile(`(['"])([^'"]*)(['"])`)
)

// Normalizer is the built-in formatter.
type Normalizer struct {
	cfg config.FormatterConfig
}

// NewNormalizer creates a normalizer from the formatter settings.
func NewNormalizer(cfg config.FormatterConfig) *Normalizer {
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = indentUnit
	}
	return &Normalizer{cfg: cfg}
}

// Format implements Formatter. It never fails.
func (n *Normalizer) Format(_ context.Context, _ string, src string) (string, error) {
	src = strings.ReplaceAll(src, "\r\n", "\n")
	lines := strings.Split(src, "\n")

	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			// collapse runs of blank lines and drop leading ones
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false

		indent, body := splitIndent(line)
		if indent == 0 && isModuleStatement(body) {
			body = n.moduleStatement(body)
		}
		out = append(out, n.indent(indent)+body)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "", nil
	}
	return strings.Join(out, "\n") + "\n", nil
}

// splitIndent measures leading whitespace in columns, counting a tab as one
// indentation unit.
func splitIndent(line string) (int, string) {
	cols := 0
	for i, r := range line {
		switch r {
		case ' ':
			cols++
		case '\t':
			cols += indentUnit
		default:
			return cols, line[i:]
		}
	}
	return cols, ""
}

func (n *Normalizer) indent(cols int) string {
	levels, rest := cols/indentUnit, cols%indentUnit
	if n.cfg.UseTabs {
		return strings.Repeat("\t", levels) + strings.Repeat(" ", rest)
	}
	return strings.Repeat(" ", levels*n.cfg.TabWidth+rest)
}

func isModuleStatement(s string) bool {
	return fromClause.MatchString(s) || bareImport.MatchString(s) ||
		emptyExport.MatchString(s) || defaultExport.MatchString(s)
}

func (n *Normalizer) moduleStatement(s string) string {
	s = strings.TrimSuffix(s, ";")

	quote := `"`
	if n.cfg.SingleQuote {
		quote = "'"
	}
	s = moduleSpecifier.ReplaceAllString(s, quote+"${2}"+quote)

	if n.cfg.Semi {
		s += ";"
	}
	return s
}
