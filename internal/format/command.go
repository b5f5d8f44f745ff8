package format

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// PathPlaceholder in a formatter command is replaced with the target path,
// e.g. "prettier --stdin-filepath {path}".
const PathPlaceholder = "{path}"

// Command runs an external formatter, feeding the source on stdin and
// reading the result from stdout.
type Command struct {
	args []string
}

// NewCommand splits command on whitespace. No shell is involved.
func NewCommand(command string) *Command {
	return &Command{args: strings.Fields(command)}
}

// Format implements Formatter.
func (c *Command) Format(ctx context.Context, path, src string) (string, error) {
	if len(c.args) == 0 {
		return "", fmt.Errorf("formatter command is empty")
	}

	args := make([]string, len(c.args))
	for i, arg := range c.args {
		args[i] = strings.ReplaceAll(arg, PathPlaceholder, path)
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(src)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("formatter %s failed: %w: %s", args[0], err, msg)
		}
		return "", fmt.Errorf("formatter %s failed: %w", args[0], err)
	}

	return stdout.String(), nil
}
