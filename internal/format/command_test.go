package format

import (
	"context"
	"os/exec"
	"testing"

	"github.com/conneroisu/new-component/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSelectsFormatter(t *testing.T) {
	assert.IsType(t, &Normalizer{}, New(config.Default().Formatter))
	assert.IsType(t, &Command{}, New(config.FormatterConfig{Command: "prettier --stdin-filepath {path}"}))
}

func TestCommandFormat(t *testing.T) {
	if _, err := exec.LookPath("cat"); err != nil {
		t.Skip("cat not available")
	}

	out, err := NewCommand("cat").Format(context.Background(), "Widget.tsx", "export {};\n")
	require.NoError(t, err)
	assert.Equal(t, "export {};\n", out)
}

func TestCommandSubstitutesPath(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}

	out, err := NewCommand("echo {path}").Format(context.Background(), "src/Widget.tsx", "")
	require.NoError(t, err)
	assert.Equal(t, "src/Widget.tsx\n", out)
}

func TestCommandFailure(t *testing.T) {
	_, err := NewCommand("definitely-not-a-formatter-binary").Format(context.Background(), "x.ts", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "definitely-not-a-formatter-binary")

	_, err = NewCommand("   ").Format(context.Background(), "x.ts", "")
	require.Error(t, err)
}
