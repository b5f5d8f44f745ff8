package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{"warning", LevelWarn, false},
		{" error ", LevelError, false},
		{"", LevelInfo, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelWarn, Output: &buf})
	ctx := context.Background()

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, nil, "warn message")
	logger.Error(ctx, errors.New("boom"), "error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
	assert.Contains(t, out, "error=boom")
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Format: "json", Output: &buf}).
		WithComponent("runner").
		With("name", "Widget")

	logger.Debug(context.Background(), "running scaffold step", "step", "index", "path", "index.ts")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "running scaffold step", entry["msg"])
	assert.Equal(t, "runner", entry["component"])
	assert.Equal(t, "Widget", entry["name"])
	assert.Equal(t, "index", entry["step"])
	assert.Equal(t, "index.ts", entry["path"])
}

func TestWithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf})
	_ = parent.With("child", true)

	parent.Info(context.Background(), "parent message")
	assert.NotContains(t, buf.String(), "child")
}

func TestPerfLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf})

	op := StartOperation(logger, "scaffold")
	op.End(context.Background())
	assert.Contains(t, buf.String(), "Operation completed")
	assert.Contains(t, buf.String(), "operation=scaffold")

	buf.Reset()
	StartOperation(logger, "scaffold").EndWithError(context.Background(), errors.New("disk full"))
	assert.Contains(t, buf.String(), "Operation failed")
	assert.Contains(t, buf.String(), "disk full")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().Error(context.Background(), errors.New("x"), "dropped")
	})
}

func TestFieldsKeepInsertionOrder(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelInfo, Output: &buf}).
		With("zeta", 1, "alpha", 2).
		With("mid", 3)

	for i := 0; i < 5; i++ {
		buf.Reset()
		logger.Info(context.Background(), "ordered", "last", 4)

		out := buf.String()
		zeta := strings.Index(out, "zeta=1")
		alpha := strings.Index(out, "alpha=2")
		mid := strings.Index(out, "mid=3")
		last := strings.Index(out, "last=4")
		require.True(t, zeta >= 0 && alpha >= 0 && mid >= 0 && last >= 0, out)
		assert.Less(t, zeta, alpha)
		assert.Less(t, alpha, mid)
		assert.Less(t, mid, last)
	}
}

func TestAddSourceRecordsCaller(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf, AddSource: true}).
		WithComponent("runner")

	logger.Debug(context.Background(), "with source")
	assert.Contains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "logger_test.go")

	buf.Reset()
	NewLogger(&LoggerConfig{Level: LevelDebug, Output: &buf}).Debug(context.Background(), "without source")
	assert.NotContains(t, buf.String(), "source=")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, LevelWarn, cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.False(t, cfg.AddSource)
}
