package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "warn", Format: "json"}, &buf)

	l.Info("hidden")
	l.Warn("shown", slog.Int("v", 3))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"v":3`)
}

func TestNewWithWriter_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "info", Format: "text"}, &buf)

	l.Info("hello", slog.String("k", "v"))
	assert.Contains(t, buf.String(), "msg=hello k=v")
}

func TestNewWithWriter_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(Config{Level: "debug", Format: "json"}, &buf)

	l.Debug("where")
	assert.Contains(t, buf.String(), `"source"`)
}

func TestWriter(t *testing.T) {
	assert.Equal(t, os.Stdout, Writer(Config{Output: "stdout"}))
	assert.Equal(t, os.Stderr, Writer(Config{Output: "stderr"}))
	assert.Equal(t, os.Stderr, Writer(Config{}))

	path := filepath.Join(t.TempDir(), "nested", "primmst.log")
	w := Writer(Config{Output: "file", FilePath: path, MaxSize: 1, MaxBackups: 2, MaxAge: 3, Compress: true})
	lj, ok := w.(*lumberjack.Logger)
	require.True(t, ok)
	assert.Equal(t, path, lj.Filename)
	assert.Equal(t, 2, lj.MaxBackups)
	assert.DirExists(t, filepath.Dir(path))
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "primmst.log")
	l := New(Config{Level: "info", Format: "json", Output: "file", FilePath: path})
	l.Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}

func TestInitAndL(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { Set(prev) })

	l := Init(Config{Level: "error", Format: "text", Output: "stderr"})
	assert.Same(t, l, L())
	assert.Same(t, l, slog.Default())
	assert.NotNil(t, WithComponent("cli"))
}
