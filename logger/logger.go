// Package logger builds the process-wide *slog.Logger from a Config:
// JSON or text handlers writing to stdout, stderr, or a rotated file.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

var current atomic.Pointer[slog.Logger]

// Config mirrors config.LogConfig.
type Config struct {
	Level      string
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// ParseLevel maps debug/info/warn/error to a slog.Level; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Writer resolves cfg.Output. For "file" it returns a rotating lumberjack
// writer; if the log directory cannot be created it falls back to stderr.
func Writer(cfg Config) io.Writer {
	switch cfg.Output {
	case "stdout":
		return os.Stdout
	case "file":
		if cfg.FilePath == "" {
			cfg.FilePath = "logs/primmst.log"
		}
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0o755); err != nil {
			return os.Stderr
		}
		return &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
	default:
		return os.Stderr
	}
}

// New builds a logger for cfg writing to Writer(cfg).
func New(cfg Config) *slog.Logger {
	return NewWithWriter(cfg, Writer(cfg))
}

// NewWithWriter builds a logger for cfg writing to w; cfg.Output is ignored.
func NewWithWriter(cfg Config, w io.Writer) *slog.Logger {
	lvl := ParseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// Init builds a logger from cfg, stores it for L and installs it as slog's default.
func Init(cfg Config) *slog.Logger {
	l := New(cfg)
	Set(l)

	return l
}

// Set replaces the package logger.
func Set(l *slog.Logger) {
	current.Store(l)
	slog.SetDefault(l)
}

// L returns the package logger, or slog.Default before Init.
func L() *slog.Logger {
	if l := current.Load(); l != nil {
		return l
	}

	return slog.Default()
}

// WithComponent tags records with the emitting component.
func WithComponent(name string) *slog.Logger {
	return L().With(slog.String("component", name))
}
