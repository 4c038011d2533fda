// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/limbo/unbroken/pkg/cleanup"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level string
	// Rolling log file. Empty logs to stdout only.
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
	// Text switches stdout to the human readable handler.
	Text bool
}

func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func nz(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// New builds a logger writing to stdout and, when opts.Path is set, to a
// rolling file.
func New(opts Options) *slog.Logger {
	return slog.New(newHandler(os.Stdout, opts))
}

func newHandler(stdout io.Writer, opts Options) slog.Handler {
	handlerOpts := &slog.HandlerOptions{Level: ParseLevel(opts.Level)}
	var out io.Writer = stdout
	if opts.Path != "" {
		if dir := filepath.Dir(opts.Path); dir != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    nz(opts.MaxSizeMB, 100), // megabytes
			MaxBackups: nz(opts.MaxBackups, 3),
			MaxAge:     nz(opts.MaxAgeDays, 7), // days
			Compress:   opts.Compress,
		}
		cleanup.Register(&cleanup.Job{
			Name: "closing log file",
			F:    lj.Close,
		})
		if opts.Text {
			return fanout{
				slog.NewTextHandler(stdout, handlerOpts),
				slog.NewJSONHandler(lj, handlerOpts),
			}
		}
		out = io.MultiWriter(stdout, lj)
	}
	if opts.Text {
		return slog.NewTextHandler(out, handlerOpts)
	}
	return slog.NewJSONHandler(out, handlerOpts)
}

// Init installs the logger as slog default and returns it.
func Init(opts Options) *slog.Logger {
	logger := New(opts)
	slog.SetDefault(logger)
	return logger
}
