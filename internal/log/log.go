package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/rogerio-castellano/wecare-inventory/internal/config"
)

// NewSlogLogger creates the diagnostic logger and makes it the slog default. Logs go to
// cfg.File when set, otherwise to stderr so they stay apart from the operator console.
// The returned closer releases the log file.
func NewSlogLogger(cfg config.Log) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, nil, fmt.Errorf("parse log level: %w", err)
	}

	var out io.WriteCloser = nopCloser{os.Stderr}
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
	}

	logger := slog.New(newHandler(out, cfg.Format, level, cfg.File == ""))
	slog.SetDefault(logger)
	return logger, out, nil
}

func newHandler(w io.Writer, format string, level slog.Level, color bool) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Value.Kind() == slog.KindAny {
				if _, ok := a.Value.Any().(error); ok {
					return tint.Attr(9, a)
				}
			}
			return a
		},
	})
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
