package config

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// NewLogger writes JSON in prod and text everywhere else.
func (c LoggerConfig) NewLogger(env string) *slog.Logger {
	return c.newLogger(os.Stdout, env)
}

func (c LoggerConfig) newLogger(w io.Writer, env string) *slog.Logger {
	level := new(slog.LevelVar)
	switch c.Level {
	case "debug":
		level.Set(slog.LevelDebug)
	case "warn":
		level.Set(slog.LevelWarn)
	case "error":
		level.Set(slog.LevelError)
	}

	var h slog.Handler
	switch env {
	case "prod":
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("time", a.Value.Time().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	default:
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}

	return slog.New(h)
}
