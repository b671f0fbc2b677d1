package connectors

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
)

type Slog struct {
	Name    string
	Version string
	Debug   bool

	// Output defaults to os.Stderr so stdout stays reserved for the report.
	Output io.Writer
}

func (s *Slog) Logger(_ context.Context) *slog.Logger {
	level := slog.LevelInfo
	if s.Debug {
		level = slog.LevelDebug
	}

	out := s.Output
	if out == nil {
		out = os.Stderr
	}

	handler := tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: time.DateTime,
	})

	return slog.New(handler).With(
		slog.String("app", s.Name),
		slog.String("version", s.Version),
	)
}
