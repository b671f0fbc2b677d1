package contextx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerFromContextOrDefault(t *testing.T) {
	t.Run("falls back to default logger", func(t *testing.T) {
		assert.Same(t, slog.Default(), LoggerFromContextOrDefault(context.Background()))
	})

	t.Run("returns stored logger", func(t *testing.T) {
		var buf bytes.Buffer
		l := slog.New(slog.NewTextHandler(&buf, nil))

		ctx := WithLogger(context.Background(), l)
		LoggerFromContextOrDefault(ctx).Info("hello")

		assert.Same(t, l, LoggerFromContextOrDefault(ctx))
		assert.Contains(t, buf.String(), "msg=hello")
	})
}
