package connectors

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlogLogger(t *testing.T) {
	t.Run("debug disabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := (&Slog{Name: "pr_report", Version: "v1", Output: &buf}).Logger(context.Background())

		l.Debug("hidden")
		l.Info("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
		assert.Contains(t, buf.String(), "pr_report")
	})

	t.Run("debug enabled", func(t *testing.T) {
		var buf bytes.Buffer
		l := (&Slog{Name: "pr_report", Version: "v1", Debug: true, Output: &buf}).Logger(context.Background())

		l.Debug("visible")

		assert.Contains(t, buf.String(), "visible")
	})
}
