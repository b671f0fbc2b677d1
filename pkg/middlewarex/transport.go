package middlewarex

import (
	"log/slog"
	"net/http"
	"time"

	"pr_report/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// LoggingTransport logs every outbound request and its outcome.
// Query strings are never logged: the card API carries credentials there.
type LoggingTransport struct {
	Next http.RoundTripper
}

func NewLoggingTransport(next http.RoundTripper) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	return &LoggingTransport{Next: next}
}

func (t *LoggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	startTime := time.Now()
	logger(r.Context()).Debug("outbound request", RequestLog(r))

	resp, err := t.Next.RoundTrip(r)
	if err != nil {
		logger(r.Context()).Warn("outbound request failed",
			RequestLog(r),
			slog.Int64("duration", time.Since(startTime).Milliseconds()),
			slog.Any("error", err),
		)
		return nil, err
	}

	logger(r.Context()).Debug("outbound response", RequestLog(r), ResponseLog(resp, startTime))
	return resp, nil
}

func RequestLog(r *http.Request) slog.Attr {
	return slog.Group("request_info",
		slog.String("method", r.Method),
		slog.String("host", r.URL.Host),
		slog.String("path", r.URL.Path),
	)
}

func ResponseLog(resp *http.Response, startTime time.Time) slog.Attr {
	return slog.Group("response_info",
		slog.Int("status", resp.StatusCode),
		slog.Int64("size", resp.ContentLength),
		slog.Int64("duration", time.Since(startTime).Milliseconds()),
	)
}
