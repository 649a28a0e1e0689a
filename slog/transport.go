// Package slog provides log/slog decorators for the yweather capability
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/yweather"
)

// Ensure LoggingTransport implements yweather.Transport.
var _ yweather.Transport = (*LoggingTransport)(nil)

// LoggingTransport wraps a Transport and logs each completed request.
type LoggingTransport struct {
	next   yweather.Transport
	logger *slog.Logger
}

// NewLoggingTransport creates a new LoggingTransport.
func NewLoggingTransport(next yweather.Transport, logger *slog.Logger) *LoggingTransport {
	return &LoggingTransport{next: next, logger: logger}
}

// Get delegates to the wrapped transport and logs when the response arrives.
func (t *LoggingTransport) Get(ctx context.Context, url string, done yweather.ResponseFunc) {
	begin := time.Now()
	t.next.Get(ctx, url, func(resp *yweather.Response, err error) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
		}
		if resp != nil {
			attrs = append(attrs, "status", resp.StatusCode, "bytes", len(resp.Body))
		}
		attrs = append(attrs, "err", err)
		t.logger.Info("get", attrs...)

		done(resp, err)
	})
}
