// Package slog provides logging decorators for assist interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/assist"
)

// Ensure LoggingFetcher implements assist.Fetcher.
var _ assist.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher logs every page retrieval made through a Fetcher. The name
// tells the static and rendered fetchers apart in the log.
type LoggingFetcher struct {
	next   assist.Fetcher
	name   string
	logger *slog.Logger
}

// NewLoggingFetcher wraps next, tagging its log lines with name.
func NewLoggingFetcher(next assist.Fetcher, name string, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, name: name, logger: logger}
}

// Fetch delegates to the wrapped fetcher. Successful fetches are logged at
// Info with the page size; failures at Warn with the error code.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		if err != nil {
			f.logger.Warn("fetch failed",
				"fetcher", f.name,
				"url", url,
				"code", assist.ErrorCode(err),
				"duration", time.Since(begin),
				"err", err,
			)
			return
		}
		f.logger.Info("fetch",
			"fetcher", f.name,
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	err := f.next.Close()
	if err != nil {
		f.logger.Warn("close fetcher", "fetcher", f.name, "err", err)
	}
	return err
}
