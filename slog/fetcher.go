// Package slog provides logging decorators built on log/slog.
package slog

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/autorace"
)

// Ensure LoggingFetcher implements autorace.Fetcher.
var _ autorace.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Each entry carries the page
// size and a content digest, which makes unchanged pages easy to spot.
type LoggingFetcher struct {
	next   autorace.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next autorace.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"digest", digest(html),
			"duration", time.Since(begin),
			"err", err,
		}
		if id, ok := ScrapeIDFromContext(ctx); ok {
			attrs = append(attrs, "scrape_id", id)
		}
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

func digest(s string) string {
	if s == "" {
		return ""
	}
	return strconv.FormatUint(xxhash.Sum64String(s), 16)
}
