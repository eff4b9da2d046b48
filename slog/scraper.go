package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/autorace"
	"github.com/google/uuid"
)

type scrapeIDKey struct{}

// WithScrapeID returns a context carrying a scrape correlation id.
func WithScrapeID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, scrapeIDKey{}, id)
}

// ScrapeIDFromContext returns the scrape correlation id stored in ctx.
func ScrapeIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(scrapeIDKey{}).(string)
	return id, ok
}

// Ensure LoggingScraper implements autorace.RaceScraper.
var _ autorace.RaceScraper = (*LoggingScraper)(nil)

// LoggingScraper wraps a RaceScraper with logging. It tags the context with
// a fresh scrape id so nested fetch logs can be correlated.
type LoggingScraper struct {
	next   autorace.RaceScraper
	logger *slog.Logger
}

// NewLoggingScraper creates a new LoggingScraper.
func NewLoggingScraper(next autorace.RaceScraper, logger *slog.Logger) *LoggingScraper {
	return &LoggingScraper{next: next, logger: logger}
}

// Scrape logs the race key, rider count and outcome.
func (s *LoggingScraper) Scrape(ctx context.Context, key autorace.RaceKey) (race *autorace.Race, err error) {
	id := uuid.NewString()
	defer func(begin time.Time) {
		riders := 0
		if race != nil {
			riders = len(race.Riders)
		}
		s.logger.Info("scrape",
			"scrape_id", id,
			"race", key.String(),
			"riders", riders,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(WithScrapeID(ctx, id), key)
}
