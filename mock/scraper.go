package mock

import (
	"context"

	"github.com/fwojciec/autorace"
)

var _ autorace.URLBuilder = (*URLBuilder)(nil)

// URLBuilder is a mock implementation of autorace.URLBuilder.
type URLBuilder struct {
	RaceURLFn func(key autorace.RaceKey) (string, error)
}

func (b *URLBuilder) RaceURL(key autorace.RaceKey) (string, error) {
	return b.RaceURLFn(key)
}

var _ autorace.RaceParser = (*RaceParser)(nil)

// RaceParser is a mock implementation of autorace.RaceParser.
type RaceParser struct {
	ParseFn func(html string) (*autorace.Race, error)
}

func (p *RaceParser) Parse(html string) (*autorace.Race, error) {
	return p.ParseFn(html)
}

var _ autorace.RaceScraper = (*RaceScraper)(nil)

// RaceScraper is a mock implementation of autorace.RaceScraper.
type RaceScraper struct {
	ScrapeFn func(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error)
}

func (s *RaceScraper) Scrape(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error) {
	return s.ScrapeFn(ctx, key)
}
