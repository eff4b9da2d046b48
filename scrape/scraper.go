// Package scrape orchestrates fetching and parsing of race-detail pages.
package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/autorace"
)

// Ensure Scraper implements autorace.RaceScraper.
var _ autorace.RaceScraper = (*Scraper)(nil)

// Scraper fetches a race page and extracts its race card.
type Scraper struct {
	URLs    autorace.URLBuilder
	Fetcher autorace.Fetcher
	Parser  autorace.RaceParser
	// RateLimiter is optional. When set, every fetch waits on the page host.
	RateLimiter autorace.DomainLimiter
}

// Scrape fetches and parses the race identified by key. Fetch errors are
// returned as is; there are no retries.
func (s *Scraper) Scrape(ctx context.Context, key autorace.RaceKey) (*autorace.Race, error) {
	if err := key.Validate(); err != nil {
		return nil, err
	}

	raceURL, err := s.URLs.RaceURL(key)
	if err != nil {
		return nil, err
	}

	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(raceURL)); err != nil {
			return nil, err
		}
	}

	html, err := s.Fetcher.Fetch(ctx, raceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", raceURL, err)
	}

	race, err := s.Parser.Parse(html)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", raceURL, err)
	}

	race.Key = key
	race.SourceURL = raceURL
	return race, nil
}

// ScrapeDay scrapes races from through to at one circuit on one day.
// See Day.
func (s *Scraper) ScrapeDay(ctx context.Context, date string, circuit, from, to int, progress ProgressFunc) ([]*autorace.Race, error) {
	return Day(ctx, s, date, circuit, from, to, progress)
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return u.Host
}
