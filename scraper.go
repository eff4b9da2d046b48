package autorace

import "context"

// URLBuilder maps a race key to the URL of its race-detail page.
type URLBuilder interface {
	RaceURL(key RaceKey) (string, error)
}

// RaceParser extracts a Race from race-detail HTML.
type RaceParser interface {
	// Parse returns the race described by the page. Missing or malformed
	// fields are absent rather than errors; only unparseable input fails.
	// The returned race has a zero Key and SourceURL.
	Parse(html string) (*Race, error)
}

// RaceScraper retrieves and parses a single race page.
type RaceScraper interface {
	Scrape(ctx context.Context, key RaceKey) (*Race, error)
}
