package scrape

import (
	"context"
	"errors"
	"fmt"

	"github.com/fwojciec/autorace"
)

// ProgressEvent reports the outcome of one race in a day scrape.
type ProgressEvent struct {
	Type      ProgressType
	Key       autorace.RaceKey
	Completed int
	Total     int
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressCompleted ProgressType = iota
	ProgressFailed
)

// ProgressFunc is a callback for reporting day scrape progress.
type ProgressFunc func(event ProgressEvent)

// Day scrapes race numbers from through to, in order, one at a time.
// It returns the races that succeeded and a joined error describing the
// ones that failed. A canceled context stops the loop.
func Day(ctx context.Context, scraper autorace.RaceScraper, date string, circuit, from, to int, progress ProgressFunc) ([]*autorace.Race, error) {
	if from < 1 || to > autorace.MaxRaceNumber || from > to {
		return nil, autorace.Errorf(autorace.EINVALID, "invalid race range %d-%d: must be within 1-%d", from, to, autorace.MaxRaceNumber)
	}

	keys := make([]autorace.RaceKey, 0, to-from+1)
	for n := from; n <= to; n++ {
		key, err := autorace.NewRaceKey(date, circuit, n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	var races []*autorace.Race
	var errs []error
	for i, key := range keys {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		race, err := scraper.Scrape(ctx, key)
		event := ProgressEvent{Type: ProgressCompleted, Key: key, Completed: i + 1, Total: len(keys)}
		if err != nil {
			errs = append(errs, fmt.Errorf("race %d: %w", key.Number, err))
			event.Type = ProgressFailed
			event.Error = err
		} else {
			races = append(races, race)
		}

		if progress != nil {
			progress(event)
		}
	}

	return races, errors.Join(errs...)
}
