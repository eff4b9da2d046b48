package main

import (
	"fmt"

	"github.com/fwojciec/autorace"
	"github.com/fwojciec/autorace/scrape"
)

// Run executes the day command. Races that fail are reported on stderr and
// the remaining races are still written.
func (c *DayCmd) Run(deps *Dependencies) error {
	races, err := scrape.Day(deps.Ctx, deps.Scraper, c.Date, c.Circuit, c.From, c.To, func(e scrape.ProgressEvent) {
		switch e.Type {
		case scrape.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] race %d: %s\n", e.Completed, e.Total, e.Key.Number, autorace.ErrorMessage(e.Error))
		case scrape.ProgressCompleted:
			fmt.Fprintf(deps.Stderr, "[%d/%d] race %d: ok\n", e.Completed, e.Total, e.Key.Number)
		}
	})
	if len(races) == 0 && err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autorace.ErrorMessage(err))
		return err
	}

	if werr := c.Output.write(deps, races, true); werr != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autorace.ErrorMessage(werr))
		return werr
	}

	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: scraped %d of %d races\n", len(races), c.To-c.From+1)
		return err
	}
	return nil
}
