package main

import (
	"fmt"

	"github.com/fwojciec/autorace"
)

// Run executes the race command.
func (c *RaceCmd) Run(deps *Dependencies) error {
	key, err := autorace.NewRaceKey(c.Date, c.Circuit, c.Number)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autorace.ErrorMessage(err))
		return err
	}

	race, err := deps.Scraper.Scrape(deps.Ctx, key)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autorace.ErrorMessage(err))
		return err
	}

	if err := c.Output.write(deps, []*autorace.Race{race}, false); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autorace.ErrorMessage(err))
		return err
	}
	return nil
}
