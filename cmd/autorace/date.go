package main

import (
	"fmt"

	"github.com/fwojciec/autorace"
)

// Run executes the date command.
func (c *DateCmd) Run(deps *Dependencies) error {
	date, err := autorace.FormatRaceDate(c.Date)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", autorace.ErrorMessage(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, date)
	return nil
}
