package main

import (
	"fmt"

	"github.com/fwojciec/yweather"
	ywetree "github.com/fwojciec/yweather/etree"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	if c.Delete {
		return c.delete(deps)
	}

	filter := yweather.ObservationFilter{Limit: c.Limit}
	if c.Woeid != "" {
		filter.Woeid = &c.Woeid
	}
	if c.Since > 0 {
		since := deps.Clock.Now().Add(-c.Since)
		filter.Since = &since
	}

	observations, err := deps.Observations.FindObservations(deps.Ctx, filter)
	if err != nil {
		printError(deps, err)
		return err
	}

	switch c.Format {
	case "json":
		if observations == nil {
			observations = []*yweather.Observation{}
		}
		return writeJSON(deps.Stdout, observations)
	case "xml":
		doc, err := ywetree.FormatObservations(observations)
		if err != nil {
			return err
		}
		return writeLine(deps.Stdout, doc)
	}

	if len(observations) == 0 {
		fmt.Fprintln(deps.Stdout, "No observations recorded. Use 'yweather now --save' or 'yweather watch' to record some.")
		return nil
	}
	return writeLine(deps.Stdout, yweather.FormatObservations(observations))
}

func (c *HistoryCmd) delete(deps *Dependencies) error {
	if c.Woeid == "" {
		err := yweather.Errorf(yweather.EINVALID, "--delete requires --woeid")
		printError(deps, err)
		return err
	}

	n, err := deps.Observations.DeleteObservations(deps.Ctx, c.Woeid)
	if err != nil {
		printError(deps, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted %d observations for WOEID %s\n", n, c.Woeid)
	return nil
}
