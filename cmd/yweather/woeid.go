package main

import (
	"github.com/fwojciec/yweather"
	"github.com/fwojciec/yweather/resolve"
)

// Run executes the woeid command.
func (c *WoeidCmd) Run(deps *Dependencies) error {
	result := resolve.NewChanSink()

	var sink yweather.ResultSink = result
	if c.Save {
		sink = deps.recording(sink)
	}

	location := &yweather.LocationInfo{PrimaryWoeid: c.Woeid}
	deps.Resolver.ResolveLocation(deps.Ctx, location, deps.Unit, deps.sink(sink))

	res, err := wait(deps, result)
	if err != nil {
		return err
	}
	return writeReport(deps.Stdout, c.Format, res.Location, res.Report)
}
