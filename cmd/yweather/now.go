package main

import (
	"github.com/fwojciec/yweather"
	"github.com/fwojciec/yweather/resolve"
)

// Run executes the now command.
func (c *NowCmd) Run(deps *Dependencies) error {
	result := resolve.NewChanSink()

	var sink yweather.ResultSink = result
	if c.Save {
		sink = deps.recording(sink)
	}

	coord := yweather.Coordinate{Lat: c.Lat, Lon: c.Lon}
	deps.Resolver.ResolveCoordinate(deps.Ctx, coord, deps.Unit, deps.sink(sink))

	res, err := wait(deps, result)
	if err != nil {
		return err
	}
	return writeReport(deps.Stdout, c.Format, res.Location, res.Report)
}
