package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fwojciec/yweather"
)

// batchJSON is the JSON shape of one batch entry.
type batchJSON struct {
	Coordinate yweather.Coordinate     `json:"coordinate"`
	Location   *yweather.LocationInfo  `json:"location,omitempty"`
	Report     *yweather.WeatherReport `json:"report,omitempty"`
	Error      string                  `json:"error,omitempty"`
}

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	coords := make([]yweather.Coordinate, 0, len(c.Coords))
	for _, s := range c.Coords {
		coord, err := parseCoordinate(s)
		if err != nil {
			printError(deps, err)
			return err
		}
		coords = append(coords, coord)
	}

	results := deps.Resolver.ResolveCoordinates(deps.Ctx, coords, deps.Unit, c.Parallel)

	var failed int
	entries := make([]batchJSON, len(results))
	for i, res := range results {
		entries[i] = batchJSON{Coordinate: coords[i], Location: res.Location, Report: res.Report}
		if res.Err != nil {
			failed++
			entries[i].Error = yweather.ErrorMessage(res.Err)
		}
	}

	if c.Format == "json" {
		if err := writeJSON(deps.Stdout, entries); err != nil {
			return err
		}
	} else {
		for i, e := range entries {
			if i > 0 {
				fmt.Fprintln(deps.Stdout)
			}
			fmt.Fprintf(deps.Stdout, "== %s ==\n", c.Coords[i])
			if e.Error != "" {
				fmt.Fprintf(deps.Stdout, "error: %s\n", e.Error)
				continue
			}
			if err := writeLine(deps.Stdout, yweather.FormatReport(e.Location, e.Report)); err != nil {
				return err
			}
		}
	}

	if failed > 0 {
		return yweather.Errorf(yweather.EUNRESOLVED, "%d of %d coordinates failed", failed, len(results))
	}
	return nil
}

// parseCoordinate parses "lat,lon".
func parseCoordinate(s string) (yweather.Coordinate, error) {
	latStr, lonStr, ok := strings.Cut(s, ",")
	if !ok {
		return yweather.Coordinate{}, yweather.Errorf(yweather.EINVALID, "coordinate %q: want lat,lon", s)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return yweather.Coordinate{}, yweather.Errorf(yweather.EINVALID, "coordinate %q: bad latitude", s)
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return yweather.Coordinate{}, yweather.Errorf(yweather.EINVALID, "coordinate %q: bad longitude", s)
	}
	coord := yweather.Coordinate{Lat: lat, Lon: lon}
	return coord, coord.Validate()
}
