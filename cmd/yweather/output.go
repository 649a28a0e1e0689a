package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/yweather"
	ywetree "github.com/fwojciec/yweather/etree"
	"github.com/fwojciec/yweather/resolve"
)

// reportJSON is the JSON shape of a delivered result.
type reportJSON struct {
	Location *yweather.LocationInfo  `json:"location"`
	Report   *yweather.WeatherReport `json:"report"`
}

// writeReport prints a delivered result in the requested format.
func writeReport(w io.Writer, format string, location *yweather.LocationInfo, report *yweather.WeatherReport) error {
	switch format {
	case "json":
		return writeJSON(w, reportJSON{Location: location, Report: report})
	case "xml":
		doc, err := ywetree.FormatReport(location, report)
		if err != nil {
			return err
		}
		return writeLine(w, doc)
	default:
		return writeLine(w, yweather.FormatReport(location, report))
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, strings.TrimRight(s, "\n"))
	return err
}

// wait blocks until a pass completes and prints its failure, if any.
func wait(deps *Dependencies, sink *resolve.ChanSink) (resolve.Result, error) {
	res, err := sink.Wait(deps.Ctx)
	if err != nil {
		err = yweather.Errorf(yweather.ECANCELED, "interrupted")
	} else {
		err = res.Err
	}
	if err != nil {
		printError(deps, err)
	}
	return res, err
}

func printError(deps *Dependencies, err error) {
	fmt.Fprintf(deps.Stderr, "error: %s\n", yweather.ErrorMessage(err))
	if yweather.ErrorCode(err) == yweather.ECONFIG {
		fmt.Fprintln(deps.Stderr, "Hint: Set YWEATHER_APP_ID or pass --app-id")
	}
}
