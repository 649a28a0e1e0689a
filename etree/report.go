// Package etree renders weather reports and observations as XML documents.
package etree

import (
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/yweather"
)

const indent = 2

// FormatReport renders a delivered result as a <weather> document.
func FormatReport(location *yweather.LocationInfo, report *yweather.WeatherReport) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	appendReport(doc.CreateElement("weather"), location, report)
	doc.Indent(indent)
	return doc.WriteToString()
}

// FormatObservations renders recorded observations as an <observations> document.
func FormatObservations(observations []*yweather.Observation) (string, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("observations")
	for _, obs := range observations {
		el := root.CreateElement("observation")
		el.CreateAttr("id", obs.ID)
		el.CreateAttr("fetched", obs.FetchedAt.UTC().Format(time.RFC3339))
		el.CreateAttr("hash", obs.ContentHash)
		appendReport(el, &yweather.LocationInfo{PrimaryWoeid: obs.Woeid, Town: obs.Town}, &obs.Report)
	}
	doc.Indent(indent)
	return doc.WriteToString()
}

func appendReport(el *etree.Element, location *yweather.LocationInfo, report *yweather.WeatherReport) {
	if location != nil {
		el.CreateAttr("woeid", location.PrimaryWoeid)
	}
	el.CreateAttr("unit", report.Unit.String())

	loc := el.CreateElement("location")
	if location != nil && location.Town != "" {
		loc.CreateAttr("town", location.Town)
	}
	loc.SetText(report.Location)

	condition := el.CreateElement("condition")
	condition.CreateAttr("code", strconv.Itoa(report.ConditionCode))
	condition.CreateAttr("temp", strconv.Itoa(report.Temperature))
	condition.CreateAttr("text", report.ConditionText)

	forecast := el.CreateElement("forecast")
	forecast.CreateAttr("code", strconv.Itoa(report.ForecastCode))
	forecast.CreateAttr("low", strconv.Itoa(report.Low))
	forecast.CreateAttr("high", strconv.Itoa(report.High))
	forecast.CreateAttr("text", report.ForecastText)
}
