package yweather

import (
	"fmt"
	"strings"
)

// FormatReport renders a report as human-readable text.
// The town, when known, is shown in front of the report's own location.
func FormatReport(location *LocationInfo, report *WeatherReport) string {
	var b strings.Builder

	header := report.Location
	if location != nil && location.Town != "" {
		header = location.Town + " (" + report.Location + ")"
	}
	b.WriteString(header)
	b.WriteString("\n")

	fmt.Fprintf(&b, "Now:   %d%s, %s\n", report.Temperature, report.Unit.Symbol(), report.ConditionText)
	fmt.Fprintf(&b, "Today: %d%s / %d%s, %s", report.Low, report.Unit.Symbol(), report.High, report.Unit.Symbol(), report.ForecastText)

	return b.String()
}

// FormatObservations renders stored observations, one per line.
func FormatObservations(observations []*Observation) string {
	if len(observations) == 0 {
		return ""
	}

	lines := make([]string, 0, len(observations))
	for _, obs := range observations {
		name := obs.Town
		if name == "" {
			name = obs.Report.Location
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %-24s %d%s %s",
			obs.FetchedAt.Format("2006-01-02 15:04"),
			obs.Woeid,
			name,
			obs.Report.Temperature,
			obs.Report.Unit.Symbol(),
			obs.Report.ConditionText,
		))
	}

	return strings.Join(lines, "\n")
}
