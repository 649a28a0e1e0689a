package slog

import (
	"log/slog"

	"github.com/fwojciec/yweather"
)

// Ensure LoggingSink implements yweather.ResultSink.
var _ yweather.ResultSink = (*LoggingSink)(nil)

// LoggingSink logs the outcome of every pass before forwarding it.
type LoggingSink struct {
	next   yweather.ResultSink
	logger *slog.Logger
}

// NewLoggingSink creates a new LoggingSink.
func NewLoggingSink(next yweather.ResultSink, logger *slog.Logger) *LoggingSink {
	return &LoggingSink{next: next, logger: logger}
}

func (s *LoggingSink) OnWeather(location *yweather.LocationInfo, report *yweather.WeatherReport) {
	s.logger.Info("weather",
		"woeid", woeid(location),
		"location", report.Location,
		"temp", report.Temperature,
		"unit", report.Unit,
		"condition", report.ConditionText,
	)
	s.next.OnWeather(location, report)
}

func (s *LoggingSink) OnError(location *yweather.LocationInfo, err error) {
	s.logger.Error("weather failed",
		"woeid", woeid(location),
		"code", yweather.ErrorCode(err),
		"err", err,
	)
	s.next.OnError(location, err)
}

func woeid(location *yweather.LocationInfo) string {
	if location == nil {
		return ""
	}
	return location.PrimaryWoeid
}
