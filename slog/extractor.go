package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/yweather"
)

// Ensure LoggingExtractor implements both extractor interfaces.
var (
	_ yweather.LocationExtractor = (*LoggingExtractor)(nil)
	_ yweather.WeatherExtractor  = (*LoggingExtractor)(nil)
)

// LoggingExtractor wraps the location and weather extractors with debug logging.
type LoggingExtractor struct {
	locations yweather.LocationExtractor
	weather   yweather.WeatherExtractor
	logger    *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(locations yweather.LocationExtractor, weather yweather.WeatherExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{locations: locations, weather: weather, logger: logger}
}

// ExtractLocation delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) ExtractLocation(doc string) (loc *yweather.LocationInfo, err error) {
	defer func(begin time.Time) {
		var woeid string
		var alternates int
		if loc != nil {
			woeid = loc.PrimaryWoeid
			alternates = len(loc.Woeids)
		}
		e.logger.Debug("extract location",
			"bytes", len(doc),
			"woeid", woeid,
			"alternates", alternates,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.locations.ExtractLocation(doc)
}

// ExtractWeather delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) ExtractWeather(doc string, unit yweather.Unit) (report *yweather.WeatherReport, err error) {
	defer func(begin time.Time) {
		var location string
		if report != nil {
			location = report.Location
		}
		e.logger.Debug("extract weather",
			"bytes", len(doc),
			"unit", unit,
			"location", location,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.weather.ExtractWeather(doc, unit)
}
