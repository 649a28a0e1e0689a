package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/yweather"
	"github.com/fwojciec/yweather/mock"
	ywslog "github.com/fwojciec/yweather/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_ExtractLocation(t *testing.T) {
	t.Parallel()

	t.Run("logs resolved WOEID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.LocationExtractor{
			ExtractLocationFn: func(string) (*yweather.LocationInfo, error) {
				return &yweather.LocationInfo{PrimaryWoeid: "2502265", Woeids: []string{"1", "2"}}, nil
			},
		}

		extractor := ywslog.NewLoggingExtractor(inner, nil, logger)
		loc, err := extractor.ExtractLocation("<places/>")

		require.NoError(t, err)
		assert.Equal(t, "2502265", loc.PrimaryWoeid)
		output := buf.String()
		assert.Contains(t, output, "extract location")
		assert.Contains(t, output, "bytes=9")
		assert.Contains(t, output, "woeid=2502265")
		assert.Contains(t, output, "alternates=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.LocationExtractor{
			ExtractLocationFn: func(string) (*yweather.LocationInfo, error) {
				return nil, yweather.Errorf(yweather.EPARSE, "malformed")
			},
		}

		_, err := ywslog.NewLoggingExtractor(inner, nil, logger).ExtractLocation("<")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=parse")
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.LocationExtractor{
			ExtractLocationFn: func(string) (*yweather.LocationInfo, error) {
				return &yweather.LocationInfo{}, nil
			},
		}

		_, err := ywslog.NewLoggingExtractor(inner, nil, logger).ExtractLocation("")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingExtractor_ExtractWeather(t *testing.T) {
	t.Parallel()

	t.Run("logs unit and location", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.WeatherExtractor{
			ExtractWeatherFn: func(_ string, unit yweather.Unit) (*yweather.WeatherReport, error) {
				return &yweather.WeatherReport{Location: "Sunnyvale, US", Unit: unit}, nil
			},
		}

		report, err := ywslog.NewLoggingExtractor(nil, inner, logger).ExtractWeather("<rss/>", yweather.Fahrenheit)

		require.NoError(t, err)
		assert.Equal(t, yweather.Fahrenheit, report.Unit)
		output := buf.String()
		assert.Contains(t, output, "extract weather")
		assert.Contains(t, output, "unit=f")
		assert.Contains(t, output, "location=\"Sunnyvale, US\"")
	})
}
