package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/yweather"
	"github.com/fwojciec/yweather/mock"
	ywslog "github.com/fwojciec/yweather/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingSink(t *testing.T) {
	t.Parallel()

	t.Run("logs weather and forwards it", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var forwarded *yweather.WeatherReport
		inner := &mock.ResultSink{
			OnWeatherFn: func(_ *yweather.LocationInfo, report *yweather.WeatherReport) {
				forwarded = report
			},
		}

		report := &yweather.WeatherReport{Temperature: 18, ConditionText: "Fair", Location: "Sunnyvale, US", Unit: yweather.Celsius}
		ywslog.NewLoggingSink(inner, logger).OnWeather(&yweather.LocationInfo{PrimaryWoeid: "2502265"}, report)

		assert.Same(t, report, forwarded)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "woeid=2502265")
		assert.Contains(t, output, "temp=18")
		assert.Contains(t, output, "unit=c")
		assert.Contains(t, output, "condition=Fair")
	})

	t.Run("logs error with code and forwards it", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		var forwarded error
		inner := &mock.ResultSink{
			OnErrorFn: func(_ *yweather.LocationInfo, err error) {
				forwarded = err
			},
		}

		err := yweather.Errorf(yweather.EUNRESOLVED, "no WOEID")
		ywslog.NewLoggingSink(inner, logger).OnError(nil, err)

		assert.Equal(t, err, forwarded)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "code=unresolved")
		assert.Contains(t, output, "woeid=\"\"")
	})
}
