package mock_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/yweather"
	"github.com/fwojciec/yweather/mock"
	"github.com/stretchr/testify/assert"
)

func TestResultSink_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where ResultSink is expected
	var _ yweather.ResultSink = &mock.ResultSink{}
}

func TestResultSink_Delegates(t *testing.T) {
	t.Parallel()

	t.Run("delegates to OnWeatherFn", func(t *testing.T) {
		t.Parallel()

		var gotReport *yweather.WeatherReport
		s := &mock.ResultSink{
			OnWeatherFn: func(_ *yweather.LocationInfo, report *yweather.WeatherReport) {
				gotReport = report
			},
		}

		report := &yweather.WeatherReport{Temperature: 21}
		s.OnWeather(&yweather.LocationInfo{PrimaryWoeid: "1"}, report)

		assert.Same(t, report, gotReport)
	})

	t.Run("delegates to OnErrorFn", func(t *testing.T) {
		t.Parallel()

		var gotErr error
		s := &mock.ResultSink{
			OnErrorFn: func(_ *yweather.LocationInfo, err error) {
				gotErr = err
			},
		}

		s.OnError(nil, errors.New("boom"))

		assert.EqualError(t, gotErr, "boom")
	})
}

func TestInlineExecutor_RunsOnCaller(t *testing.T) {
	t.Parallel()

	ran := false
	mock.InlineExecutor{}.Go(func() { ran = true })

	assert.True(t, ran)
}
