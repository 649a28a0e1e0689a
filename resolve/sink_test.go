package resolve_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/yweather"
	"github.com/fwojciec/yweather/mock"
	"github.com/fwojciec/yweather/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChanSink(t *testing.T) {
	t.Parallel()

	t.Run("returns delivered weather", func(t *testing.T) {
		t.Parallel()

		sink := resolve.NewChanSink()
		loc := &yweather.LocationInfo{PrimaryWoeid: "1"}
		report := &yweather.WeatherReport{Temperature: 5}
		sink.OnWeather(loc, report)

		res, err := sink.Wait(context.Background())

		require.NoError(t, err)
		assert.Same(t, loc, res.Location)
		assert.Same(t, report, res.Report)
		assert.NoError(t, res.Err)
	})

	t.Run("returns delivered error", func(t *testing.T) {
		t.Parallel()

		sink := resolve.NewChanSink()
		sink.OnError(nil, yweather.Errorf(yweather.ETRANSPORT, "down"))

		res, err := sink.Wait(context.Background())

		require.NoError(t, err)
		assert.Nil(t, res.Location)
		assert.Nil(t, res.Report)
		assert.Equal(t, yweather.ETRANSPORT, yweather.ErrorCode(res.Err))
	})

	t.Run("stops waiting when context is done", func(t *testing.T) {
		t.Parallel()

		sink := resolve.NewChanSink()
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		_, err := sink.Wait(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestRecordingSink(t *testing.T) {
	t.Parallel()

	loc := &yweather.LocationInfo{PrimaryWoeid: "2502265", Town: "Sunnyvale"}
	report := &yweather.WeatherReport{Temperature: 18, ConditionText: "Partly Cloudy", Unit: yweather.Celsius}

	forwarding := func(o *outcome) yweather.ResultSink { return recordingSink(o) }

	t.Run("stores new report and forwards it", func(t *testing.T) {
		t.Parallel()

		var created *yweather.Observation
		var filter yweather.ObservationFilter
		observations := &mock.ObservationService{
			FindObservationsFn: func(_ context.Context, f yweather.ObservationFilter) ([]*yweather.Observation, error) {
				filter = f
				return nil, nil
			},
			CreateObservationFn: func(_ context.Context, obs *yweather.Observation) error {
				created = obs
				return nil
			},
		}

		var o outcome
		sink := resolve.NewRecordingSink(context.Background(), forwarding(&o), observations, nil)
		sink.OnWeather(loc, report)

		require.NotNil(t, created)
		assert.Equal(t, "2502265", created.Woeid)
		assert.Equal(t, "Sunnyvale", created.Town)
		assert.Equal(t, *report, created.Report)
		require.NotNil(t, filter.Woeid)
		assert.Equal(t, "2502265", *filter.Woeid)
		assert.Equal(t, 1, filter.Limit)
		assert.Equal(t, 1, o.weatherCalls)
		assert.Same(t, report, o.report)
	})

	t.Run("skips report identical to latest observation", func(t *testing.T) {
		t.Parallel()

		observations := &mock.ObservationService{
			FindObservationsFn: func(context.Context, yweather.ObservationFilter) ([]*yweather.Observation, error) {
				return []*yweather.Observation{{Woeid: "2502265", Report: *report}}, nil
			},
			CreateObservationFn: func(context.Context, *yweather.Observation) error {
				t.Fatal("CreateObservation should not be called")
				return nil
			},
		}

		var o outcome
		resolve.NewRecordingSink(context.Background(), forwarding(&o), observations, nil).OnWeather(loc, report)

		assert.Equal(t, 1, o.weatherCalls)
	})

	t.Run("stores report that differs from latest observation", func(t *testing.T) {
		t.Parallel()

		older := *report
		older.Temperature = 15
		var stored bool
		observations := &mock.ObservationService{
			FindObservationsFn: func(context.Context, yweather.ObservationFilter) ([]*yweather.Observation, error) {
				return []*yweather.Observation{{Woeid: "2502265", Report: older}}, nil
			},
			CreateObservationFn: func(context.Context, *yweather.Observation) error {
				stored = true
				return nil
			},
		}

		var o outcome
		resolve.NewRecordingSink(context.Background(), forwarding(&o), observations, nil).OnWeather(loc, report)

		assert.True(t, stored)
	})

	t.Run("reports storage failure and still forwards", func(t *testing.T) {
		t.Parallel()

		observations := &mock.ObservationService{
			FindObservationsFn: func(context.Context, yweather.ObservationFilter) ([]*yweather.Observation, error) {
				return nil, nil
			},
			CreateObservationFn: func(context.Context, *yweather.Observation) error {
				return errors.New("disk full")
			},
		}

		var storeErr error
		var o outcome
		sink := resolve.NewRecordingSink(context.Background(), forwarding(&o), observations, func(err error) { storeErr = err })
		sink.OnWeather(loc, report)

		require.Error(t, storeErr)
		assert.Contains(t, storeErr.Error(), "disk full")
		assert.Equal(t, 1, o.weatherCalls)
	})

	t.Run("forwards errors without storing", func(t *testing.T) {
		t.Parallel()

		observations := &mock.ObservationService{}

		var o outcome
		resolve.NewRecordingSink(context.Background(), forwarding(&o), observations, nil).
			OnError(loc, yweather.Errorf(yweather.ETRANSPORT, "down"))

		assert.Equal(t, 1, o.errorCalls)
		assert.Same(t, loc, o.location)
	})
}
