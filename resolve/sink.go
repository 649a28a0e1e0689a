package resolve

import (
	"context"

	"github.com/fwojciec/yweather"
)

// Result is the terminal outcome of one resolution pass.
type Result struct {
	Location *yweather.LocationInfo
	Report   *yweather.WeatherReport
	Err      error
}

var _ yweather.ResultSink = (*ChanSink)(nil)

// ChanSink turns the callback outcome of a single pass into a value that
// can be waited for. Use a new ChanSink for every pass.
type ChanSink struct {
	ch chan Result
}

// NewChanSink creates a ChanSink ready for one pass.
func NewChanSink() *ChanSink {
	return &ChanSink{ch: make(chan Result, 1)}
}

func (s *ChanSink) OnWeather(location *yweather.LocationInfo, report *yweather.WeatherReport) {
	s.ch <- Result{Location: location, Report: report}
}

func (s *ChanSink) OnError(location *yweather.LocationInfo, err error) {
	s.ch <- Result{Location: location, Err: err}
}

// Wait blocks until the pass delivers its outcome or ctx is done.
func (s *ChanSink) Wait(ctx context.Context) (Result, error) {
	select {
	case res := <-s.ch:
		return res, nil
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

var _ yweather.ResultSink = (*RecordingSink)(nil)

// RecordingSink stores every delivered report as an Observation before
// forwarding it. A report identical to the latest stored observation for
// the same WOEID is not stored again. Errors pass through untouched.
type RecordingSink struct {
	ctx          context.Context
	next         yweather.ResultSink
	observations yweather.ObservationService
	onStoreError func(error)
}

// NewRecordingSink wraps next. onStoreError, if non-nil, receives storage
// failures; the report is forwarded either way.
func NewRecordingSink(ctx context.Context, next yweather.ResultSink, observations yweather.ObservationService, onStoreError func(error)) *RecordingSink {
	return &RecordingSink{
		ctx:          ctx,
		next:         next,
		observations: observations,
		onStoreError: onStoreError,
	}
}

func (s *RecordingSink) OnWeather(location *yweather.LocationInfo, report *yweather.WeatherReport) {
	if err := s.record(location, report); err != nil && s.onStoreError != nil {
		s.onStoreError(err)
	}
	s.next.OnWeather(location, report)
}

func (s *RecordingSink) OnError(location *yweather.LocationInfo, err error) {
	s.next.OnError(location, err)
}

func (s *RecordingSink) record(location *yweather.LocationInfo, report *yweather.WeatherReport) error {
	latest, err := s.observations.FindObservations(s.ctx, yweather.ObservationFilter{
		Woeid: &location.PrimaryWoeid,
		Limit: 1,
	})
	if err != nil {
		return err
	}
	if len(latest) > 0 && latest[0].Report == *report {
		return nil
	}
	return s.observations.CreateObservation(s.ctx, yweather.NewObservation(location, report))
}
