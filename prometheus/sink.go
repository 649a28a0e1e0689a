package prometheus

import "github.com/fwojciec/yweather"

var _ yweather.ResultSink = (*InstrumentedSink)(nil)

// InstrumentedSink counts pass outcomes and tracks the latest temperature
// per WOEID before forwarding to the wrapped sink.
type InstrumentedSink struct {
	next    yweather.ResultSink
	metrics *Metrics
}

// NewInstrumentedSink creates a new InstrumentedSink.
func NewInstrumentedSink(next yweather.ResultSink, metrics *Metrics) *InstrumentedSink {
	return &InstrumentedSink{next: next, metrics: metrics}
}

func (s *InstrumentedSink) OnWeather(location *yweather.LocationInfo, report *yweather.WeatherReport) {
	s.metrics.Results.WithLabelValues("weather").Inc()
	s.metrics.Temperature.
		WithLabelValues(location.PrimaryWoeid, report.Unit.String()).
		Set(float64(report.Temperature))
	s.next.OnWeather(location, report)
}

func (s *InstrumentedSink) OnError(location *yweather.LocationInfo, err error) {
	s.metrics.Results.WithLabelValues(yweather.ErrorCode(err)).Inc()
	s.next.OnError(location, err)
}
