package mock

import "github.com/fwojciec/yweather"

var _ yweather.ResultSink = (*ResultSink)(nil)

// ResultSink is a mock implementation of yweather.ResultSink.
type ResultSink struct {
	OnWeatherFn func(location *yweather.LocationInfo, report *yweather.WeatherReport)
	OnErrorFn   func(location *yweather.LocationInfo, err error)
}

func (s *ResultSink) OnWeather(location *yweather.LocationInfo, report *yweather.WeatherReport) {
	s.OnWeatherFn(location, report)
}

func (s *ResultSink) OnError(location *yweather.LocationInfo, err error) {
	s.OnErrorFn(location, err)
}
