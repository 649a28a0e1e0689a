package yweather

// ResultSink receives the terminal outcome of a resolution pass.
// Exactly one of its methods is called once per pass.
type ResultSink interface {
	// OnWeather is called when both stages succeed.
	OnWeather(location *LocationInfo, report *WeatherReport)

	// OnError is called when any stage fails. location is nil when the
	// failure happened before a location was resolved, otherwise it is the
	// partially resolved location, so the caller can retry only the
	// weather stage.
	OnError(location *LocationInfo, err error)
}
