package mock

import "github.com/fwojciec/yweather"

var (
	_ yweather.LocationExtractor = (*LocationExtractor)(nil)
	_ yweather.WeatherExtractor  = (*WeatherExtractor)(nil)
)

// LocationExtractor is a mock implementation of yweather.LocationExtractor.
type LocationExtractor struct {
	ExtractLocationFn func(doc string) (*yweather.LocationInfo, error)
}

func (e *LocationExtractor) ExtractLocation(doc string) (*yweather.LocationInfo, error) {
	return e.ExtractLocationFn(doc)
}

// WeatherExtractor is a mock implementation of yweather.WeatherExtractor.
type WeatherExtractor struct {
	ExtractWeatherFn func(doc string, unit yweather.Unit) (*yweather.WeatherReport, error)
}

func (e *WeatherExtractor) ExtractWeather(doc string, unit yweather.Unit) (*yweather.WeatherReport, error) {
	return e.ExtractWeatherFn(doc, unit)
}
