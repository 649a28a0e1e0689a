package yweather

import "strings"

// Unit is the measurement system of a weather report.
// Its value is the character sent to the weather endpoint.
type Unit byte

// Supported units.
const (
	Celsius    Unit = 'c'
	Fahrenheit Unit = 'f'
)

// String returns the single character used on the wire.
func (u Unit) String() string {
	return string(rune(u))
}

// Symbol returns the degree symbol for display, e.g. "°C".
func (u Unit) Symbol() string {
	return "°" + strings.ToUpper(u.String())
}

// Validate returns an error if the unit is not Celsius or Fahrenheit.
func (u Unit) Validate() error {
	if u != Celsius && u != Fahrenheit {
		return Errorf(EINVALID, "unsupported unit %q", string(rune(u)))
	}
	return nil
}

// ParseUnit parses a unit name. It accepts "c", "f", "celsius" and
// "fahrenheit" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "celsius":
		return Celsius, nil
	case "f", "fahrenheit":
		return Fahrenheit, nil
	}
	return 0, Errorf(EINVALID, "unknown unit %q (want c or f)", s)
}

// WeatherReport is a snapshot of current conditions and today's forecast.
type WeatherReport struct {
	Temperature   int    `json:"temperature"`
	ConditionCode int    `json:"conditionCode"`
	ConditionText string `json:"conditionText"`

	// Only the first forecast in a document is captured.
	ForecastCode int    `json:"forecastCode"`
	Low          int    `json:"low"`
	High         int    `json:"high"`
	ForecastText string `json:"forecastText"`

	// Location is "<city-or-village>, <region-or-country>".
	Location string `json:"location"`

	Unit Unit `json:"unit"`
}

// WeatherExtractor turns a weather response document into a WeatherReport.
type WeatherExtractor interface {
	// ExtractWeather parses the document and stamps unit onto the result.
	// Malformed documents or non-numeric values return EPARSE and no
	// partial result.
	ExtractWeather(doc string, unit Unit) (*WeatherReport, error)
}

// MarshalText encodes the unit as its wire character.
func (u Unit) MarshalText() ([]byte, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	return []byte(u.String()), nil
}

// UnmarshalText decodes a unit using ParseUnit.
func (u *Unit) UnmarshalText(text []byte) error {
	v, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
