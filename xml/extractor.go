// Package xml provides streaming implementations of yweather.LocationExtractor
// and yweather.WeatherExtractor for the Yahoo PlaceFinder and weather RSS
// documents.
package xml

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"github.com/fwojciec/yweather"
	"golang.org/x/net/html/charset"
)

// Ensure Extractor implements both extractor interfaces at compile time.
var (
	_ yweather.LocationExtractor = (*Extractor)(nil)
	_ yweather.WeatherExtractor  = (*Extractor)(nil)
)

// Placeholder used for a missing city or country in a report location.
const unknownPlace = "--"

// Extractor parses markup documents one token at a time without building
// a document tree. It holds no state and is safe for concurrent use.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractLocation parses a reverse-geocode document.
//
// The text of the <woeid> element becomes the primary WOEID. Elements
// whose names start with "locality" or "admin" contribute their woeid
// attribute as an alternate WOEID, and the text of the one typed "Town"
// becomes the town name.
func (e *Extractor) ExtractLocation(doc string) (*yweather.LocationInfo, error) {
	var (
		primary    string
		inWoeid    bool
		inTown     bool
		town       string
		alternates = make(map[string]string)
	)

	err := walk(doc, handler{
		start: func(el xml.StartElement) error {
			name := el.Name.Local
			if name == "woeid" {
				inWoeid = true
			}
			if strings.HasPrefix(name, "locality") || strings.HasPrefix(name, "admin") {
				for _, attr := range el.Attr {
					switch attr.Name.Local {
					case "type":
						if attr.Value == "Town" {
							inTown = true
						}
					case "woeid":
						if attr.Value != "" {
							alternates[name] = attr.Value
						}
					}
				}
			}
			return nil
		},
		text: func(text string) {
			if inWoeid {
				primary = text
			}
			if inTown {
				town = text
			}
		},
		end: func() {
			inWoeid = false
			inTown = false
		},
	})
	if err != nil {
		return nil, err
	}

	loc := &yweather.LocationInfo{Town: town}
	if primary != "" {
		loc.PrimaryWoeid = primary
	}
	for _, woeid := range alternates {
		loc.AddWoeid(woeid)
	}
	return loc, nil
}

// ExtractWeather parses a weather RSS document.
//
// Current conditions come from <condition>, today's forecast from the
// first <forecast> only, and the location description from <location>.
func (e *Extractor) ExtractWeather(doc string, unit yweather.Unit) (*yweather.WeatherReport, error) {
	var (
		report      yweather.WeatherReport
		hasForecast bool
	)

	err := walk(doc, handler{
		start: func(el xml.StartElement) error {
			switch el.Name.Local {
			case "condition":
				return readCondition(el.Attr, &report)
			case "forecast":
				if hasForecast {
					return nil
				}
				hasForecast = true
				return readForecast(el.Attr, &report)
			case "location":
				report.Location = describeLocation(el.Attr)
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	report.Unit = unit
	return &report, nil
}

func readCondition(attrs []xml.Attr, report *yweather.WeatherReport) error {
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "temp":
			report.Temperature, err = atoi("condition", attr)
		case "code":
			report.ConditionCode, err = atoi("condition", attr)
		case "text":
			report.ConditionText = attr.Value
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func readForecast(attrs []xml.Attr, report *yweather.WeatherReport) error {
	for _, attr := range attrs {
		var err error
		switch attr.Name.Local {
		case "code":
			report.ForecastCode, err = atoi("forecast", attr)
		case "low":
			report.Low, err = atoi("forecast", attr)
		case "high":
			report.High, err = atoi("forecast", attr)
		case "text":
			report.ForecastText = attr.Value
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// describeLocation composes "<city>, <region>" from a <location> element,
// with the region always taken from the country attribute.
func describeLocation(attrs []xml.Attr) string {
	city := unknownPlace
	country := unknownPlace
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "city":
			city = attr.Value
		case "country":
			country = attr.Value
		}
	}
	return city + ", " + country
}

func atoi(element string, attr xml.Attr) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(attr.Value))
	if err != nil {
		return 0, yweather.Errorf(yweather.EPARSE, "%s: attribute %s=%q is not an integer", element, attr.Name.Local, attr.Value)
	}
	return n, nil
}

// handler receives the events of a document walk. Nil callbacks are skipped.
type handler struct {
	start func(el xml.StartElement) error
	text  func(text string)
	end   func()
}

// walk streams doc through h. Decoding stops at the first error from the
// decoder, reported as EPARSE, or from h.start, returned as is.
func walk(doc string, h handler) error {
	dec := xml.NewDecoder(strings.NewReader(doc))
	dec.CharsetReader = charset.NewReaderLabel

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return yweather.Errorf(yweather.EPARSE, "malformed document: %v", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if h.start == nil {
				continue
			}
			if err := h.start(t); err != nil {
				return err
			}
		case xml.CharData:
			if h.text != nil {
				h.text(string(t))
			}
		case xml.EndElement:
			if h.end != nil {
				h.end()
			}
		}
	}
}
