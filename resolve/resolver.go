// Package resolve provides the two-stage weather resolution pipeline.
// It reverse-geocodes a coordinate into a WOEID, fetches the weather for
// that WOEID, and hands the outcome to a yweather.ResultSink.
package resolve

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"

	"github.com/fwojciec/yweather"
)

// Default Yahoo endpoints.
const (
	DefaultGeocodeEndpoint = "http://where.yahooapis.com/v1"
	DefaultWeatherEndpoint = "http://weather.yahooapis.com/forecastrss"
)

// Resolver chains the geocode and weather lookups.
//
// Every Resolve method returns as soon as the first request is started.
// Responses arrive on the transport's goroutine and are parsed on the
// executor, so neither the caller nor the transport is blocked by
// extraction. Resolver is safe for concurrent use; passes share no state.
type Resolver struct {
	transport yweather.Transport
	executor  yweather.Executor
	locations yweather.LocationExtractor
	weather   yweather.WeatherExtractor

	geocodeEndpoint string
	weatherEndpoint string

	identity atomic.Pointer[string]
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithIdentity sets the application ID sent to the geocode endpoint.
func WithIdentity(identity string) Option {
	return func(r *Resolver) {
		if identity != "" {
			r.identity.Store(&identity)
		}
	}
}

// WithGeocodeEndpoint overrides DefaultGeocodeEndpoint.
func WithGeocodeEndpoint(endpoint string) Option {
	return func(r *Resolver) {
		r.geocodeEndpoint = endpoint
	}
}

// WithWeatherEndpoint overrides DefaultWeatherEndpoint.
func WithWeatherEndpoint(endpoint string) Option {
	return func(r *Resolver) {
		r.weatherEndpoint = endpoint
	}
}

// NewResolver creates a Resolver from its collaborators.
func NewResolver(
	transport yweather.Transport,
	executor yweather.Executor,
	locations yweather.LocationExtractor,
	weather yweather.WeatherExtractor,
	opts ...Option,
) *Resolver {
	r := &Resolver{
		transport:       transport,
		executor:        executor,
		locations:       locations,
		weather:         weather,
		geocodeEndpoint: DefaultGeocodeEndpoint,
		weatherEndpoint: DefaultWeatherEndpoint,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configure sets the identity unless one is already configured, in which
// case the existing value is kept. Returns ECONFIG when identity is empty
// and none is configured. Use SetIdentity to replace an identity.
func (r *Resolver) Configure(identity string) error {
	for {
		current := r.identity.Load()
		if current != nil && *current != "" {
			return nil
		}
		if identity == "" {
			return yweather.Errorf(yweather.ECONFIG, "application ID required")
		}
		if r.identity.CompareAndSwap(current, &identity) {
			return nil
		}
	}
}

// SetIdentity replaces the configured identity.
func (r *Resolver) SetIdentity(identity string) {
	r.identity.Store(&identity)
}

// Identity returns the configured identity, or "" if none is set.
func (r *Resolver) Identity() string {
	if p := r.identity.Load(); p != nil {
		return *p
	}
	return ""
}

// ResolveCoordinate reverse-geocodes coord and continues with
// ResolveLocation. Failures before a location is resolved reach
// sink.OnError with a nil location.
func (r *Resolver) ResolveCoordinate(ctx context.Context, coord yweather.Coordinate, unit yweather.Unit, sink yweather.ResultSink) {
	identity := r.Identity()
	if identity == "" {
		sink.OnError(nil, yweather.Errorf(yweather.ECONFIG, "application ID not configured"))
		return
	}
	if err := coord.Validate(); err != nil {
		sink.OnError(nil, err)
		return
	}
	if err := unit.Validate(); err != nil {
		sink.OnError(nil, err)
		return
	}
	if err := ctx.Err(); err != nil {
		sink.OnError(nil, canceled("geocode", err))
		return
	}

	r.transport.Get(ctx, r.geocodeURL(coord, identity), func(resp *yweather.Response, err error) {
		if err := checkResponse(ctx, "geocode", resp, err, isSuccess); err != nil {
			sink.OnError(nil, err)
			return
		}

		r.executor.Go(func() {
			location, err := extract(func() (*yweather.LocationInfo, error) {
				return r.locations.ExtractLocation(resp.Body)
			})
			if err != nil {
				sink.OnError(nil, err)
				return
			}
			if !location.Resolved() {
				sink.OnError(nil, yweather.Errorf(yweather.EUNRESOLVED, "no WOEID found for %s,%s",
					formatDegrees(coord.Lat), formatDegrees(coord.Lon)))
				return
			}

			r.ResolveLocation(ctx, location, unit, sink)
		})
	})
}

// ResolveLocation fetches the weather for an already resolved location.
// Every failure reaches sink.OnError with location attached, so the caller
// can retry this stage alone. A location without a primary WOEID fails
// with EUNRESOLVED before any request is made.
func (r *Resolver) ResolveLocation(ctx context.Context, location *yweather.LocationInfo, unit yweather.Unit, sink yweather.ResultSink) {
	if !location.Resolved() {
		sink.OnError(location, yweather.Errorf(yweather.EUNRESOLVED, "location has no primary WOEID"))
		return
	}
	if err := unit.Validate(); err != nil {
		sink.OnError(location, err)
		return
	}
	if err := ctx.Err(); err != nil {
		sink.OnError(location, canceled("weather", err))
		return
	}

	r.transport.Get(ctx, r.weatherURL(location.PrimaryWoeid, unit), func(resp *yweather.Response, err error) {
		if err := checkResponse(ctx, "weather", resp, err, isOK); err != nil {
			sink.OnError(location, err)
			return
		}

		r.executor.Go(func() {
			report, err := extract(func() (*yweather.WeatherReport, error) {
				return r.weather.ExtractWeather(resp.Body, unit)
			})
			if err != nil {
				sink.OnError(location, err)
				return
			}
			if report == nil {
				sink.OnError(location, yweather.Errorf(yweather.EPARSE, "weather document produced no report"))
				return
			}

			sink.OnWeather(location, report)
		})
	})
}

func (r *Resolver) geocodeURL(coord yweather.Coordinate, identity string) string {
	return fmt.Sprintf("%s/places.q('%s,%s')?%s",
		r.geocodeEndpoint,
		formatDegrees(coord.Lat),
		formatDegrees(coord.Lon),
		url.Values{"appid": {identity}}.Encode(),
	)
}

func (r *Resolver) weatherURL(woeid string, unit yweather.Unit) string {
	return fmt.Sprintf("%s?w=%s&u=%s", r.weatherEndpoint, url.QueryEscape(woeid), unit)
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// The geocode stage accepts any 2xx response, the weather stage only 200.
func isSuccess(code int) bool { return code >= 200 && code < 300 }
func isOK(code int) bool      { return code == http.StatusOK }

// checkResponse classifies the outcome of a transport call.
func checkResponse(ctx context.Context, stage string, resp *yweather.Response, err error, accept func(int) bool) error {
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return canceled(stage, ctxErr)
		}
		return yweather.Errorf(yweather.ETRANSPORT, "%s request failed: %v", stage, err)
	}
	if resp == nil {
		return yweather.Errorf(yweather.ETRANSPORT, "%s request returned no response", stage)
	}
	if !accept(resp.StatusCode) {
		return yweather.Errorf(yweather.ETRANSPORT, "%s request: HTTP %d", stage, resp.StatusCode)
	}
	return nil
}

func canceled(stage string, err error) error {
	return yweather.Errorf(yweather.ECANCELED, "%s stage: %v", stage, err)
}

// extract runs fn, reporting its failures as EPARSE and a panic as EINTERNAL.
func extract[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if p := recover(); p != nil {
			var zero T
			v, err = zero, yweather.Errorf(yweather.EINTERNAL, "extractor panic: %v", p)
		}
	}()

	v, err = fn()
	if err != nil {
		var zero T
		if yweather.ErrorCode(err) == yweather.EPARSE {
			return zero, err
		}
		return zero, yweather.Errorf(yweather.EPARSE, "%v", err)
	}
	return v, nil
}
