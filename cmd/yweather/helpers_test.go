package main_test

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/yweather"
	main "github.com/fwojciec/yweather/cmd/yweather"
	"github.com/fwojciec/yweather/mock"
	"github.com/fwojciec/yweather/resolve"
	ywxml "github.com/fwojciec/yweather/xml"
	"github.com/jonboulle/clockwork"
)

const placesDoc = `<?xml version="1.0" encoding="UTF-8"?>
<places xmlns="http://where.yahooapis.com/v1/schema.rng">
  <place>
    <woeid>2502265</woeid>
    <admin1 type="State" woeid="2347563">California</admin1>
    <locality1 type="Town" woeid="2502265">Sunnyvale</locality1>
  </place>
</places>`

const forecastDoc = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:yweather="http://xml.weather.yahoo.com/ns/rss/1.0">
  <channel>
    <yweather:location city="Sunnyvale" region="CA" country="United States"/>
    <item>
      <yweather:condition text="Partly Cloudy" code="30" temp="18"/>
      <yweather:forecast day="Mon" low="11" high="21" text="Sunny" code="32"/>
    </item>
  </channel>
</rss>`

var testEpoch = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// yahoo is a synchronous Transport serving fixed geocode and weather documents.
type yahoo struct {
	geocodeStatus int
	weatherStatus int
	requests      atomic.Int64
}

func newYahoo() *yahoo {
	return &yahoo{geocodeStatus: http.StatusOK, weatherStatus: http.StatusOK}
}

func (y *yahoo) Get(_ context.Context, url string, done yweather.ResponseFunc) {
	y.requests.Add(1)
	switch {
	case strings.Contains(url, "places.q("):
		done(&yweather.Response{StatusCode: y.geocodeStatus, Body: placesDoc}, nil)
	case strings.Contains(url, "?w="):
		done(&yweather.Response{StatusCode: y.weatherStatus, Body: forecastDoc}, nil)
	default:
		done(&yweather.Response{StatusCode: http.StatusNotFound}, nil)
	}
}

// syncBuffer is a goroutine-safe writer that signals every write.
type syncBuffer struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	writes chan struct{}
}

func newSyncBuffer() *syncBuffer {
	return &syncBuffer{writes: make(chan struct{}, 64)}
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	n, err := b.buf.Write(p)
	select {
	case b.writes <- struct{}{}:
	default:
	}
	return n, err
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Bytes() []byte {
	return []byte(b.String())
}

// awaitWrite blocks until the next write or fails the test after a timeout.
func (b *syncBuffer) awaitWrite(t *testing.T) {
	t.Helper()
	select {
	case <-b.writes:
	case <-time.After(5 * time.Second):
		t.Fatal("no output written")
	}
}

type testEnv struct {
	deps   *main.Dependencies
	stdout *syncBuffer
	stderr *syncBuffer
	clock  *clockwork.FakeClock
}

// newTestEnv builds command dependencies around transport with the real
// extractors and a synchronous executor.
func newTestEnv(t *testing.T, transport yweather.Transport, observations yweather.ObservationService) *testEnv {
	t.Helper()

	extractor := ywxml.NewExtractor()
	resolver := resolve.NewResolver(transport, mock.InlineExecutor{}, extractor, extractor,
		resolve.WithIdentity("test-app"))

	env := &testEnv{
		stdout: newSyncBuffer(),
		stderr: newSyncBuffer(),
		clock:  clockwork.NewFakeClockAt(testEpoch),
	}
	env.deps = &main.Dependencies{
		Ctx:          context.Background(),
		Stdout:       env.stdout,
		Stderr:       env.stderr,
		Unit:         yweather.Celsius,
		Resolver:     resolver,
		Observations: observations,
		Clock:        env.clock,
	}
	return env
}

// memoryObservations is an in-process ObservationService backed by a slice.
func memoryObservations() (*mock.ObservationService, *[]*yweather.Observation) {
	var stored []*yweather.Observation
	svc := &mock.ObservationService{
		CreateObservationFn: func(_ context.Context, obs *yweather.Observation) error {
			obs.ID = "obs-" + string(rune('a'+len(stored)))
			stored = append(stored, obs)
			return nil
		},
		FindObservationsFn: func(_ context.Context, filter yweather.ObservationFilter) ([]*yweather.Observation, error) {
			var out []*yweather.Observation
			for i := len(stored) - 1; i >= 0; i-- {
				if filter.Woeid != nil && stored[i].Woeid != *filter.Woeid {
					continue
				}
				out = append(out, stored[i])
				if filter.Limit > 0 && len(out) == filter.Limit {
					break
				}
			}
			return out, nil
		},
	}
	return svc, &stored
}
