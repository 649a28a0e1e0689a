package prometheus

import (
	"context"
	"time"

	"github.com/fwojciec/yweather"
)

var _ yweather.Transport = (*InstrumentedTransport)(nil)

// InstrumentedTransport counts and times the requests of a wrapped Transport.
type InstrumentedTransport struct {
	next    yweather.Transport
	metrics *Metrics
}

// NewInstrumentedTransport creates a new InstrumentedTransport.
func NewInstrumentedTransport(next yweather.Transport, metrics *Metrics) *InstrumentedTransport {
	return &InstrumentedTransport{next: next, metrics: metrics}
}

// Get delegates to the wrapped transport and records the outcome when the
// response arrives.
func (t *InstrumentedTransport) Get(ctx context.Context, url string, done yweather.ResponseFunc) {
	begin := time.Now()
	t.next.Get(ctx, url, func(resp *yweather.Response, err error) {
		t.metrics.RequestDuration.Observe(time.Since(begin).Seconds())
		t.metrics.Requests.WithLabelValues(outcome(resp, err)).Inc()
		done(resp, err)
	})
}

func outcome(resp *yweather.Response, err error) string {
	switch {
	case err != nil || resp == nil:
		return OutcomeError
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return OutcomeHTTPError
	}
	return OutcomeSuccess
}
