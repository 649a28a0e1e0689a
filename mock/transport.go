package mock

import (
	"context"

	"github.com/fwojciec/yweather"
)

var _ yweather.Transport = (*Transport)(nil)

// Transport is a mock implementation of yweather.Transport.
type Transport struct {
	GetFn func(ctx context.Context, url string, done yweather.ResponseFunc)
}

func (t *Transport) Get(ctx context.Context, url string, done yweather.ResponseFunc) {
	t.GetFn(ctx, url, done)
}
