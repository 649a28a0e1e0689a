// Package http provides an HTTP-based implementation of yweather.Transport.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/yweather"
)

// DefaultTimeout is the default timeout for HTTP requests.
const DefaultTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 1 << 20

// Ensure Transport implements yweather.Transport at compile time.
var _ yweather.Transport = (*Transport)(nil)

// Transport issues GET requests on their own goroutine and delivers the
// outcome through a callback.
type Transport struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
	userAgent   string
}

// Option configures a Transport.
type Option func(*Transport)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultTimeout (10s) if not specified.
// Ignored when WithClient is used.
func WithTimeout(d time.Duration) Option {
	return func(t *Transport) {
		t.timeout = d
	}
}

// WithClient replaces the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(t *Transport) {
		t.client = c
	}
}

// WithMaxBodySize limits how many bytes of a response body are read.
func WithMaxBodySize(n int64) Option {
	return func(t *Transport) {
		t.maxBodySize = n
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(t *Transport) {
		t.userAgent = ua
	}
}

// NewTransport creates a new HTTP-based Transport.
func NewTransport(opts ...Option) *Transport {
	t := &Transport{
		timeout:     DefaultTimeout,
		maxBodySize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.client == nil {
		t.client = &http.Client{
			Timeout: t.timeout,
		}
	}

	return t
}

// Get starts the request and returns immediately. done runs on the
// request's goroutine.
func (t *Transport) Get(ctx context.Context, url string, done yweather.ResponseFunc) {
	go func() {
		resp, err := t.do(ctx, url)
		if err != nil {
			done(nil, err)
			return
		}
		done(resp, nil)
	}()
}

func (t *Transport) do(ctx context.Context, url string) (*yweather.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading body of %s: %w", url, err)
	}

	return &yweather.Response{
		StatusCode: resp.StatusCode,
		Body:       string(body),
	}, nil
}
