package yweather

import "context"

// Response is the outcome of a GET request that reached the server.
type Response struct {
	StatusCode int
	Body       string
}

// ResponseFunc receives the outcome of an asynchronous request.
// Exactly one of resp and err is non-nil.
type ResponseFunc func(resp *Response, err error)

// Transport issues HTTP GET requests and delivers the outcome asynchronously.
type Transport interface {
	// Get starts a GET request for url and returns immediately.
	// done is called exactly once, on a goroutine owned by the transport,
	// with either the response (any status code) or the error that
	// prevented one. Canceling ctx aborts the request.
	Get(ctx context.Context, url string, done ResponseFunc)
}

// Executor runs units of work off the calling goroutine.
type Executor interface {
	// Go schedules task for execution. It may block while the executor
	// is at capacity but never runs task on the caller's goroutine.
	Go(task func())
}
