// Package pool provides a bounded worker pool implementing yweather.Executor.
package pool

import (
	"sync/atomic"

	"github.com/fwojciec/yweather"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of tasks run at once when no limit is given.
const DefaultConcurrency = 4

var _ yweather.Executor = (*Executor)(nil)

// Executor runs tasks on at most a fixed number of goroutines.
// Go blocks while all slots are busy.
type Executor struct {
	g       errgroup.Group
	running atomic.Int64
}

// NewExecutor creates an Executor that runs up to concurrency tasks at once.
// A non-positive concurrency uses DefaultConcurrency.
func NewExecutor(concurrency int) *Executor {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	e := &Executor{}
	e.g.SetLimit(concurrency)
	return e
}

// Go schedules task on a pool goroutine.
func (e *Executor) Go(task func()) {
	e.g.Go(func() error {
		e.running.Add(1)
		defer e.running.Add(-1)
		task()
		return nil
	})
}

// Running returns the number of tasks currently executing.
func (e *Executor) Running() int {
	return int(e.running.Load())
}

// Wait blocks until every scheduled task has returned.
func (e *Executor) Wait() {
	_ = e.g.Wait()
}
