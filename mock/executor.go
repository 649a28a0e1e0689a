package mock

import "github.com/fwojciec/yweather"

var (
	_ yweather.Executor = (*Executor)(nil)
	_ yweather.Executor = InlineExecutor{}
)

// Executor is a mock implementation of yweather.Executor.
type Executor struct {
	GoFn func(task func())
}

func (e *Executor) Go(task func()) {
	e.GoFn(task)
}

// InlineExecutor runs each task on the calling goroutine, making
// asynchronous pipelines deterministic in tests.
type InlineExecutor struct{}

func (InlineExecutor) Go(task func()) {
	task()
}
