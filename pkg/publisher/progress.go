package publisher

import "github.com/albumpress/cli/pkg/model"

// StepWarning marks a progress event reporting a non-fatal problem.
const StepWarning = "warning"

// Sink receives advisory progress events during a live run. Implementations
// must not block; events never affect control flow.
type Sink interface {
	Emit(event model.ProgressEvent)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(model.ProgressEvent)

func (f SinkFunc) Emit(event model.ProgressEvent) {
	f(event)
}
