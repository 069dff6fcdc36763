package things

import (
	"context"
	"fmt"
)

// Sink opens a URL with the operating system. Implementations return once the
// open request is handed off; they do not wait for Things to create the task.
type Sink interface {
	Open(ctx context.Context, uri string) error
}

// Dispatcher sends payloads to Things through a Sink.
type Dispatcher struct {
	sink Sink
}

// NewDispatcher creates a Dispatcher that opens URLs with sink.
func NewDispatcher(sink Sink) *Dispatcher {
	return &Dispatcher{sink: sink}
}

// Dispatch serializes p and opens the resulting URL.
func (d *Dispatcher) Dispatch(ctx context.Context, p Payload) error {
	if err := d.sink.Open(ctx, URL(p)); err != nil {
		return fmt.Errorf("open things url for %q: %w", p.Title, err)
	}
	return nil
}
