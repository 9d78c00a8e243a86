package mocks

import (
	"context"
	"sync"
	"tasktracker/infras/otel"
)

// Recorder is an otel.Otel that keeps span names and traced errors in memory.
type Recorder struct {
	mu     sync.Mutex
	spans  []string
	errors []error
}

// NewScope implements otel.Otel.
func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	r.mu.Lock()
	r.spans = append(r.spans, spanName)
	r.mu.Unlock()

	return ctx, &scopeImpl{recorder: r}
}

// Shutdown implements otel.Otel.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

func (r *Recorder) Spans() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.spans...)
}

func (r *Recorder) Errors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errors...)
}

func (r *Recorder) recordError(err error) {
	r.mu.Lock()
	r.errors = append(r.errors, err)
	r.mu.Unlock()
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func NewOtel() otel.Otel {
	return NewRecorder()
}
