package mocks

import "tasktracker/infras/otel"

type scopeImpl struct {
	recorder *Recorder
}

// End implements otel.Scope.
func (s *scopeImpl) End() {}

// SetAttribute implements otel.Scope.
func (s *scopeImpl) SetAttribute(_ string, _ any) {}

// SetAttributes implements otel.Scope.
func (s *scopeImpl) SetAttributes(_ map[string]any) {}

// TraceError implements otel.Scope.
func (s *scopeImpl) TraceError(err error) {
	if s.recorder != nil && err != nil {
		s.recorder.recordError(err)
	}
}

// TraceIfError implements otel.Scope.
func (s *scopeImpl) TraceIfError(err error) {
	s.TraceError(err)
}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
