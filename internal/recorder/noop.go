package recorder

import "RSISentinel/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordEvaluation(_ *model.Evaluation) error { return nil }
func (n *NoopRecorder) RecordAlert(_ *model.Alert) error           { return nil }
func (n *NoopRecorder) Close() error                               { return nil }
