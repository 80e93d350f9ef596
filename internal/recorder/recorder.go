package recorder

import "RSISentinel/internal/model"

// Recorder persists evaluation and alert history for later analysis.
// The polling loop only ever writes; nothing in the core reads it back.
type Recorder interface {
	RecordEvaluation(ev *model.Evaluation) error
	RecordAlert(a *model.Alert) error
	Close() error
}
