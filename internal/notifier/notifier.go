package notifier

import "context"

// Notifier is a notification sink. Send delivers one formatted message;
// no acknowledgment beyond the error is expected.
type Notifier interface {
	Send(ctx context.Context, text string) error
	Name() string
}
