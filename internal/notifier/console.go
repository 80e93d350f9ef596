package notifier

import (
	"context"
	"fmt"
	"io"
	"os"
)

// ConsoleNotifier writes alerts to a terminal stream.
type ConsoleNotifier struct {
	Out io.Writer
}

// NewConsoleNotifier creates a notifier writing to stdout.
func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{Out: os.Stdout}
}

func (c *ConsoleNotifier) Name() string { return "console" }

func (c *ConsoleNotifier) Send(_ context.Context, text string) error {
	_, err := fmt.Fprintln(c.Out, text)
	return err
}
