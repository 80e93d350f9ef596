package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"RSISentinel/internal/model"
)

const timeLayout = "2006-01-02 15:04:05"

// FormatAlert renders an alert the way the terminal loop prints it:
// evaluation instant, RSI to two decimals, then the classification message.
func FormatAlert(a *model.Alert) string {
	return fmt.Sprintf("[%s] %s RSI: %.2f - %s",
		a.Time.Format(timeLayout), a.Symbol, a.RSI, a.Message)
}

// FormatStatus renders the latest evaluation for the /status command.
func FormatStatus(ev *model.Evaluation) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n\n", ev.Symbol, ev.Time.Format(timeLayout)))
	b.WriteString(fmt.Sprintf("Price: %.2f\n", ev.Price))
	if math.IsNaN(ev.RSI) {
		b.WriteString(fmt.Sprintf("RSI: warming up (%d samples)\n", ev.Samples))
	} else {
		b.WriteString(fmt.Sprintf("RSI: %.2f (%d samples)\n", ev.RSI, ev.Samples))
	}
	b.WriteString(fmt.Sprintf("Signal: %s\n", ev.Signal))
	return b.String()
}

// FormatSummary renders the periodic activity summary.
func FormatSummary(ev *model.Evaluation, polls, alerts int64) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📅 <b>Daily summary</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Polls run: %d\n", polls))
	b.WriteString(fmt.Sprintf("Alerts sent: %d\n", alerts))
	if ev != nil {
		b.WriteString("\n")
		b.WriteString(FormatStatus(ev))
	}
	return b.String()
}
