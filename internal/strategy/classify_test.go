package strategy

import (
	"math"
	"testing"
	"time"

	"RSISentinel/internal/model"
)

func TestClassify_Scenarios(t *testing.T) {
	c := NewDefaultClassifier()
	tests := []struct {
		rsi  float64
		want model.SignalKind
	}{
		{85.0, model.SignalOverboughtStopBuying},
		{80.0, model.SignalOverboughtStopBuying},
		{100.0, model.SignalOverboughtStopBuying},
		{20.0, model.SignalExitShort}, // not OversoldBuy: exit-short rule fires first
		{19.9, model.SignalExitShort},
		{40.0, model.SignalExitShort},
		{0.0, model.SignalExitShort},
		{65.0, model.SignalLockProfits},
		{60.0, model.SignalLockProfits},
		{79.9, model.SignalLockProfits},
		{50.0, model.SignalNone},
		{40.1, model.SignalNone},
		{59.9, model.SignalNone},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.rsi); got != tt.want {
			t.Errorf("Classify(%.1f): got %s, want %s", tt.rsi, got, tt.want)
		}
	}
}

func TestClassify_NaN(t *testing.T) {
	c := NewDefaultClassifier()
	if got := c.Classify(math.NaN()); got != model.SignalNone {
		t.Errorf("NaN should classify as none, got %s", got)
	}
	if alert := c.Evaluate("BTCUSDT", math.NaN(), 100, time.Now()); alert != nil {
		t.Errorf("NaN should not produce an alert, got %+v", alert)
	}
}

// The ≤20 oversold rule is shadowed by the ≤40 exit-short rule under the
// default bands. That is the documented precedence; this pin keeps anyone
// from "fixing" it by reordering the table.
func TestClassify_OversoldShadowedByExitShort(t *testing.T) {
	c := NewDefaultClassifier()
	for rsi := 0.0; rsi <= 100.0; rsi += 0.1 {
		if got := c.Classify(rsi); got == model.SignalOversoldBuy {
			t.Fatalf("Classify(%.1f) returned OversoldBuy; rule should be shadowed", rsi)
		}
	}
}

func TestEvaluate_BuildsAlert(t *testing.T) {
	c := NewDefaultClassifier()
	at := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	alert := c.Evaluate("BTCUSDT", 85.5, 64123.4, at)
	if alert == nil {
		t.Fatal("expected alert for RSI 85.5")
	}
	if alert.Kind != model.SignalOverboughtStopBuying {
		t.Errorf("kind: got %s", alert.Kind)
	}
	if alert.Symbol != "BTCUSDT" || alert.RSI != 85.5 || alert.Price != 64123.4 || !alert.Time.Equal(at) {
		t.Errorf("alert fields not carried through: %+v", alert)
	}
	if alert.Message != "Stop Buying. Overbought condition (Short Strategy)." {
		t.Errorf("message: got %q", alert.Message)
	}

	if alert := c.Evaluate("BTCUSDT", 50.0, 64123.4, at); alert != nil {
		t.Errorf("neutral RSI should not alert, got %+v", alert)
	}
}

func TestClassify_CustomThresholds(t *testing.T) {
	c := NewClassifier(90, 30, 10, 70)
	tests := []struct {
		rsi  float64
		want model.SignalKind
	}{
		{85.0, model.SignalLockProfits},
		{95.0, model.SignalOverboughtStopBuying},
		{25.0, model.SignalExitShort},
		{50.0, model.SignalNone},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.rsi); got != tt.want {
			t.Errorf("Classify(%.1f): got %s, want %s", tt.rsi, got, tt.want)
		}
	}
}
