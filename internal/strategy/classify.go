package strategy

import (
	"math"
	"time"

	"RSISentinel/internal/model"
)

// Default alert thresholds.
const (
	DefaultOverbought  = 80.0
	DefaultExitShort   = 40.0
	DefaultOversold    = 20.0
	DefaultLockProfits = 60.0
)

// rule pairs a threshold predicate with the signal it produces.
type rule struct {
	match   func(rsi float64) bool
	kind    model.SignalKind
	message string
}

// Classifier maps a single RSI value to a signal using a fixed-priority
// rule table. Rules are checked strictly in table order and the first
// match wins; the bands overlap, so order is the tie-break. With default
// thresholds the oversold rule sits below the exit-short rule and is
// shadowed by it; that precedence is intentional and must not be
// reordered.
//
// Each call is independent: no hysteresis, no cooldown, so a persisting
// condition fires again every cycle.
type Classifier struct {
	rules []rule
}

// NewClassifier builds the rule table in priority order.
func NewClassifier(overbought, exitShort, oversold, lockProfits float64) *Classifier {
	return &Classifier{rules: []rule{
		{
			match:   func(rsi float64) bool { return rsi >= overbought },
			kind:    model.SignalOverboughtStopBuying,
			message: "Stop Buying. Overbought condition (Short Strategy).",
		},
		{
			match:   func(rsi float64) bool { return rsi <= exitShort },
			kind:    model.SignalExitShort,
			message: "Sell Signal. Exit short position (Short Strategy).",
		},
		{
			match:   func(rsi float64) bool { return rsi <= oversold },
			kind:    model.SignalOversoldBuy,
			message: "Buy Signal. Oversold condition (Long Strategy).",
		},
		{
			match:   func(rsi float64) bool { return rsi >= lockProfits },
			kind:    model.SignalLockProfits,
			message: "Sell Signal. Lock profits (Long Strategy).",
		},
	}}
}

// NewDefaultClassifier builds a classifier with the stock 80/40/20/60 bands.
func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultOverbought, DefaultExitShort, DefaultOversold, DefaultLockProfits)
}

func (c *Classifier) firstMatch(rsi float64) (rule, bool) {
	if math.IsNaN(rsi) {
		// Warm-up value, never alerts.
		return rule{}, false
	}
	for _, r := range c.rules {
		if r.match(rsi) {
			return r, true
		}
	}
	return rule{}, false
}

// Classify returns the signal kind for a single RSI value.
func (c *Classifier) Classify(rsi float64) model.SignalKind {
	r, ok := c.firstMatch(rsi)
	if !ok {
		return model.SignalNone
	}
	return r.kind
}

// Evaluate classifies the latest RSI and builds the alert to surface.
// Returns nil when no rule fires.
func (c *Classifier) Evaluate(symbol string, rsi, price float64, at time.Time) *model.Alert {
	r, ok := c.firstMatch(rsi)
	if !ok {
		return nil
	}
	return &model.Alert{
		Symbol:  symbol,
		Kind:    r.kind,
		RSI:     rsi,
		Price:   price,
		Time:    at,
		Message: r.message,
	}
}
