package model

import "time"

// SignalKind identifies the classification outcome of one evaluation.
type SignalKind string

const (
	SignalNone                 SignalKind = "NONE"
	SignalOverboughtStopBuying SignalKind = "OVERBOUGHT_STOP_BUYING"
	SignalExitShort            SignalKind = "EXIT_SHORT"
	SignalOversoldBuy          SignalKind = "OVERSOLD_BUY"
	SignalLockProfits          SignalKind = "LOCK_PROFITS"
)

// Alert is the notification produced when a threshold rule fires.
// Created fresh each cycle and handed straight to the sinks.
type Alert struct {
	Symbol  string
	Kind    SignalKind
	RSI     float64
	Price   float64
	Time    time.Time
	Message string
}

// Evaluation is the per-cycle snapshot of the latest price and RSI.
type Evaluation struct {
	Symbol  string
	Time    time.Time
	Price   float64
	RSI     float64
	Samples int
	Signal  SignalKind
}
