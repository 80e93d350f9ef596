package calculator

import (
	"errors"
	"math"
	"testing"
)

func TestSeries_ConstantPrices(t *testing.T) {
	closes := []float64{42, 42, 42, 42, 42, 42, 42, 42}
	rsi, err := Series(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rsi) != len(closes) {
		t.Fatalf("length mismatch: got %d, want %d", len(rsi), len(closes))
	}
	if !math.IsNaN(rsi[0]) {
		t.Errorf("index 0 should be NaN, got %v", rsi[0])
	}
	for i := 1; i < len(rsi); i++ {
		if rsi[i] != 50.0 {
			t.Errorf("flat series index %d: got %v, want 50", i, rsi[i])
		}
	}
}

func TestSeries_StrictlyIncreasing(t *testing.T) {
	closes := []float64{1, 2, 3, 5, 8, 13, 21}
	rsi, err := Series(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(rsi); i++ {
		if rsi[i] != 100.0 {
			t.Errorf("rising series index %d: got %v, want 100", i, rsi[i])
		}
	}
}

func TestSeries_StrictlyDecreasing(t *testing.T) {
	closes := []float64{100, 90, 85, 70, 60, 55}
	rsi, err := Series(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(rsi); i++ {
		if rsi[i] != 0.0 {
			t.Errorf("falling series index %d: got %v, want 0", i, rsi[i])
		}
	}
}

func TestSeries_RangeBound(t *testing.T) {
	closes := []float64{10, 12, 9, 9, 15, 14, 14.5, 3, 3.01, 50, 49.99, 7}
	for _, window := range []int{1, 2, 3, 14, 100} {
		rsi, err := Series(closes, window)
		if err != nil {
			t.Fatalf("window %d: unexpected error: %v", window, err)
		}
		for i := 1; i < len(rsi); i++ {
			if rsi[i] < 0 || rsi[i] > 100 {
				t.Errorf("window %d index %d: %v out of [0,100]", window, i, rsi[i])
			}
		}
	}
}

func TestSeries_EmptyInput(t *testing.T) {
	if _, err := Series(nil, 14); !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got %v", err)
	}
	if _, err := Series([]float64{}, 14); !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got %v", err)
	}
}

func TestSeries_SingleSample(t *testing.T) {
	rsi, err := Series([]float64{42}, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rsi) != 1 || !math.IsNaN(rsi[0]) {
		t.Errorf("expected single NaN entry, got %v", rsi)
	}
}

func TestSeries_InvalidWindow(t *testing.T) {
	for _, window := range []int{0, -1} {
		if _, err := Series([]float64{1, 2, 3}, window); err == nil {
			t.Errorf("window %d: expected error", window)
		}
	}
}

// Pinned regression fixture: closes [10,12,11,13,9] with window 14 yields
// deltas [_, +2, -1, +2, -4] averaged over the i available deltas. Expected
// values replicate the engine's arithmetic order so the comparison is exact.
func TestSeries_ShrinkingWindowFixture(t *testing.T) {
	closes := []float64{10, 12, 11, 13, 9}
	rsi, err := Series(closes, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rsi) != 5 {
		t.Fatalf("length: got %d, want 5", len(rsi))
	}
	if !math.IsNaN(rsi[0]) {
		t.Errorf("index 0 should be NaN, got %v", rsi[0])
	}

	expect := func(gainSum, lossSum, n float64) float64 {
		avgGain := gainSum / n
		avgLoss := lossSum / n
		if avgLoss == 0 {
			return 100.0
		}
		rs := avgGain / avgLoss
		return 100.0 - 100.0/(1.0+rs)
	}

	wants := []float64{
		expect(2, 0, 1), // gain only -> 100
		expect(2, 1, 2),
		expect(4, 1, 3),
		expect(4, 5, 4),
	}
	for i, want := range wants {
		if got := rsi[i+1]; got != want {
			t.Errorf("index %d: got %v, want %v", i+1, got, want)
		}
	}

	last := rsi[len(rsi)-1]
	if !(last > 0 && last < 100) {
		t.Errorf("final RSI should be strictly inside (0,100), got %v", last)
	}
}

// Window eviction: with window 2 the oldest delta leaves the average once
// a third delta arrives.
func TestSeries_WindowEviction(t *testing.T) {
	closes := []float64{1, 2, 3, 2, 2}
	rsi, err := Series(closes, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wants := []float64{100, 100, 50, 0}
	for i, want := range wants {
		if got := rsi[i+1]; got != want {
			t.Errorf("index %d: got %v, want %v", i+1, got, want)
		}
	}
}

func TestLatest(t *testing.T) {
	got, err := Latest([]float64{1, 2, 3}, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 100.0 {
		t.Errorf("got %v, want 100", got)
	}

	got, err = Latest([]float64{42}, 14)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !math.IsNaN(got) {
		t.Errorf("single sample: expected NaN, got %v", got)
	}

	if _, err := Latest(nil, 14); !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("expected ErrInsufficientHistory, got %v", err)
	}
}
