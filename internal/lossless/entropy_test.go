package lossless

import (
	"math"
	"math/rand"
	"testing"
)

func TestBitsEntropyDegenerate(t *testing.T) {
	if got := BitsEntropy(nil); got != 0 {
		t.Fatalf("empty population: got %v, want 0", got)
	}
	if got := BitsEntropy([]uint32{0, 0, 0}); got != 0 {
		t.Fatalf("all-zero population: got %v, want 0", got)
	}
	if got := BitsEntropy([]uint32{0, 1000, 0}); got != 0 {
		t.Fatalf("single symbol: got %v, want 0", got)
	}
}

func TestBitsEntropyTwoSymbols(t *testing.T) {
	// sum=4, unrefined entropy = slog2(4) - 2*slog2(2) = 8 - 4 = 4,
	// refined = 0.99*4 + 0.01*4 = 4.
	got := BitsEntropy([]uint32{2, 0, 2})
	if math.Abs(got-4.0) > 1e-9 {
		t.Fatalf("got %v, want 4.0", got)
	}
}

func TestBitsEntropyUniform(t *testing.T) {
	// 256 symbols with count 1: slog2(256) = 2048, per-symbol terms are 0,
	// and the refinement lower bound does not bind.
	pop := make([]uint32, 256)
	for i := range pop {
		pop[i] = 1
	}
	got := BitsEntropy(pop)
	if math.Abs(got-2048.0) > 1e-9 {
		t.Fatalf("got %v, want 2048.0", got)
	}
}

func TestBitsEntropyScalesWithSpread(t *testing.T) {
	// A concentrated population must cost fewer bits than a spread one
	// with the same total.
	concentrated := []uint32{1000, 0, 0, 0, 8, 8, 8, 8}
	spread := []uint32{129, 129, 129, 129, 129, 129, 129, 129}
	if c, s := BitsEntropy(concentrated), BitsEntropy(spread); c >= s {
		t.Fatalf("concentrated %v >= spread %v", c, s)
	}
}

func TestEstimateBits(t *testing.T) {
	if got := EstimateBits(NewHistogram(0)); got != 0 {
		t.Fatalf("empty histogram: got %v, want 0", got)
	}

	rng := rand.New(rand.NewSource(30))
	h := randomHistogram(rng, 4, 64)
	got := EstimateBits(h)
	if math.IsNaN(got) || math.IsInf(got, 0) || got <= 0 {
		t.Fatalf("random histogram: got %v", got)
	}

	// Doubling every counter doubles the population, so the cost at least
	// doubles minus the sub-linear slack of the estimate.
	doubled := NewHistogram(4)
	HistogramAdd(h, h, doubled)
	if got2 := EstimateBits(doubled); got2 <= got {
		t.Fatalf("doubled histogram cost %v not above %v", got2, got)
	}
}

func TestFastSLog2(t *testing.T) {
	for _, v := range []uint32{1, 2, 3, 255, 4095, 4096, 1 << 20} {
		want := float64(v) * math.Log2(float64(v))
		if got := fastSLog2(v); math.Abs(got-want) > 1e-6*want {
			t.Errorf("fastSLog2(%d) = %v, want %v", v, got, want)
		}
	}
	if fastSLog2(0) != 0 {
		t.Errorf("fastSLog2(0) != 0")
	}
}
