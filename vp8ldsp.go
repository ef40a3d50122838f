package vp8ldsp

import (
	"github.com/deepteams/vp8ldsp/internal/dsp"
	"github.com/deepteams/vp8ldsp/internal/lossless"
)

// Multipliers holds the three color-transform coefficients (green-to-red,
// green-to-blue, red-to-blue) chosen per image block by the mode selector.
// Each is the raw wire byte, sign-extended to a signed 8-bit value at use.
type Multipliers = dsp.Multipliers

// Histogram holds per-symbol frequency counts for the five VP8L symbol
// streams (green+length, red, blue, alpha, distance).
type Histogram = lossless.Histogram

// NewHistogram allocates a histogram sized for the given color-cache bits.
func NewHistogram(cacheBits int) *Histogram {
	return lossless.NewHistogram(cacheBits)
}

// SubtractGreen replaces each pixel's red and blue channels with
// (channel - green) mod 256, in place. Alpha and green are unchanged.
func SubtractGreen(argb []uint32, numPixels int) {
	dsp.SubtractGreen(argb, numPixels)
}

// AddGreenToBlueAndRed is the inverse of SubtractGreen.
func AddGreenToBlueAndRed(argb []uint32, numPixels int) {
	dsp.AddGreenToBlueAndRed(argb, numPixels)
}

// TransformColor subtracts the multiplier-predicted red/blue residuals from
// each pixel, in place. Alpha and green are unchanged.
func TransformColor(m *Multipliers, argb []uint32, numPixels int) {
	dsp.TransformColor(m, argb, numPixels)
}

// TransformColorInverse is the inverse of TransformColor.
func TransformColorInverse(m *Multipliers, argb []uint32, numPixels int) {
	dsp.TransformColorInverse(m, argb, numPixels)
}

// HistogramAdd sets every counter of out to the sum of the corresponding
// counters of a and b. out may be a or b (accumulate in place). The inputs
// must share the same cache-bits parameter.
func HistogramAdd(a, b, out *Histogram) {
	lossless.HistogramAdd(a, b, out)
}

// EstimateBits returns the estimated entropy-coding cost of h, in bits.
func EstimateBits(h *Histogram) float64 {
	return lossless.EstimateBits(h)
}

// HasAVX2 reports whether the AVX2 fast paths are in use.
func HasAVX2() bool {
	return dsp.HasAVX2()
}
