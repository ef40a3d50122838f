package lossless

import (
	"github.com/deepteams/vp8ldsp/internal/dsp"
)

// VP8L histograms for lossless encoding.
//
// Histograms collect per-symbol frequency counts for the five VP8L symbol
// streams (green+length, red, blue, alpha, distance). The encoder builds
// one histogram per tile and repeatedly merges them while estimating
// entropy-coding cost, so the accumulate operation is a hot loop and is
// dispatched through the dsp vector-add primitives.
//
// Reference: libwebp/src/enc/histogram_enc.c

// Histogram holds per-symbol frequency counts for the five VP8L symbol
// streams. Every counter stays well below 2^28 (it derives from the pixel
// count of a bounded image), so counter sums cannot overflow.
type Histogram struct {
	Literal  []uint32 // green/length/cache indices
	Red      [NumLiteralCodes]uint32
	Blue     [NumLiteralCodes]uint32
	Alpha    [NumLiteralCodes]uint32
	Distance [NumDistanceCodes]uint32

	paletteCodeBits int // color cache bits (0 = disabled)
}

// HistogramNumCodes returns the literal alphabet size for the given cache bits.
func HistogramNumCodes(cacheBits int) int {
	n := NumLiteralCodes + NumLengthCodes
	if cacheBits > 0 {
		n += 1 << cacheBits
	}
	return n
}

// NewHistogram allocates a Histogram with the correct literal slice size.
func NewHistogram(cacheBits int) *Histogram {
	return &Histogram{
		paletteCodeBits: cacheBits,
		Literal:         make([]uint32, HistogramNumCodes(cacheBits)),
	}
}

// PaletteCodeBits returns the color cache bits this histogram was sized for.
func (h *Histogram) PaletteCodeBits() int {
	return h.paletteCodeBits
}

// Clear zeros out all frequency arrays.
func (h *Histogram) Clear() {
	for i := range h.Literal {
		h.Literal[i] = 0
	}
	h.Red = [NumLiteralCodes]uint32{}
	h.Blue = [NumLiteralCodes]uint32{}
	h.Alpha = [NumLiteralCodes]uint32{}
	h.Distance = [NumDistanceCodes]uint32{}
}

// AddSinglePixel accumulates a literal ARGB pixel into the four channel
// arrays. The green channel indexes the literal stream.
func (h *Histogram) AddSinglePixel(argb uint32) {
	h.Alpha[(argb>>24)&0xff]++
	h.Red[(argb>>16)&0xff]++
	h.Literal[(argb>>8)&0xff]++
	h.Blue[argb&0xff]++
}

// HistogramAdd sets every counter in out to the sum of the corresponding
// counters in a and b: out may alias a or b (accumulate in place). The inputs
// must share the same paletteCodeBits; a shorter literal array in out panics
// on index, which is a caller contract violation, not a recoverable error.
func HistogramAdd(a, b, out *Histogram) {
	literalSize := HistogramNumCodes(a.paletteCodeBits)

	switch {
	case out == b:
		dsp.AddVectorEq(a.Literal, out.Literal, NumLiteralCodes)
		dsp.AddVectorEq(a.Red[:], out.Red[:], NumLiteralCodes)
		dsp.AddVectorEq(a.Blue[:], out.Blue[:], NumLiteralCodes)
		dsp.AddVectorEq(a.Alpha[:], out.Alpha[:], NumLiteralCodes)
	case out == a:
		dsp.AddVectorEq(b.Literal, out.Literal, NumLiteralCodes)
		dsp.AddVectorEq(b.Red[:], out.Red[:], NumLiteralCodes)
		dsp.AddVectorEq(b.Blue[:], out.Blue[:], NumLiteralCodes)
		dsp.AddVectorEq(b.Alpha[:], out.Alpha[:], NumLiteralCodes)
	default:
		dsp.AddVector(a.Literal, b.Literal, out.Literal, NumLiteralCodes)
		dsp.AddVector(a.Red[:], b.Red[:], out.Red[:], NumLiteralCodes)
		dsp.AddVector(a.Blue[:], b.Blue[:], out.Blue[:], NumLiteralCodes)
		dsp.AddVector(a.Alpha[:], b.Alpha[:], out.Alpha[:], NumLiteralCodes)
	}

	// The cache-dependent literal suffix and the small distance array are
	// always summed with plain scalar loops.
	for i := NumLiteralCodes; i < literalSize; i++ {
		out.Literal[i] = a.Literal[i] + b.Literal[i]
	}
	for i := 0; i < NumDistanceCodes; i++ {
		out.Distance[i] = a.Distance[i] + b.Distance[i]
	}
}
