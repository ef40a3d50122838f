package dsp

// Element-wise counter addition for histogram accumulation
// (lossless_enc.c VP8LAddVector / VP8LAddVectorEq).
//
// Counters are bounded well below 2^31 by the caller (they derive from pixel
// counts of a bounded image), so the sums cannot wrap.

// vecAddChunk is the SIMD group size in counters. Fixed-length histogram
// arrays are sized as exact multiples of this.
const vecAddChunk = 16

// addVectorGo computes out[i] = a[i] + b[i] for i < size. Pure-Go reference.
func addVectorGo(a, b, out []uint32, size int) {
	for i := 0; i < size; i++ {
		out[i] = a[i] + b[i]
	}
}

// addVectorEqGo computes out[i] += a[i] for i < size. Pure-Go reference.
func addVectorEqGo(a, out []uint32, size int) {
	for i := 0; i < size; i++ {
		out[i] += a[i]
	}
}
