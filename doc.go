// Package vp8ldsp provides the numeric inner loops of a VP8L (WebP lossless)
// encoder: the reversible pixel-level color decorrelation transforms and the
// histogram accumulation primitive used by the entropy-cost estimator.
//
// The three bulk operations — SubtractGreen, TransformColor and
// HistogramAdd — are invoked once per pixel or per histogram bucket across an
// entire image, so each has a vectorized fast path (SSE2/AVX2 on amd64,
// selected at init time) and a scalar reference implementation that doubles
// as the remainder handler and, on other platforms, as the sole path.
//
// All operations work in place on caller-owned buffers and perform no
// allocation or I/O. Backward-reference matching, Huffman tree construction,
// bitstream emission and transform-mode selection are the caller's business;
// this package only supplies the arithmetic they sit on.
//
// The transforms follow the exact fixed-point arithmetic of the VP8L format
// (sign-extended multipliers pre-shifted by 5 bits combined with a 16-bit
// multiply-high), so their output is bit-compatible with the inverse
// transforms applied at decode time.
package vp8ldsp
