package lossless

import "math"

// Entropy-cost estimation over histogram populations.
// This is the consumer of the accumulate primitive: merged histograms are
// scored by their estimated entropy-coding cost.
//
// Reference: libwebp/src/enc/histogram_enc.c (VP8LBitsEntropy).

// bitEntropy holds intermediate entropy calculation results.
type bitEntropy struct {
	entropy     float64
	sum         uint32
	nonzeros    int
	maxVal      uint32
	nonzeroCode uint32
}

// fastSLog2LUTSize is the LUT size for fastSLog2. 4096 entries covers the
// vast majority of histogram count values encountered in practice.
const fastSLog2LUTSize = 4096

// fastSLog2LUT is a precomputed lookup table for v * log2(v).
var fastSLog2LUT [fastSLog2LUTSize]float64

func init() {
	for i := 1; i < fastSLog2LUTSize; i++ {
		fv := float64(i)
		fastSLog2LUT[i] = fv * math.Log2(fv)
	}
}

// fastSLog2 computes v * log2(v) for v > 0, returning 0 for v == 0.
func fastSLog2(v uint32) float64 {
	if v < fastSLog2LUTSize {
		return fastSLog2LUT[v]
	}
	fv := float64(v)
	return fv * math.Log2(fv)
}

// bitsEntropyUnrefined computes the unrefined bit entropy for a population.
func bitsEntropyUnrefined(array []uint32) bitEntropy {
	var be bitEntropy
	for i, v := range array {
		if v != 0 {
			be.sum += v
			be.nonzeroCode = uint32(i)
			be.nonzeros++
			be.entropy += fastSLog2(v)
			if be.maxVal < v {
				be.maxVal = v
			}
		}
	}
	be.entropy = fastSLog2(be.sum) - be.entropy
	return be
}

// bitsEntropyRefine applies heuristic refinement to unrefined entropy.
// This matches libwebp BitsEntropyRefine, adapted to float64.
func bitsEntropyRefine(be *bitEntropy) float64 {
	var mix float64
	if be.nonzeros < 5 {
		if be.nonzeros <= 1 {
			return 0
		}
		if be.nonzeros == 2 {
			return 0.99*float64(be.sum) + 0.01*be.entropy
		}
		if be.nonzeros == 3 {
			mix = 0.95
		} else {
			mix = 0.7
		}
	} else {
		mix = 0.627
	}

	minLimit := float64(2*be.sum - be.maxVal)
	minLimit = mix*minLimit + (1.0-mix)*be.entropy
	if be.entropy < minLimit {
		return minLimit
	}
	return be.entropy
}

// BitsEntropy returns the refined Shannon-like entropy for a symbol population.
func BitsEntropy(array []uint32) float64 {
	be := bitsEntropyUnrefined(array)
	return bitsEntropyRefine(&be)
}

// EstimateBits returns the estimated entropy-coding cost, in bits, of the
// five symbol streams of h.
func EstimateBits(h *Histogram) float64 {
	literalSize := HistogramNumCodes(h.paletteCodeBits)
	return BitsEntropy(h.Literal[:literalSize]) +
		BitsEntropy(h.Red[:]) +
		BitsEntropy(h.Blue[:]) +
		BitsEntropy(h.Alpha[:]) +
		BitsEntropy(h.Distance[:])
}
