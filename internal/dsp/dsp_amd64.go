//go:build amd64 && !noasm

package dsp

func init() {
	// Override pure-Go implementations with SSE2 assembly.
	// This init() runs after dsp.go's init() due to alphabetical ordering.
	SubtractGreen = subtractGreenSSE2
	TransformColor = transformColorSSE2
	AddVector = addVectorSSE2
	AddVectorEq = addVectorEqSSE2

	// Override with AVX2 where available.
	if hasAVX2 {
		SubtractGreen = subtractGreenAVX2
		AddVector = addVectorAVX2
		AddVectorEq = addVectorEqAVX2
	}
}

// --- Assembly kernel stubs ---
// Each kernel processes whole vector groups only; the Go wrappers below run
// the kernel over the aligned prefix and finish the tail with the scalar
// reference.

//go:noescape
func subtractGreenKernelSSE2(argb []uint32, numPixels int) // numPixels % 4 == 0

//go:noescape
func transformColorKernelSSE2(argb []uint32, numPixels int, multsRB, multsB2 *[8]int16) // numPixels % 4 == 0

//go:noescape
func addVectorKernelSSE2(a, b, out []uint32, size int) // size % 16 == 0

//go:noescape
func addVectorEqKernelSSE2(a, out []uint32, size int) // size % 16 == 0

//go:noescape
func subtractGreenKernelAVX2(argb []uint32, numPixels int) // numPixels % 8 == 0

//go:noescape
func addVectorKernelAVX2(a, b, out []uint32, size int) // size % 16 == 0

//go:noescape
func addVectorEqKernelAVX2(a, out []uint32, size int) // size % 16 == 0

// --- Dispatch wrappers ---

func subtractGreenSSE2(argb []uint32, numPixels int) {
	n := numPixels &^ 3
	if n > 0 {
		subtractGreenKernelSSE2(argb, n)
	}
	subtractGreenGo(argb[n:numPixels], numPixels-n)
}

func subtractGreenAVX2(argb []uint32, numPixels int) {
	n := numPixels &^ 7
	if n > 0 {
		subtractGreenKernelAVX2(argb, n)
	}
	subtractGreenGo(argb[n:numPixels], numPixels-n)
}

// cst sign-extends a multiplier byte and pre-shifts it by 5, yielding the
// 16-bit fixed-point constant fed to the PMULHW multiply-high step:
// PMULHW(x<<8, cst(m)) == (int8(m)*x)>>5 for any 8-bit x.
func cst(v uint8) int16 {
	return (int16(v) << 8) >> 5
}

func transformColorSSE2(m *Multipliers, argb []uint32, numPixels int) {
	gr := cst(m.GreenToRed)
	gb := cst(m.GreenToBlue)
	rb := cst(m.RedToBlue)
	// Word 0 is the blue/green lane, word 1 the alpha/red lane of each pixel.
	multsRB := [8]int16{gb, gr, gb, gr, gb, gr, gb, gr}
	multsB2 := [8]int16{0, rb, 0, rb, 0, rb, 0, rb}

	n := numPixels &^ 3
	if n > 0 {
		transformColorKernelSSE2(argb, n, &multsRB, &multsB2)
	}
	transformColorGo(m, argb[n:numPixels], numPixels-n)
}

func addVectorSSE2(a, b, out []uint32, size int) {
	n := size &^ (vecAddChunk - 1)
	if n > 0 {
		addVectorKernelSSE2(a, b, out, n)
	}
	addVectorGo(a[n:], b[n:], out[n:], size-n)
}

func addVectorEqSSE2(a, out []uint32, size int) {
	n := size &^ (vecAddChunk - 1)
	if n > 0 {
		addVectorEqKernelSSE2(a, out, n)
	}
	addVectorEqGo(a[n:], out[n:], size-n)
}

func addVectorAVX2(a, b, out []uint32, size int) {
	n := size &^ (vecAddChunk - 1)
	if n > 0 {
		addVectorKernelAVX2(a, b, out, n)
	}
	addVectorGo(a[n:], b[n:], out[n:], size-n)
}

func addVectorEqAVX2(a, out []uint32, size int) {
	n := size &^ (vecAddChunk - 1)
	if n > 0 {
		addVectorEqKernelAVX2(a, out, n)
	}
	addVectorEqGo(a[n:], out[n:], size-n)
}
