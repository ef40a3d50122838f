package dsp

// Transform function variables for dispatch.
// These are set to pure-Go implementations by Init() and can be overridden
// by platform-specific SIMD implementations.
var (
	// SubtractGreen subtracts the green channel from red and blue, in place.
	SubtractGreen func(argb []uint32, numPixels int)

	// TransformColor applies the forward color-space transform, in place.
	TransformColor func(m *Multipliers, argb []uint32, numPixels int)

	// AddVector computes out[i] = a[i] + b[i] for i < size.
	AddVector func(a, b, out []uint32, size int)

	// AddVectorEq computes out[i] += a[i] for i < size.
	AddVectorEq func(a, out []uint32, size int)
)

// Init initialises all function pointers to their pure-Go implementations.
// This must be called before any DSP functions are used.
func Init() {
	SubtractGreen = subtractGreenGo
	TransformColor = transformColorGo
	AddVector = addVectorGo
	AddVectorEq = addVectorEqGo
}

func init() {
	Init()
}
