package dsp

// VP8L color transforms (batch versions) from lossless.c / lossless_enc.c.
// These operate on slices of ARGB uint32 pixels: bits [31:24] = A,
// [23:16] = R, [15:8] = G, [7:0] = B.

// Multipliers holds the VP8L color-space transform multipliers.
// Each is the raw wire byte; it is sign-extended to int8 at use.
type Multipliers struct {
	GreenToRed  uint8
	GreenToBlue uint8
	RedToBlue   uint8
}

// colorTransformDelta computes (multiplier * int8(value)) >> 5, sign-extending.
// This matches the C ColorTransformDelta(int8_t color_pred, int8_t color) from
// lossless.c where both arguments are int8_t.
func colorTransformDelta(multiplier int8, value int32) int32 {
	return (int32(multiplier) * int32(int8(value))) >> 5
}

// subtractGreenGo subtracts the green channel from both the red and blue
// channels for each pixel, modulo 256 per byte. Pure-Go reference for the
// forward SubtractGreen transform; also the tail handler for the SIMD path.
func subtractGreenGo(argb []uint32, numPixels int) {
	for i := 0; i < numPixels; i++ {
		p := argb[i]
		green := (p >> 8) & 0xff
		r := ((p >> 16) & 0xff) - green
		b := (p & 0xff) - green
		argb[i] = (p & 0xff00ff00) | ((r & 0xff) << 16) | (b & 0xff)
	}
}

// AddGreenToBlueAndRed adds the green channel to both the red and blue
// channels for each pixel. This is the inverse of the SubtractGreen transform.
func AddGreenToBlueAndRed(argb []uint32, numPixels int) {
	for i := 0; i < numPixels; i++ {
		p := argb[i]
		green := (p >> 8) & 0xff
		redBlue := (p & 0x00ff00ff) + (green * 0x00010001)
		redBlue &= 0x00ff00ff
		argb[i] = (p & 0xff00ff00) | redBlue
	}
}

// transformColorGo applies the forward color-space transform in place.
// Pure-Go reference; the exact shift/truncation sequence is a format
// contract shared with TransformColorInverse and the SIMD path, so the
// arithmetic here must not be reordered.
func transformColorGo(m *Multipliers, argb []uint32, numPixels int) {
	for i := 0; i < numPixels; i++ {
		p := argb[i]
		green := int32((p >> 8) & 0xff)
		red := int32((p >> 16) & 0xff)
		blue := int32(p & 0xff)

		newRed := red - colorTransformDelta(int8(m.GreenToRed), green)
		newRed &= 0xff
		newBlue := blue - colorTransformDelta(int8(m.GreenToBlue), green)
		// The blue prediction uses the original red channel, not newRed.
		newBlue -= colorTransformDelta(int8(m.RedToBlue), red)
		newBlue &= 0xff

		argb[i] = (p & 0xff00ff00) | (uint32(newRed) << 16) | uint32(newBlue)
	}
}

// TransformColorInverse applies the inverse color-space transform in place,
// reconstructing the original red and blue channels.
func TransformColorInverse(m *Multipliers, argb []uint32, numPixels int) {
	for i := 0; i < numPixels; i++ {
		p := argb[i]
		green := int32((p >> 8) & 0xff)
		red := int32((p >> 16) & 0xff)
		blue := int32(p & 0xff)

		red += colorTransformDelta(int8(m.GreenToRed), green)
		red &= 0xff
		blue += colorTransformDelta(int8(m.GreenToBlue), green)
		blue += colorTransformDelta(int8(m.RedToBlue), red)
		blue &= 0xff

		argb[i] = (p & 0xff00ff00) | (uint32(red) << 16) | uint32(blue)
	}
}
