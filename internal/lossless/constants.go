package lossless

// VP8L alphabet constants derived from libwebp/src/webp/format_constants.h.

const (
	// NumLiteralCodes is the number of literal codes (256 byte values).
	NumLiteralCodes = 256
	// NumLengthCodes is the number of length prefix codes.
	NumLengthCodes = 24
	// NumDistanceCodes is the number of distance prefix codes.
	NumDistanceCodes = 40

	// MaxCacheBits is the maximum color cache bit size.
	MaxCacheBits = 11
	// MinCacheBits is the minimum color cache bit size (0 = disabled).
	MinCacheBits = 0
)
