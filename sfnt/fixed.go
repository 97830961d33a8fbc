package sfnt

import "golang.org/x/image/math/fixed"

// Fixed16_16 is an OpenType 16.16 signed fixed-point value: a signed
// 32-bit integer whose low 16 bits are the fractional part (divide by
// 65536.0 to get the float value). Used for variation axis bounds and
// avar mappings.
type Fixed16_16 int32

// Float64 converts a 16.16 fixed-point value to a float64.
func (f Fixed16_16) Float64() float64 {
	return float64(f) / 65536.0
}

// Fixed16_16FromFloat64 converts a float64 to its nearest 16.16
// representation.
func Fixed16_16FromFloat64(v float64) Fixed16_16 {
	return Fixed16_16(v * 65536.0)
}

// Int26_6 is re-exported from golang.org/x/image/math/fixed: the 26.6
// signed fixed-point representation (× 64) used at the shaping-engine and
// glyph-cache boundaries, matching rendering-grid quantization.
type Int26_6 = fixed.Int26_6

// ToInt26_6 rounds a pixel size to its 26.6 fixed-point representation,
// the same quantization the glyph cache key and rasterizer boundary use.
func ToInt26_6(px float64) Int26_6 {
	return fixed.Int26_6(px*64 + 0.5)
}
