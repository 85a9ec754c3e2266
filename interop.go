package fp17

import "golang.org/x/image/math/fixed"

// Conversions between [Fixed] and the [golang.org/x/image/math/fixed]
// types, which are what most Go font and vector packages expect.

// Converts to a 26.6 value, rounding half up when the lower
// 8 fractional bits can't be kept. Always representable.
func (self Fixed) ToInt26_6() fixed.Int26_6 {
	const shift = FracBits - 6
	return fixed.Int26_6((int64(self) + 1 << (shift - 1)) >> shift)
}

// Converts from a 26.6 value. The conversion is exact for values
// within [MinFloat64] and [MaxFloat64], and wraps otherwise.
func FromInt26_6(value fixed.Int26_6) Fixed {
	return Fixed(value << (FracBits - 6))
}

// Converts to a 52.12 value, rounding half up when the lower
// 2 fractional bits can't be kept. Always representable.
func (self Fixed) ToInt52_12() fixed.Int52_12 {
	const shift = FracBits - 12
	return fixed.Int52_12((int64(self) + 1 << (shift - 1)) >> shift)
}

// Converts from a 52.12 value. The conversion is exact for values
// within [MinFloat64] and [MaxFloat64], and wraps otherwise.
func FromInt52_12(value fixed.Int52_12) Fixed {
	return Fixed(value << (FracBits - 12))
}
