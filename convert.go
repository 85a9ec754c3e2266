package fp17

import "math"

import "golang.org/x/exp/constraints"

// Fast conversion from int to [Fixed]. If the int value is not
// representable with a [Fixed], the result wraps around like any
// other integer overflow. If you want to account for overflows,
// check [MinInt] <= value <= [MaxInt].
func FromInt(value int) Fixed { return Fixed(value*Scale) }

// Converts a float64 to the closest Fixed, rounding away from zero
// in case of ties. Doesn't account for NaNs, infinites nor overflows.
func FromFloat64(value float64) Fixed { return FromFloat(value) }

// Generic version of [FromFloat64]. Since any float32 can be
// widened exactly to float64, rounding is the same for both.
func FromFloat[T constraints.Float](value T) Fixed {
	return Fixed(math.Round(float64(value)*Scale))
}

// Conversion is always exact.
func (self Fixed) ToFloat64() float64 { return ToFloat[float64](self) }

// Conversion may lose precision for values with more than
// 24 significant bits.
func (self Fixed) ToFloat32() float32 { return ToFloat[float32](self) }

// Generic version of [Fixed.ToFloat64]() and [Fixed.ToFloat32]().
func ToFloat[T constraints.Float](value Fixed) T {
	return T(value)/Scale
}
