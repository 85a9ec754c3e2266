package fp17

import "strconv"
import "strings"

// Fixed point type to represent fractional values without floats.
//
// 17 bits represent the integer part of the value (sign included), while
// the remaining 14 bits represent the fractional part. For an intuitive
// understanding, if you can understand that var ms Millis = 1000 is storing
// the equivalent to 1 second, with Fixed, instead of thousandths of a value,
// you are storing 16384ths. So, var load Fixed = 16384 would mean 1, and
// 24576 would be 1.5.
//
// Fixed values are plain values. All methods return new values and none
// of them report errors, but they can overflow: see [MinInt] and [MaxInt].
type Fixed int32

// Returns whether the Fixed is a whole number or if it
// has a fractional part.
func (self Fixed) IsWhole() bool {
	return self & (Scale - 1) == 0
}

// Returns only the fractional part of the Fixed. The result
// keeps the sign of the original value, so Fract() of -1.25
// is -0.25.
func (self Fixed) Fract() Fixed {
	return self % Scale
}

// Conversion from Fixed to int, discarding the fractional
// part (truncation toward zero).
func (self Fixed) ToIntTrunc() int {
	return int(self / Scale)
}

// Converts the Fixed to the nearest int. Ties are resolved
// away from zero, so 2.5 becomes 3 and -2.5 becomes -3.
func (self Fixed) ToIntNearest() int {
	// widened so values near MaxFixed or MinFixed don't wrap
	if self >= 0 { return int((int64(self) + Scale/2)/Scale) }
	return int((int64(self) - Scale/2)/Scale)
}

func (self Fixed) Add(other Fixed) Fixed { return self + other }
func (self Fixed) Sub(other Fixed) Fixed { return self - other }

// Adds the given int to the Fixed. Same as self.Add(FromInt(n)).
func (self Fixed) AddInt(n int) Fixed { return self + FromInt(n) }

// Subtracts the given int from the Fixed. Same as self.Sub(FromInt(n)).
func (self Fixed) SubInt(n int) Fixed { return self - FromInt(n) }

// Multiplies two Fixed values. The product is computed with
// 64 bits and truncated toward zero before narrowing back.
func (self Fixed) Mul(multiplier Fixed) Fixed {
	mx64 := int64(self)*int64(multiplier)
	return Fixed(mx64/Scale)
}

// Divides two Fixed values. The dividend is widened to 64 bits
// and scaled before the division so no fractional precision is
// lost. Panics if the divisor is zero.
func (self Fixed) Div(divisor Fixed) Fixed {
	dx64 := int64(self)*Scale
	return Fixed(dx64/int64(divisor))
}

// Multiplies the Fixed by a plain int. No rescaling is involved.
func (self Fixed) MulInt(n int) Fixed {
	return Fixed(int(self)*n)
}

// Divides the Fixed by a plain int, truncating toward zero.
// Panics if n is zero.
func (self Fixed) DivInt(n int) Fixed {
	return Fixed(int(self)/n)
}

// Returns the value in decimal notation, using as few
// digits as necessary to represent it exactly.
func (self Fixed) String() string {
	// 1/2^14 has exactly 14 decimal digits, so this is exact
	str := strconv.FormatFloat(self.ToFloat64(), 'f', FracBits, 64)
	str = strings.TrimRight(str, "0")
	return strings.TrimSuffix(str, ".")
}
