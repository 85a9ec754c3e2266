package fp17

// Number of fractional bits and the scale factor derived from it.
const (
	FracBits = 14
	Scale    = 1 << FracBits // 16384
)

// Minimum and maximum constants.
const (
	MaxFixed Fixed = +0x7FFFFFFF
	MinFixed Fixed = -0x7FFFFFFF - 1
	One Fixed = Scale // fp17.One.ToIntTrunc() == 1
	Half Fixed = Scale/2
	MaxInt int = +131071
	MinInt int = -131072
	MaxFloat64 float64 = +131071.99993896484375
	MinFloat64 float64 = -131072
	Delta float64 = 0.00006103515625 // 1.0/16384.0
	HalfDelta float64 = 0.000030517578125 // 1.0/32768.0
)
