// Scheduler bookkeeping in kernels and simulators often needs
// fractional values (load averages, decaying cpu usage) in places
// where floating point is unavailable or unwanted. The standard
// trick is [fixed point] arithmetic, and that's what this package
// provides.
//
// The fp17 package defines a [Fixed] type representing a 17.14 fixed
// point value: 17 bits for the signed integer part and 14 bits for the
// fractional part, packed into an int32. The scale factor is 2^14, so
// [One] is stored as 16384 and 0.5 as 8192.
//
// Operations never report errors. Overflows wrap like native integer
// arithmetic and dividing by zero panics exactly like integer division
// does. If that matters for your values, check against [MinInt] and
// [MaxInt] before converting.
//
// The mlfqs subpackage contains the usual 4.4BSD scheduler formulas
// written on top of [Fixed].
//
// [fixed point]: https://en.wikipedia.org/wiki/Fixed-point_arithmetic
package fp17
