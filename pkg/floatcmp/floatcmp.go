// Package floatcmp compares float64 values for equality and order while
// tolerating the error that creeps into binary floating point arithmetic,
// where expressions like 0.1+0.2 and 0.3 produce values that are almost,
// but not exactly, equal.
//
// Two tolerance modes are available. Relative tolerance adapts to the
// magnitude of the operands and is the most precise comparison float64
// supports. Absolute tolerance treats any difference below a fixed epsilon
// as noise regardless of operand magnitude, matching a deliberately
// truncated decimal resolution. Same and Compare pick the mode from their
// arguments: omit the epsilon for relative comparison, supply one for
// absolute.
//
// Every comparison takes the optional epsilon as a trailing variadic
// argument. Only the first value is consulted, and its absolute value is
// used, so an accidentally negated tolerance still behaves.
//
// NaN is not the same as anything, itself included, and does not order:
// the Compare functions return -1 whenever either operand is NaN, so
// antisymmetry does not hold for NaN operands.
package floatcmp

import "math"

// Epsilon is the machine epsilon for float64, the gap between 1.0 and the
// next representable value: 2.220446049250313e-16.
const Epsilon = 0x1p-52

// EpsilonDigits is the number of significant fraction digits float64
// arithmetic keeps reliably. It is the scale that maps to Epsilon exactly,
// see EpsilonFromScale.
const EpsilonDigits = 15

// minNormal is the smallest positive normal float64,
// 2.2250738585072014e-308. Below it precision drains away digit by digit,
// so relative comparison switches to an absolute check. Not the same as
// math.SmallestNonzeroFloat64, which is the smallest subnormal.
const minNormal = 0x1p-1022

// Same reports whether a and b represent the same number. Called without
// an epsilon it compares like SameRelative at machine precision, the
// strictest comparison that still absorbs representation error. Called
// with an epsilon it compares like Equal, treating differences below the
// fixed epsilon as noise.
func Same(a, b float64, epsilon ...float64) bool {
	if len(epsilon) == 0 {
		return SameRelative(a, b)
	}
	return Equal(a, b, epsilon...)
}

// Compare orders a and b: 0 when Same holds, otherwise 1 when a > b and
// -1 when a < b. The epsilon selects the comparison mode exactly as it
// does for Same.
func Compare(a, b float64, epsilon ...float64) int {
	if len(epsilon) == 0 {
		return CompareRelative(a, b)
	}
	return CompareEqual(a, b, epsilon...)
}

// SameRelative reports whether the difference between a and b is small
// compared to their magnitude, following the widely used nearlyEqual
// algorithm from floating-point-gui.de. The epsilon defaults to Epsilon
// and bounds the allowed fraction diff/(|a|+|b|).
//
// When either operand is zero, or both are so close to zero that |a|+|b|
// loses normal precision, relative difference stops meaning anything. The
// difference is then measured against epsilon scaled down to the smallest
// normal float64, which keeps the comparison total across subnormals
// without dividing by a vanishing denominator.
func SameRelative(a, b float64, epsilon ...float64) bool {
	if a == b {
		// Also catches +0.0 vs -0.0 and matching infinities.
		return true
	}
	eps := epsilonOf(epsilon)
	absA := math.Abs(a)
	absB := math.Abs(b)
	diff := math.Abs(a - b)
	if a == 0 || b == 0 || absA+absB < minNormal {
		return diff < eps*minNormal
	}
	// Min keeps the denominator finite when a and b sit near MaxFloat64.
	return diff/math.Min(absA+absB, math.MaxFloat64) < eps
}

// CompareRelative orders a and b: 0 when SameRelative holds, otherwise 1
// when a > b and -1 when a < b. Values that are close but not the same
// still order deterministically.
func CompareRelative(a, b float64, epsilon ...float64) int {
	if SameRelative(a, b, epsilon...) {
		return 0
	}
	if a > b {
		return 1
	}
	return -1
}

// Equal reports whether a and b differ by less than a fixed absolute
// epsilon, defaulting to Epsilon. An absolute tolerance ignores operand
// magnitude: once operands grow large enough that adjacent representable
// values are further apart than epsilon, Equal degenerates into ==. That
// is the accepted cost of a fixed decimal cutoff; use SameRelative when
// operand scale varies.
func Equal(a, b float64, epsilon ...float64) bool {
	if a == b {
		return true
	}
	return math.Abs(a-b) < epsilonOf(epsilon)
}

// CompareEqual orders a and b: 0 when Equal holds, otherwise 1 when a > b
// and -1 when a < b.
func CompareEqual(a, b float64, epsilon ...float64) int {
	if Equal(a, b, epsilon...) {
		return 0
	}
	if a > b {
		return 1
	}
	return -1
}

// epsilonOf resolves the optional tolerance argument, defaulting to
// Epsilon. The absolute value tolerates an accidentally negated epsilon.
func epsilonOf(epsilon []float64) float64 {
	if len(epsilon) == 0 {
		return Epsilon
	}
	return math.Abs(epsilon[0])
}
