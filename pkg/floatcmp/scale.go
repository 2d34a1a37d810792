package floatcmp

import "math"

// EpsilonFromScale returns the tolerance that keeps scale significant
// fraction digits: 10^-scale. Scale 0 yields 1, scale 3 yields 0.001.
// Scale EpsilonDigits yields Epsilon itself rather than 1e-15, because
// machine precision runs out just past the fifteenth digit and the
// exponentiated value would overstate it. Scale is expected to be a
// non-negative integer.
func EpsilonFromScale(scale int) float64 {
	if scale == EpsilonDigits {
		return Epsilon
	}
	return math.Pow10(-scale)
}

// ScaleFromEpsilon returns the number of significant fraction digits the
// given tolerance keeps: -floor(log10(epsilon)), with Epsilon itself
// mapping back to EpsilonDigits. It inverts EpsilonFromScale for scales in
// [0, EpsilonDigits] but not elsewhere: epsilon 100 yields scale -2, and
// epsilon must be positive since log10 is undefined otherwise. Callers
// should pass tolerances produced by EpsilonFromScale or conventional
// small fractions.
func ScaleFromEpsilon(epsilon float64) int {
	if epsilon == Epsilon {
		return EpsilonDigits
	}
	scale := -int(math.Floor(math.Log10(epsilon)))
	// Log10 lands an ulp shy of whole numbers at exact powers of ten,
	// math.Log10(100) == 1.9999999999999998, and Floor turns that ulp into
	// a whole digit. Settle the result against the Pow10 ladder instead.
	if math.Pow10(-scale) > epsilon {
		scale++
	} else if math.Pow10(-scale+1) <= epsilon {
		scale--
	}
	return scale
}
