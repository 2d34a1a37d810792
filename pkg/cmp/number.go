package cmp

import (
	"math"

	pref "google.golang.org/protobuf/reflect/protoreflect"

	"github.com/floatcmp/floatcmp/pkg/floatcmp"
)

// FloatValueSame compares float and double fields with floatcmp.Same:
// relative at machine precision without an epsilon, absolute within the
// epsilon with one.
func FloatValueSame(epsilon ...float64) Value {
	return floatValue(func(x, y float64) bool {
		return floatcmp.Same(x, y, epsilon...)
	})
}

// FloatValueScale compares float and double fields relatively, treating
// differences beyond scale fraction digits as noise.
func FloatValueScale(scale int) Value {
	eps := floatcmp.EpsilonFromScale(scale)
	return floatValue(func(x, y float64) bool {
		return floatcmp.SameRelative(x, y, eps)
	})
}

// FloatValueApprox compares floating point values as equal if they are
// within fraction or margin of each other.
func FloatValueApprox(fraction, margin float64) Value {
	return floatValue(func(x, y float64) bool {
		relMarg := fraction * math.Min(math.Abs(x), math.Abs(y))
		return math.Abs(x-y) <= math.Max(margin, relMarg)
	})
}

// floatValue claims float and double fields, lifts them to float64 and
// defers to same. NaN never reaches same: two NaNs are the same value, a
// lone NaN is equal to nothing.
func floatValue(same func(x, y float64) bool) Value {
	return func(fd pref.FieldDescriptor, x, y pref.Value) (equal bool, ok bool) {
		if fd.Kind() != pref.FloatKind && fd.Kind() != pref.DoubleKind {
			return false, false
		}
		fx, fy := x.Float(), y.Float()
		if math.IsNaN(fx) || math.IsNaN(fy) {
			return math.IsNaN(fx) && math.IsNaN(fy), true
		}
		return same(fx, fy), true
	}
}
