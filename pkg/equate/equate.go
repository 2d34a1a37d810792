// Package equate provides go-cmp options that compare floating point
// values through floatcmp, so cmp.Diff and cmp.Equal tolerate
// representation noise instead of reporting it as a difference.
package equate

import (
	"math"

	"github.com/google/go-cmp/cmp"

	"github.com/floatcmp/floatcmp/pkg/floatcmp"
)

// Same returns an option that compares float64 and float32 values with
// floatcmp.Same: relative at machine precision without an epsilon,
// absolute within the epsilon with one. NaN values are left to cmp's
// default reporting, combine with NaNs to equate them.
func Same(epsilon ...float64) cmp.Option {
	return options(func(x, y float64) bool {
		return floatcmp.Same(x, y, epsilon...)
	})
}

// Scale returns an option that compares float64 and float32 values
// relatively, treating differences beyond scale fraction digits as noise.
func Scale(scale int) cmp.Option {
	eps := floatcmp.EpsilonFromScale(scale)
	return options(func(x, y float64) bool {
		return floatcmp.SameRelative(x, y, eps)
	})
}

// NaNs returns an option that determines two NaN values to be equal.
func NaNs() cmp.Option {
	return cmp.Options{
		cmp.FilterValues(func(x, y float64) bool {
			return math.IsNaN(x) && math.IsNaN(y)
		}, cmp.Comparer(func(x, y float64) bool { return true })),
		cmp.FilterValues(func(x, y float32) bool {
			return math.IsNaN(float64(x)) && math.IsNaN(float64(y))
		}, cmp.Comparer(func(x, y float32) bool { return true })),
	}
}

// options applies same to non-NaN float64 and float32 pairs, the same
// filter shape cmpopts.EquateApprox uses.
func options(same func(x, y float64) bool) cmp.Option {
	return cmp.Options{
		cmp.FilterValues(func(x, y float64) bool {
			return !math.IsNaN(x) && !math.IsNaN(y)
		}, cmp.Comparer(same)),
		cmp.FilterValues(func(x, y float32) bool {
			return !math.IsNaN(float64(x)) && !math.IsNaN(float64(y))
		}, cmp.Comparer(func(x, y float32) bool {
			return same(float64(x), float64(y))
		})),
	}
}
