package signal

import (
	"fmt"

	"gonum.org/v1/gonum/interp"
)

// Grid spreads n points evenly over [0, length].
func Grid(n int, length float64) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		return xs
	}
	for i := range xs {
		xs[i] = float64(i) * length / float64(n-1)
	}
	return xs
}

// Resample fits a cubic interpolant through (xs, ys) and evaluates it at
// the integer positions 0..n-1. Fewer than four knots fall back to
// piecewise linear interpolation.
//
//	requires xs strictly increasing
//	ensures len(result) == n
func Resample(xs, ys []float64, n int) ([]float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("knot coordinates and values differ in length")
	}
	if n < 0 {
		return nil, fmt.Errorf("sample count must be non-negative")
	}

	out := make([]float64, n)
	switch len(xs) {
	case 0:
		return nil, ErrEmpty
	case 1:
		for i := range out {
			out[i] = ys[0]
		}
		return out, nil
	}

	var pred interp.FittablePredictor
	if len(xs) >= 4 {
		pred = &interp.NotAKnotCubic{}
	} else {
		pred = &interp.PiecewiseLinear{}
	}
	if err := pred.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fitting interpolant: %w", err)
	}

	for i := range out {
		out[i] = pred.Predict(float64(i))
	}
	return out, nil
}

// Stretch resamples a signal onto a grid of length samples, mapping its
// first value to sample 0 and its last value to sample length.
func Stretch(s []float64, length int) ([]float64, error) {
	if len(s) == 0 {
		return nil, ErrEmpty
	}
	return Resample(Grid(len(s), float64(length)), s, length)
}
