// Package signal provides the transformations applied to blockade signals
// before alignment: median-ratio scaling, downsampling and resampling onto
// another sample grid.
package signal

import (
	"errors"
	"fmt"

	"github.com/nano-align/nanoalign-go/internal/stats"
)

// ErrZeroMedian is returned when a signal cannot be rescaled because its
// median is zero.
var ErrZeroMedian = errors.New("signal median is zero")

// ErrEmpty is returned for an empty signal.
var ErrEmpty = errors.New("signal cannot be empty")

// ScaleToMedian rescales signal so that its median matches the median of
// reference: signal · median(reference) / median(signal).
func ScaleToMedian(reference, signal []float64) ([]float64, error) {
	if len(reference) == 0 || len(signal) == 0 {
		return nil, ErrEmpty
	}

	own := stats.Median(signal)
	if own == 0 {
		return nil, ErrZeroMedian
	}

	return Scale(signal, stats.Median(reference)/own), nil
}

// Scale returns signal multiplied by factor.
func Scale(signal []float64, factor float64) []float64 {
	scaled := make([]float64, len(signal))
	for i, v := range signal {
		scaled[i] = v * factor
	}
	return scaled
}

// Downsample keeps every step-th sample starting with the first. A step of
// one or less returns a copy.
func Downsample(signal []float64, step int) []float64 {
	if step <= 1 {
		out := make([]float64, len(signal))
		copy(out, signal)
		return out
	}

	out := make([]float64, 0, DownsampledLen(len(signal), step))
	for i := 0; i < len(signal); i += step {
		out = append(out, signal[i])
	}
	return out
}

// DownsampledLen returns the length of a signal of n samples after
// Downsample with step.
func DownsampledLen(n, step int) int {
	if step <= 1 {
		return n
	}
	return (n + step - 1) / step
}

// Validate checks that a signal is non-empty.
func Validate(signal []float64, name string) error {
	if len(signal) == 0 {
		return fmt.Errorf("%s: %w", name, ErrEmpty)
	}
	return nil
}
