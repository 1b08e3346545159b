// Package stats provides statistical summaries for signals and blockade
// event sets.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/nano-align/nanoalign-go/internal/blockade"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Median returns the median of values, averaging the two middle values for
// even lengths. The median of an empty slice is NaN.
func Median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// SignalStats summarizes a single signal.
//
//	invariant Min <= Median <= Max
//	invariant Std >= 0
type SignalStats struct {
	Length int
	Mean   float64
	Std    float64
	Median float64
	Min    float64
	Max    float64
}

// FromSignal calculates statistics for a signal. Std is the population
// standard deviation.
func FromSignal(values []float64) (*SignalStats, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("signal cannot be empty")
	}

	mean, std := stat.PopMeanStdDev(values, nil)
	return &SignalStats{
		Length: len(values),
		Mean:   mean,
		Std:    std,
		Median: Median(values),
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}, nil
}

func (s *SignalStats) String() string {
	return fmt.Sprintf(`SignalStats {
  length: %d
  mean: %.4f
  std: %.4f
  median: %.4f
  range: %.4f - %.4f
}`, s.Length, s.Mean, s.Std, s.Median, s.Min, s.Max)
}

// EventSetStats represents aggregated statistics for blockade events.
type EventSetStats struct {
	Count           int
	TotalSamples    int
	MinLength       int
	MaxLength       int
	MeanLength      float64
	MedianLength    int
	MeanDwell       float64
	MeanBlockade    float64
	MeanOpenCurrent float64
}

// FromEvents calculates statistics for a collection of events.
func FromEvents(events []blockade.Event) (*EventSetStats, error) {
	if len(events) == 0 {
		return nil, blockade.ErrNoEvents
	}

	count := len(events)
	lengths := make([]int, count)
	dwells := make([]float64, count)
	blockades := make([]float64, count)
	currents := make([]float64, count)
	totalSamples := 0

	for i := range events {
		lengths[i] = events[i].Len()
		dwells[i] = events[i].Dwell
		blockades[i] = events[i].PABlockade
		currents[i] = events[i].OpenCurrent
		totalSamples += lengths[i]
	}

	sortedLengths := make([]int, count)
	copy(sortedLengths, lengths)
	sort.Ints(sortedLengths)

	mid := count / 2
	var medianLen int
	if count%2 == 0 {
		medianLen = (sortedLengths[mid-1] + sortedLengths[mid]) / 2
	} else {
		medianLen = sortedLengths[mid]
	}

	return &EventSetStats{
		Count:           count,
		TotalSamples:    totalSamples,
		MinLength:       sortedLengths[0],
		MaxLength:       sortedLengths[count-1],
		MeanLength:      float64(totalSamples) / float64(count),
		MedianLength:    medianLen,
		MeanDwell:       stat.Mean(dwells, nil),
		MeanBlockade:    stat.Mean(blockades, nil),
		MeanOpenCurrent: stat.Mean(currents, nil),
	}, nil
}

func (s *EventSetStats) String() string {
	return fmt.Sprintf(`EventSetStats {
  count: %d
  total samples: %d
  length range: %d - %d
  mean length: %.1f
  median length: %d
  mean dwell: %.4f
  mean blockade: %.4f
  mean open current: %.4f
}`, s.Count, s.TotalSamples, s.MinLength, s.MaxLength, s.MeanLength,
		s.MedianLength, s.MeanDwell, s.MeanBlockade, s.MeanOpenCurrent)
}
