package blockade

import "fmt"

// Traces returns the traces of the events.
func Traces(events []Event) [][]float64 {
	traces := make([][]float64, len(events))
	for i := range events {
		traces[i] = events[i].Trace
	}
	return traces
}

// Consensus returns the element-wise mean of traces of equal length.
func Consensus(traces [][]float64) ([]float64, error) {
	if len(traces) == 0 {
		return nil, ErrNoEvents
	}

	n := len(traces[0])
	consensus := make([]float64, n)
	for i, trace := range traces {
		if len(trace) != n {
			return nil, fmt.Errorf("trace %d has length %d, expected %d", i, len(trace), n)
		}
		for j, v := range trace {
			consensus[j] += v
		}
	}

	for j := range consensus {
		consensus[j] /= float64(len(traces))
	}
	return consensus, nil
}

// Averages groups consecutive events into clusters of binSize, averages
// each cluster and trims flank samples from both ends of the average.
// Events left over after the last full cluster are dropped. With reverse
// set, each average is reversed before trimming.
//
//	requires binSize > 0
//	requires flank >= 0
//	ensures len(result) == len(events) / binSize
func Averages(events []Event, binSize, flank int, reverse bool) ([][]float64, error) {
	if binSize <= 0 {
		return nil, fmt.Errorf("cluster size must be positive")
	}
	if flank < 0 {
		return nil, fmt.Errorf("flank must be non-negative")
	}

	bins := len(events) / binSize
	if bins == 0 {
		return nil, fmt.Errorf("%d events cannot fill a cluster of %d", len(events), binSize)
	}

	averages := make([][]float64, 0, bins)
	for b := 0; b < bins; b++ {
		avg, err := Consensus(Traces(events[b*binSize : (b+1)*binSize]))
		if err != nil {
			return nil, fmt.Errorf("cluster %d: %w", b, err)
		}
		if 2*flank >= len(avg) {
			return nil, fmt.Errorf("flank %d leaves no samples of a %d-sample trace", flank, len(avg))
		}
		if reverse {
			reverseSignal(avg)
		}
		averages = append(averages, avg[flank:len(avg)-flank])
	}

	return averages, nil
}

func reverseSignal(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
