package alignment

import (
	"fmt"
	"strconv"
	"strings"
)

// Position is one column entry of an aligned signal: either a sample value
// or a gap.
type Position struct {
	Value float64
	Gap   bool
}

// GapPosition is the gap marker.
var GapPosition = Position{Gap: true}

// Track is one row of a gapped alignment.
type Track []Position

// TrackOf wraps a dense signal into a gap-free track.
func TrackOf(values []float64) Track {
	t := make(Track, len(values))
	for i, v := range values {
		t[i] = Position{Value: v}
	}
	return t
}

// Gaps returns the number of gap positions.
func (t Track) Gaps() int {
	count := 0
	for _, p := range t {
		if p.Gap {
			count++
		}
	}
	return count
}

// Values returns the non-gap samples in order.
func (t Track) Values() []float64 {
	values := make([]float64, 0, len(t))
	for _, p := range t {
		if !p.Gap {
			values = append(values, p.Value)
		}
	}
	return values
}

// Result is the outcome of a global alignment of two signals.
//
//	invariant len(Seq1) == len(Seq2)
//	invariant !(Seq1[k].Gap && Seq2[k].Gap) for every k
type Result struct {
	Score float64
	Seq1  Track
	Seq2  Track
}

// NewResult creates an alignment result, checking the column invariants.
func NewResult(score float64, seq1, seq2 Track) (*Result, error) {
	if len(seq1) != len(seq2) {
		return nil, fmt.Errorf("aligned tracks must have equal length")
	}
	for k := range seq1 {
		if seq1[k].Gap && seq2[k].Gap {
			return nil, fmt.Errorf("column %d is a gap in both tracks", k)
		}
	}
	return &Result{Score: score, Seq1: seq1, Seq2: seq2}, nil
}

// Len returns the number of alignment columns.
func (r *Result) Len() int {
	return len(r.Seq1)
}

// GapsSeq1 returns the number of gaps in the first track.
func (r *Result) GapsSeq1() int {
	return r.Seq1.Gaps()
}

// GapsSeq2 returns the number of gaps in the second track.
func (r *Result) GapsSeq2() int {
	return r.Seq2.Gaps()
}

// TotalGaps returns the total number of gaps.
func (r *Result) TotalGaps() int {
	return r.GapsSeq1() + r.GapsSeq2()
}

// GapOpenings counts the gap runs in both tracks.
func (r *Result) GapOpenings() int {
	openings := 0
	inGap1, inGap2 := false, false

	for k := range r.Seq1 {
		if r.Seq1[k].Gap && !inGap1 {
			openings++
		}
		inGap1 = r.Seq1[k].Gap

		if r.Seq2[k].Gap && !inGap2 {
			openings++
		}
		inGap2 = r.Seq2[k].Gap
	}

	return openings
}

// States returns the column type of each alignment column.
func (r *Result) States() []State {
	states := make([]State, len(r.Seq1))
	for k := range r.Seq1 {
		switch {
		case r.Seq2[k].Gap:
			states[k] = Gap1
		case r.Seq1[k].Gap:
			states[k] = Gap2
		default:
			states[k] = Match
		}
	}
	return states
}

func formatTrack(t Track) string {
	fields := make([]string, len(t))
	for k, p := range t {
		if p.Gap {
			fields[k] = "-"
		} else {
			fields[k] = strconv.FormatFloat(p.Value, 'f', 4, 64)
		}
	}
	return strings.Join(fields, " ")
}

// Format returns a formatted string representation of the alignment.
func (r *Result) Format() string {
	return fmt.Sprintf("Seq1: %s\nSeq2: %s\nScore: %.4f\nGaps: %d/%d (%d openings)",
		formatTrack(r.Seq1), formatTrack(r.Seq2), r.Score,
		r.GapsSeq1(), r.GapsSeq2(), r.GapOpenings())
}

func (r *Result) String() string {
	return fmt.Sprintf("Result { score: %.4f, length: %d, gaps: %d }",
		r.Score, r.Len(), r.TotalGaps())
}
