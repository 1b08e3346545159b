// Package alignment provides global alignment of numeric signals.
//
// Two real-valued sequences are aligned under an affine gap penalty with a
// three-state dynamic program (match, gap in the second signal, gap in the
// first signal). The gapped output can be turned back into dense signals
// with Fill.
package alignment

import (
	"fmt"
	"math"
)

// State identifies one of the three dynamic programming matrices.
type State uint8

const (
	// Match is a column that consumes a sample from both signals.
	Match State = iota
	// Gap1 is a column that consumes a sample from the first signal only.
	Gap1
	// Gap2 is a column that consumes a sample from the second signal only.
	Gap2
)

func (s State) String() string {
	switch s {
	case Match:
		return "match"
	case Gap1:
		return "gap1"
	case Gap2:
		return "gap2"
	default:
		return "unknown"
	}
}

// MatchFunc scores the alignment of two samples. It is expected to be
// symmetric but need not be a metric.
type MatchFunc func(p, q float64) float64

// LinearMatch returns a MatchFunc that scores scale·(threshold − |p − q|).
// Samples closer than threshold score positively.
func LinearMatch(scale, threshold float64) MatchFunc {
	return func(p, q float64) float64 {
		return scale * (threshold - math.Abs(p-q))
	}
}

// Scoring holds the parameters of an affine-gap alignment.
//
// A gap of length n costs GapOpen + (n-1)·GapExtend. Both penalties are
// usually negative.
type Scoring struct {
	GapOpen   float64
	GapExtend float64
	Match     MatchFunc
}

// NewScoring creates a scoring scheme with validation.
func NewScoring(gapOpen, gapExtend float64, match MatchFunc) (*Scoring, error) {
	s := &Scoring{
		GapOpen:   gapOpen,
		GapExtend: gapExtend,
		Match:     match,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that the penalties are finite and a match function is set.
func (s *Scoring) Validate() error {
	if s.Match == nil {
		return fmt.Errorf("match function must be set")
	}
	if math.IsNaN(s.GapOpen) || math.IsInf(s.GapOpen, 0) {
		return fmt.Errorf("gap open penalty must be finite")
	}
	if math.IsNaN(s.GapExtend) || math.IsInf(s.GapExtend, 0) {
		return fmt.Errorf("gap extend penalty must be finite")
	}
	return nil
}

// TraceScoring is the scheme used to compare two observed traces.
func TraceScoring() *Scoring {
	return &Scoring{
		GapOpen:   -4,
		GapExtend: -3,
		Match:     LinearMatch(100, 0.1),
	}
}

// ModelScoring is the scheme used to fit an observed trace to a theoretical
// model. Gaps are cheaper than in TraceScoring because the model is denser.
func ModelScoring() *Scoring {
	return &Scoring{
		GapOpen:   -2,
		GapExtend: -1,
		Match:     LinearMatch(100, 0.1),
	}
}

// String returns a string representation of the scoring scheme.
func (s *Scoring) String() string {
	return fmt.Sprintf("Scoring { gap_open: %g, gap_extend: %g }", s.GapOpen, s.GapExtend)
}
