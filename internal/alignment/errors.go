package alignment

import "fmt"

// AlignmentError is implemented by errors raised while post-processing an
// alignment.
type AlignmentError interface {
	error
	IsAlignmentError()
}

// UnresolvableGapError is returned when a track holds no sample value that a
// gap run could be anchored to.
type UnresolvableGapError struct {
	Length int
}

func (e *UnresolvableGapError) Error() string {
	return fmt.Sprintf("track of length %d has no value to anchor its gaps", e.Length)
}

func (e *UnresolvableGapError) IsAlignmentError() {}
