// Package compare orchestrates signal comparisons: scaling, downsampling,
// alignment, gap filling and projection onto a model's coordinates.
package compare

import (
	"fmt"
	"runtime"

	"github.com/nano-align/nanoalign-go/internal/alignment"
)

// Options configures a Pipeline.
type Options struct {
	// TraceScoring aligns two observed traces.
	TraceScoring *alignment.Scoring
	// ModelScoring aligns a theoretical model against an observed trace.
	ModelScoring *alignment.Scoring
	// Step keeps every Step-th sample before alignment. 1 disables
	// downsampling.
	Step int
	// Window is the sliding window of the model builder.
	Window int
	// Workers bounds the number of concurrent alignments in batch calls.
	Workers int
}

// DefaultOptions returns the options used for blockade identification.
func DefaultOptions() Options {
	return Options{
		TraceScoring: alignment.TraceScoring(),
		ModelScoring: alignment.ModelScoring(),
		Step:         10,
		Window:       4,
		Workers:      runtime.NumCPU(),
	}
}

// Validate checks the options.
func (o *Options) Validate() error {
	if o.TraceScoring == nil || o.ModelScoring == nil {
		return fmt.Errorf("trace and model scoring must be set")
	}
	if err := o.TraceScoring.Validate(); err != nil {
		return fmt.Errorf("trace scoring: %w", err)
	}
	if err := o.ModelScoring.Validate(); err != nil {
		return fmt.Errorf("model scoring: %w", err)
	}
	if o.Step < 1 {
		return fmt.Errorf("downsample step must be at least 1")
	}
	if o.Window < 1 {
		return fmt.Errorf("window must be at least 1")
	}
	if o.Workers < 1 {
		return fmt.Errorf("workers must be at least 1")
	}
	return nil
}
