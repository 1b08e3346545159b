package compare

import (
	"fmt"

	"github.com/nano-align/nanoalign-go/internal/alignment"
	"github.com/nano-align/nanoalign-go/internal/model"
	"github.com/nano-align/nanoalign-go/internal/peptide"
	"github.com/nano-align/nanoalign-go/internal/signal"
)

// Pipeline compares signals with a fixed set of options. It holds no
// mutable state and is safe for concurrent use.
type Pipeline struct {
	opts    Options
	builder *model.Builder
}

// New creates a pipeline. A nil builder uses the default volume table.
func New(opts Options, builder *model.Builder) (*Pipeline, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if builder == nil {
		builder = model.NewBuilder(nil)
	}
	return &Pipeline{opts: opts, builder: builder}, nil
}

// Options returns the pipeline options.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Comparison is the outcome of comparing two signals. Filled1 and Filled2
// are indexed by alignment column, in downsampled units.
type Comparison struct {
	Score     float64
	Alignment *alignment.Result
	Filled1   []float64
	Filled2   []float64
}

// Compare rescales b to the median of a, downsamples both, aligns them with
// the trace scoring and fills the gaps of both tracks.
func (p *Pipeline) Compare(a, b []float64) (*Comparison, error) {
	return p.CompareWith(a, b, p.opts.TraceScoring)
}

// CompareWith is Compare with an explicit scoring scheme.
func (p *Pipeline) CompareWith(a, b []float64, scoring *alignment.Scoring) (*Comparison, error) {
	if err := signal.Validate(a, "signal1"); err != nil {
		return nil, err
	}
	if err := signal.Validate(b, "signal2"); err != nil {
		return nil, err
	}

	scaled, err := signal.ScaleToMedian(a, b)
	if err != nil {
		return nil, fmt.Errorf("scaling signal2: %w", err)
	}

	reduced1 := signal.Downsample(a, p.opts.Step)
	reduced2 := signal.Downsample(scaled, p.opts.Step)

	aln, err := alignment.Align(reduced1, reduced2, scoring)
	if err != nil {
		return nil, err
	}

	filled1, filled2, err := alignment.FillResult(aln)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		Score:     aln.Score,
		Alignment: aln,
		Filled1:   filled1,
		Filled2:   filled2,
	}, nil
}

// FitToModel aligns an event trace against a model trace and returns the
// event re-indexed to the model: one value per model sample.
//
//	ensures len(result) == len(modelTrace)
func (p *Pipeline) FitToModel(modelTrace, eventTrace []float64) ([]float64, error) {
	fitted, _, err := p.fitToModel(modelTrace, eventTrace)
	return fitted, err
}

func (p *Pipeline) fitToModel(modelTrace, eventTrace []float64) ([]float64, float64, error) {
	if err := signal.Validate(modelTrace, "model"); err != nil {
		return nil, 0, err
	}
	if err := signal.Validate(eventTrace, "event"); err != nil {
		return nil, 0, err
	}

	aln, err := alignment.Align(modelTrace, eventTrace, p.opts.ModelScoring)
	if err != nil {
		return nil, 0, err
	}

	filled, err := alignment.Fill(aln.Seq2)
	if err != nil {
		return nil, 0, err
	}

	return Project(aln.Seq1, filled), aln.Score, nil
}

// Project keeps the values of filled at the columns where reference holds
// a sample, dropping columns that are insertions relative to reference.
func Project(reference alignment.Track, filled []float64) []float64 {
	projected := make([]float64, 0, len(reference))
	for k, pos := range reference {
		if !pos.Gap {
			projected = append(projected, filled[k])
		}
	}
	return projected
}

// Fit is an event fitted to the theoretical model of a peptide, both in
// downsampled units.
type Fit struct {
	Model []float64
	Event []float64
	Score float64
}

// FitEvent builds the model of pep, stretches it over the event's samples,
// rescales it to the event's median, downsamples both and fits the event to
// the model.
func (p *Pipeline) FitEvent(pep *peptide.Peptide, event []float64) (*Fit, error) {
	if err := signal.Validate(event, "event"); err != nil {
		return nil, err
	}

	theoretical, err := p.builder.Build(pep, p.opts.Window)
	if err != nil {
		return nil, fmt.Errorf("building model: %w", err)
	}

	stretched, err := signal.Stretch(theoretical, len(event))
	if err != nil {
		return nil, fmt.Errorf("stretching model: %w", err)
	}

	scaled, err := signal.ScaleToMedian(event, stretched)
	if err != nil {
		return nil, fmt.Errorf("scaling model: %w", err)
	}

	reducedModel := signal.Downsample(scaled, p.opts.Step)
	reducedEvent := signal.Downsample(event, p.opts.Step)

	fitted, score, err := p.fitToModel(reducedModel, reducedEvent)
	if err != nil {
		return nil, err
	}

	return &Fit{Model: reducedModel, Event: fitted, Score: score}, nil
}
