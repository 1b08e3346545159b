// Package nanoalign provides a high-level API for nanopore blockade signal
// alignment.
//
// This package exposes the core functionality through a small API for the
// common operations: building theoretical signals from peptides, aligning
// signals and comparing blockade events.
//
// Example usage:
//
//	theoretical, err := nanoalign.Model("SPYRGA", 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := nanoalign.Align(eventA, eventB)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Format())
package nanoalign

import (
	"fmt"

	"github.com/nano-align/nanoalign-go/internal/alignment"
	"github.com/nano-align/nanoalign-go/internal/blockade"
	"github.com/nano-align/nanoalign-go/internal/compare"
	"github.com/nano-align/nanoalign-go/internal/config"
	"github.com/nano-align/nanoalign-go/internal/model"
	"github.com/nano-align/nanoalign-go/internal/peptide"
	"github.com/nano-align/nanoalign-go/internal/signal"
	"github.com/nano-align/nanoalign-go/internal/stats"
)

// Re-export types for convenience
type (
	Peptide     = peptide.Peptide
	Result      = alignment.Result
	Track       = alignment.Track
	Position    = alignment.Position
	Scoring     = alignment.Scoring
	VolumeTable = model.VolumeTable
	Event       = blockade.Event
	Pipeline    = compare.Pipeline
	Options     = compare.Options
	Comparison  = compare.Comparison
	Fit         = compare.Fit
	Report      = compare.Report
	FitReport   = compare.FitReport
	Config      = config.Config
	SignalStats = stats.SignalStats

	AlignmentError = alignment.AlignmentError
	ModelError     = model.ModelError
	PeptideError   = peptide.PeptideError
)

// NewPeptide creates a validated peptide.
func NewPeptide(residues string) (*Peptide, error) {
	return peptide.New(residues)
}

// Align performs global alignment of two signals with the trace scoring.
func Align(seq1, seq2 []float64) (*Result, error) {
	return alignment.Align(seq1, seq2, alignment.TraceScoring())
}

// AlignWithScoring performs global alignment with custom scoring.
func AlignWithScoring(seq1, seq2 []float64, scoring *Scoring) (*Result, error) {
	return alignment.Align(seq1, seq2, scoring)
}

// AlignScore returns the global alignment score of two signals.
func AlignScore(seq1, seq2 []float64, scoring *Scoring) (float64, error) {
	return alignment.AlignScoreOnly(seq1, seq2, scoring)
}

// NewScoring creates an affine-gap scoring scheme with a linear match
// function.
func NewScoring(gapOpen, gapExtend, matchScale, matchThreshold float64) (*Scoring, error) {
	return alignment.NewScoring(gapOpen, gapExtend, alignment.LinearMatch(matchScale, matchThreshold))
}

// TraceScoring returns the scoring used between observed traces.
func TraceScoring() *Scoring {
	return alignment.TraceScoring()
}

// ModelScoring returns the scoring used between a model and a trace.
func ModelScoring() *Scoring {
	return alignment.ModelScoring()
}

// Fill replaces the gaps of an aligned track by interpolation.
func Fill(track Track) ([]float64, error) {
	return alignment.Fill(track)
}

// Model builds the theoretical signal of a peptide with the default
// volumes.
func Model(residues string, window int) ([]float64, error) {
	return model.NewBuilder(nil).BuildString(residues, window)
}

// ModelWithVolumes builds the theoretical signal of a peptide with a custom
// volume table.
func ModelWithVolumes(residues string, window int, volumes *VolumeTable) ([]float64, error) {
	return model.NewBuilder(volumes).BuildString(residues, window)
}

// DefaultVolumes returns the reference residue volumes.
func DefaultVolumes() *VolumeTable {
	return model.DefaultVolumes()
}

// DefaultOptions returns the default pipeline options.
func DefaultOptions() Options {
	return compare.DefaultOptions()
}

// NewPipeline creates a comparison pipeline with the default volumes.
func NewPipeline(opts Options) (*Pipeline, error) {
	return compare.New(opts, nil)
}

// Compare scales, downsamples, aligns and fills two signals with the
// default options.
func Compare(a, b []float64) (*Comparison, error) {
	p, err := compare.New(compare.DefaultOptions(), nil)
	if err != nil {
		return nil, err
	}
	return p.Compare(a, b)
}

// DownsampledLen returns the number of samples kept from n samples when
// downsampling with step.
func DownsampledLen(n, step int) int {
	return signal.DownsampledLen(n, step)
}

// ReadEvents loads blockade events from a JSON file.
func ReadEvents(filename string) ([]Event, error) {
	return blockade.FileSource{Path: filename}.Events()
}

// Averages clusters events and averages each cluster.
func Averages(events []Event, binSize, flank int, reverse bool) ([][]float64, error) {
	return blockade.Averages(events, binSize, flank, reverse)
}

// ReadFASTA reads peptides from a FASTA file.
func ReadFASTA(filename string) ([]*Peptide, error) {
	return peptide.ReadFASTA(filename)
}

// LoadConfig reads a TOML config file. An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	return config.LoadFile(path)
}

// Stats returns summary statistics of a signal.
func Stats(signal []float64) (*SignalStats, error) {
	return stats.FromSignal(signal)
}

// Version returns the nanoalign version.
func Version() string {
	return "0.3.0"
}

// Info returns information about nanoalign.
func Info() string {
	return fmt.Sprintf(`nanoalign v%s - Nanopore Blockade Signal Alignment

Features:
  - Theoretical blockade signals from peptide residue volumes
  - Affine-gap global alignment of real-valued signals
  - Gap filling by linear interpolation
  - Median-ratio scaling and downsampling of traces
  - Event clustering, averaging and model fitting
  - FASTA peptide databases and TOML configuration
`, Version())
}
