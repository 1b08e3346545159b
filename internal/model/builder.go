package model

import (
	"fmt"
	"math"

	"github.com/nano-align/nanoalign-go/internal/peptide"
)

// Builder converts peptides into theoretical signals using a volume table.
type Builder struct {
	volumes *VolumeTable
}

// NewBuilder creates a builder. A nil table uses DefaultVolumes.
func NewBuilder(volumes *VolumeTable) *Builder {
	if volumes == nil {
		volumes = DefaultVolumes()
	}
	return &Builder{volumes: volumes}
}

// Volumes returns the table used by the builder.
func (b *Builder) Volumes() *VolumeTable {
	return b.volumes
}

// Build computes the theoretical signal of a peptide.
//
// The window slides from the offset where only the first residue is inside
// it to the offset where only the last residue is inside it, so the signal
// has len(p) + window - 1 values. Each value is the root-mean-square of the
// residue volumes inside the window, clipped to the peptide.
//
//	requires window > 0
//	ensures len(result) == p.Len() + window - 1
func (b *Builder) Build(p *peptide.Peptide, window int) ([]float64, error) {
	if window <= 0 {
		return nil, &InvalidWindowError{Window: window}
	}
	if p == nil || p.Len() == 0 {
		return nil, fmt.Errorf("peptide cannot be empty")
	}

	residues := []rune(p.Residues)
	volumes := make([]float64, len(residues))
	for i, r := range residues {
		v, ok := b.volumes.Volume(r)
		if !ok {
			return nil, &InvalidSymbolError{Symbol: r, Position: i}
		}
		volumes[i] = v
	}

	n := len(volumes)
	signal := make([]float64, 0, n+window-1)
	for i := -(window - 1); i < n; i++ {
		start, end := max(i, 0), min(i+window, n)
		signal = append(signal, rms(volumes[start:end]))
	}

	return signal, nil
}

// BuildString validates residues and builds their signal.
func (b *Builder) BuildString(residues string, window int) ([]float64, error) {
	p, err := peptide.New(residues)
	if err != nil {
		return nil, err
	}
	return b.Build(p, window)
}

func rms(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(values)))
}

// ResiduePositions returns the x coordinate of every residue when the
// model of p is stretched over plotLen samples. Residue k sits at the
// centre of the window positions it dominates.
func ResiduePositions(p *peptide.Peptide, window int, plotLen float64) ([]float64, error) {
	if window <= 0 {
		return nil, &InvalidWindowError{Window: window}
	}

	peaks := p.Len() + window - 1
	shift := 0.0
	if peaks > 1 {
		shift = plotLen / float64(peaks-1)
	}
	initial := float64(window-1) * shift / 2

	positions := make([]float64, p.Len())
	for k := range positions {
		positions[k] = initial + float64(k)*shift
	}
	return positions, nil
}
