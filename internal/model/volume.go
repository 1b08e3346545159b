// Package model builds theoretical blockade signals from peptide sequences.
//
// Each residue contributes its physical volume; the signal at a pore
// position is the root-mean-square of the volumes inside a sliding window.
package model

import (
	"fmt"
	"math"
	"sort"
)

// VolumeTable maps amino-acid symbols to residue volumes. It is read-only
// after construction and safe for concurrent use.
type VolumeTable struct {
	volumes map[rune]float64
}

var defaultVolumes = map[rune]float64{
	'I': 0.1688, 'F': 0.2034, 'V': 0.1417, 'L': 0.1679,
	'W': 0.2376, 'M': 0.1708, 'A': 0.0915, 'G': 0.0664,
	'C': 0.1056, 'Y': 0.2036, 'P': 0.1293, 'T': 0.1221,
	'S': 0.0991, 'H': 0.1673, 'E': 0.1551, 'N': 0.1359,
	'Q': 0.1611, 'D': 0.1245, 'K': 0.1713, 'R': 0.2021,
}

// DefaultVolumes returns the reference table of the twenty standard
// residues.
func DefaultVolumes() *VolumeTable {
	t, _ := NewVolumeTable(defaultVolumes)
	return t
}

// NewVolumeTable creates a table from a copy of volumes. Volumes must be
// finite and non-negative.
func NewVolumeTable(volumes map[rune]float64) (*VolumeTable, error) {
	if len(volumes) == 0 {
		return nil, fmt.Errorf("volume table cannot be empty")
	}

	copied := make(map[rune]float64, len(volumes))
	for symbol, v := range volumes {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("invalid volume %g for residue '%c'", v, symbol)
		}
		copied[symbol] = v
	}

	return &VolumeTable{volumes: copied}, nil
}

// WithOverrides returns a new table with the given volumes replaced or
// added. The receiver is not modified.
func (t *VolumeTable) WithOverrides(overrides map[rune]float64) (*VolumeTable, error) {
	merged := make(map[rune]float64, len(t.volumes)+len(overrides))
	for symbol, v := range t.volumes {
		merged[symbol] = v
	}
	for symbol, v := range overrides {
		merged[symbol] = v
	}
	return NewVolumeTable(merged)
}

// Volume returns the volume of a residue.
func (t *VolumeTable) Volume(symbol rune) (float64, bool) {
	v, ok := t.volumes[symbol]
	return v, ok
}

// Len returns the number of residues in the table.
func (t *VolumeTable) Len() int {
	return len(t.volumes)
}

// Symbols returns the residues of the table in alphabetical order.
func (t *VolumeTable) Symbols() []rune {
	symbols := make([]rune, 0, len(t.volumes))
	for symbol := range t.volumes {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
