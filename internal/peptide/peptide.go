// Package peptide provides a validated amino-acid sequence type and a
// reader for peptide databases.
package peptide

import (
	"fmt"
	"strings"
)

// ValidResidues holds the twenty standard amino-acid symbols.
var ValidResidues = map[rune]bool{
	'A': true, 'C': true, 'D': true, 'E': true, 'F': true,
	'G': true, 'H': true, 'I': true, 'K': true, 'L': true,
	'M': true, 'N': true, 'P': true, 'Q': true, 'R': true,
	'S': true, 'T': true, 'V': true, 'W': true, 'Y': true,
}

// Peptide is an ordered sequence of single-letter amino-acid symbols.
//
// Peptides built with New or WithID are upper case and contain only the
// twenty standard residues.
type Peptide struct {
	Residues    string
	ID          string
	Description string
}

// New creates a new peptide with validation. Lower-case input is accepted.
func New(residues string) (*Peptide, error) {
	normalized := strings.ToUpper(strings.TrimSpace(residues))

	if len(normalized) == 0 {
		return nil, &EmptyPeptideError{}
	}

	if err := Validate(normalized); err != nil {
		return nil, err
	}

	return &Peptide{Residues: normalized}, nil
}

// WithID creates a new peptide with an identifier and description.
func WithID(residues, id, description string) (*Peptide, error) {
	if len(id) == 0 {
		return nil, fmt.Errorf("ID cannot be empty")
	}

	p, err := New(residues)
	if err != nil {
		return nil, err
	}

	p.ID = id
	p.Description = description
	return p, nil
}

// Len returns the number of residues.
func (p *Peptide) Len() int {
	return len(p.Residues)
}

// Reverse returns the peptide read from the C-terminus. Blockade events are
// recorded in either direction of translocation.
func (p *Peptide) Reverse() *Peptide {
	b := []byte(p.Residues)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}

	return &Peptide{
		Residues:    string(b),
		ID:          p.ID,
		Description: p.Description,
	}
}

// String returns a string representation of the peptide.
func (p *Peptide) String() string {
	if p.ID != "" {
		return fmt.Sprintf(">%s\n%s", p.ID, p.Residues)
	}
	return p.Residues
}
