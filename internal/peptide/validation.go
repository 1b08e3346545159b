package peptide

import "fmt"

// PeptideError is the base error type for peptide operations.
type PeptideError interface {
	error
	IsPeptideError()
}

// EmptyPeptideError is returned when a peptide has no residues.
type EmptyPeptideError struct{}

func (e *EmptyPeptideError) Error() string {
	return "peptide must have at least one residue"
}

func (e *EmptyPeptideError) IsPeptideError() {}

// InvalidResidueError is returned when a symbol is not one of the twenty
// standard amino acids.
type InvalidResidueError struct {
	Position int
	Found    rune
}

func (e *InvalidResidueError) Error() string {
	return fmt.Sprintf("invalid residue '%c' at position %d", e.Found, e.Position)
}

func (e *InvalidResidueError) IsPeptideError() {}

// Validate validates that a string contains only standard amino acids.
func Validate(residues string) error {
	for i, r := range residues {
		if !IsValidResidue(r) {
			return &InvalidResidueError{Position: i, Found: r}
		}
	}
	return nil
}

// IsValidResidue checks if a character is a standard amino acid symbol.
func IsValidResidue(c rune) bool {
	return ValidResidues[c]
}
