package peptide

import (
	"fmt"
	"io"
	"os"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// ParseFASTA reads a protein database in FASTA format.
//
// Every record must hold a valid peptide; the first invalid record aborts
// the read and is reported with its ID.
func ParseFASTA(r io.Reader) ([]*Peptide, error) {
	template := linear.NewSeq("", nil, alphabet.Protein)
	sc := seqio.NewScanner(fasta.NewReader(r, template))

	peptides := make([]*Peptide, 0)
	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("unexpected sequence type %T", sc.Seq())
		}

		residues := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			residues[i] = byte(l)
		}

		p, err := WithID(string(residues), s.ID, s.Desc)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", s.ID, err)
		}
		peptides = append(peptides, p)
	}

	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("reading FASTA: %w", err)
	}

	return peptides, nil
}

// ReadFASTA reads a protein database from a FASTA file.
func ReadFASTA(filename string) ([]*Peptide, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}
