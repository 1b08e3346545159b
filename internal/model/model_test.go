package model

import (
	"math"
	"testing"

	"github.com/nano-align/nanoalign-go/internal/peptide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPeptide(t *testing.T, residues string) *peptide.Peptide {
	t.Helper()
	p, err := peptide.New(residues)
	require.NoError(t, err)
	return p
}

func TestDefaultVolumes(t *testing.T) {
	table := DefaultVolumes()
	assert.Equal(t, 20, table.Len())

	for r := range peptide.ValidResidues {
		_, ok := table.Volume(r)
		assert.True(t, ok, "missing residue %c", r)
	}

	v, ok := table.Volume('W')
	require.True(t, ok)
	assert.Equal(t, 0.2376, v)

	symbols := table.Symbols()
	assert.Equal(t, 'A', symbols[0])
	assert.Equal(t, 'Y', symbols[len(symbols)-1])
}

func TestNewVolumeTable(t *testing.T) {
	_, err := NewVolumeTable(nil)
	require.Error(t, err)

	_, err = NewVolumeTable(map[rune]float64{'A': -1})
	require.Error(t, err)

	_, err = NewVolumeTable(map[rune]float64{'A': math.NaN()})
	require.Error(t, err)

	source := map[rune]float64{'A': 1}
	table, err := NewVolumeTable(source)
	require.NoError(t, err)

	source['A'] = 2
	v, _ := table.Volume('A')
	assert.Equal(t, 1.0, v)
}

func TestWithOverrides(t *testing.T) {
	base := DefaultVolumes()
	custom, err := base.WithOverrides(map[rune]float64{'G': 0.5, 'U': 0.2})
	require.NoError(t, err)

	v, _ := custom.Volume('G')
	assert.Equal(t, 0.5, v)
	assert.Equal(t, 21, custom.Len())

	v, _ = base.Volume('G')
	assert.Equal(t, 0.0664, v)
}

func TestBuild(t *testing.T) {
	b := NewBuilder(nil)

	signal, err := b.Build(mustPeptide(t, "AG"), 2)
	require.NoError(t, err)
	require.Len(t, signal, 3)

	assert.InDelta(t, 0.0915, signal[0], 1e-12)
	assert.InDelta(t, math.Sqrt((0.0915*0.0915+0.0664*0.0664)/2), signal[1], 1e-12)
	assert.InDelta(t, 0.0664, signal[2], 1e-12)
}

func TestBuildLength(t *testing.T) {
	b := NewBuilder(DefaultVolumes())
	p := mustPeptide(t, "ARTKQTARKSTGGKAPRKQL")

	for _, window := range []int{1, 2, 4, 7, 25} {
		signal, err := b.Build(p, window)
		require.NoError(t, err)
		assert.Len(t, signal, p.Len()+window-1, "window %d", window)
	}
}

func TestBuildWindowOne(t *testing.T) {
	signal, err := NewBuilder(nil).BuildString("wag", 1)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.2376, 0.0915, 0.0664}, signal, 1e-12)
}

func TestBuildRootMeanSquare(t *testing.T) {
	table, err := NewVolumeTable(map[rune]float64{'A': 3, 'G': 4})
	require.NoError(t, err)

	signal, err := NewBuilder(table).Build(&peptide.Peptide{Residues: "AGA"}, 3)
	require.NoError(t, err)

	// Windows: A | AG | AGA | GA | A
	want := []float64{
		3,
		math.Sqrt(12.5),
		math.Sqrt(34.0 / 3),
		math.Sqrt(12.5),
		3,
	}
	assert.InDeltaSlice(t, want, signal, 1e-12)
}

func TestBuildDeterministic(t *testing.T) {
	b := NewBuilder(nil)
	p := mustPeptide(t, "ASVATELRCQCLQTLQGIHPKNIQSVNVKSPGPHCAQTEVIATLKNGRKACLNPASPIVKKIIEKMLNSDKSN")

	first, err := b.Build(p, 4)
	require.NoError(t, err)
	second, err := b.Build(p, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildErrors(t *testing.T) {
	t.Run("missing volume", func(t *testing.T) {
		table, err := NewVolumeTable(map[rune]float64{'A': 0.0915})
		require.NoError(t, err)

		_, err = NewBuilder(table).Build(mustPeptide(t, "AAG"), 2)
		require.Error(t, err)

		var symErr *InvalidSymbolError
		require.ErrorAs(t, err, &symErr)
		assert.Equal(t, 'G', symErr.Symbol)
		assert.Equal(t, 2, symErr.Position)
	})

	t.Run("unvalidated symbol", func(t *testing.T) {
		_, err := NewBuilder(nil).Build(&peptide.Peptide{Residues: "AXG"}, 2)
		var symErr *InvalidSymbolError
		require.ErrorAs(t, err, &symErr)
		assert.Equal(t, 'X', symErr.Symbol)
	})

	t.Run("window", func(t *testing.T) {
		_, err := NewBuilder(nil).Build(mustPeptide(t, "AG"), 0)
		assert.IsType(t, &InvalidWindowError{}, err)
	})

	t.Run("empty peptide", func(t *testing.T) {
		_, err := NewBuilder(nil).Build(&peptide.Peptide{}, 2)
		require.Error(t, err)
	})

	t.Run("invalid string", func(t *testing.T) {
		_, err := NewBuilder(nil).BuildString("AZ", 2)
		assert.IsType(t, &peptide.InvalidResidueError{}, err)
	})
}

func TestResiduePositions(t *testing.T) {
	p := mustPeptide(t, "ARTK")

	// 4 residues, window 3: 6 peaks over 100 samples, shift 20, offset 20.
	positions, err := ResiduePositions(p, 3, 100)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{20, 40, 60, 80}, positions, 1e-9)

	positions, err = ResiduePositions(mustPeptide(t, "A"), 1, 50)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, positions)

	_, err = ResiduePositions(p, 0, 100)
	require.Error(t, err)
}
