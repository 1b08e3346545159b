package compare

import (
	"context"
	"math"
	"testing"

	"github.com/nano-align/nanoalign-go/internal/alignment"
	"github.com/nano-align/nanoalign-go/internal/peptide"
	"github.com/nano-align/nanoalign-go/internal/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPipeline(t *testing.T, step int) *Pipeline {
	t.Helper()
	opts := DefaultOptions()
	opts.Step = step
	opts.Workers = 2
	p, err := New(opts, nil)
	require.NoError(t, err)
	return p
}

func wave(length int, phase float64) []float64 {
	s := make([]float64, length)
	for i := range s {
		s[i] = 0.5 + 0.3*math.Sin(float64(i)/5+phase)
	}
	return s
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"nil trace scoring", func(o *Options) { o.TraceScoring = nil }},
		{"invalid model scoring", func(o *Options) { o.ModelScoring = &alignment.Scoring{GapOpen: -1} }},
		{"zero step", func(o *Options) { o.Step = 0 }},
		{"zero window", func(o *Options) { o.Window = 0 }},
		{"zero workers", func(o *Options) { o.Workers = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			_, err := New(opts, nil)
			require.Error(t, err)
		})
	}

	opts := DefaultOptions()
	require.NoError(t, opts.Validate())
}

func TestCompare(t *testing.T) {
	p := newPipeline(t, 1)

	a := []float64{0.1, 0.2, 0.3, 0.4, 0.5}
	b := []float64{0.1, 0.3, 0.5}

	c, err := p.Compare(a, b)
	require.NoError(t, err)

	// Three exact matches and two single-sample gaps.
	assert.InDelta(t, 22.0, c.Score, 1e-9)
	assert.Equal(t, 2, c.Alignment.GapsSeq2())
	assert.InDeltaSlice(t, a, c.Filled1, 1e-9)
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4, 0.5}, c.Filled2, 1e-9)
}

func TestCompareScalesSecondSignal(t *testing.T) {
	p := newPipeline(t, 1)

	a := []float64{0.1, 0.2, 0.3}
	b := []float64{0.2, 0.4, 0.6}

	c, err := p.Compare(a, b)
	require.NoError(t, err)

	assert.InDelta(t, 30.0, c.Score, 1e-9)
	assert.InDeltaSlice(t, a, c.Filled2, 1e-9)
}

func TestCompareDownsamples(t *testing.T) {
	p := newPipeline(t, 2)

	a := wave(8, 0)
	c, err := p.Compare(a, a)
	require.NoError(t, err)

	assert.Equal(t, 4, c.Alignment.Len())
	assert.InDelta(t, 40.0, c.Score, 1e-9)
	assert.InDeltaSlice(t, signal.Downsample(a, 2), c.Filled1, 1e-12)
}

func TestCompareErrors(t *testing.T) {
	p := newPipeline(t, 1)

	_, err := p.Compare(nil, []float64{0.1})
	require.ErrorIs(t, err, signal.ErrEmpty)

	_, err = p.Compare([]float64{0.1}, []float64{})
	require.ErrorIs(t, err, signal.ErrEmpty)

	_, err = p.Compare([]float64{0.1, 0.2, 0.3}, []float64{0, 0, 1})
	require.ErrorIs(t, err, signal.ErrZeroMedian)
}

func TestFitToModel(t *testing.T) {
	p := newPipeline(t, 1)

	model := []float64{0.1, 0.2, 0.3, 0.4}
	event := []float64{0.1, 0.3, 0.4}

	fitted, err := p.FitToModel(model, event)
	require.NoError(t, err)

	require.Len(t, fitted, len(model))
	assert.InDeltaSlice(t, []float64{0.1, 0.2, 0.3, 0.4}, fitted, 1e-9)
}

func TestFitToModelDropsInsertions(t *testing.T) {
	p := newPipeline(t, 1)

	model := []float64{0.1, 0.5}
	event := []float64{0.1, 0.3, 0.3, 0.5}

	fitted, err := p.FitToModel(model, event)
	require.NoError(t, err)
	assert.Len(t, fitted, len(model))
	assert.InDelta(t, 0.1, fitted[0], 1e-9)
	assert.InDelta(t, 0.5, fitted[1], 1e-9)
}

func TestProject(t *testing.T) {
	ref := alignment.Track{{Value: 1}, alignment.GapPosition, {Value: 2}, alignment.GapPosition}
	assert.Equal(t, []float64{10, 30}, Project(ref, []float64{10, 20, 30, 40}))
}

func TestFitEvent(t *testing.T) {
	p := newPipeline(t, 2)

	pep, err := peptide.New("AGCDE")
	require.NoError(t, err)

	event := wave(40, 0)
	fit, err := p.FitEvent(pep, event)
	require.NoError(t, err)

	assert.Len(t, fit.Model, 20)
	assert.Len(t, fit.Event, len(fit.Model))
	for _, v := range fit.Event {
		assert.False(t, math.IsNaN(v))
	}
}

func TestFitEventErrors(t *testing.T) {
	p := newPipeline(t, 1)

	pep, err := peptide.New("AG")
	require.NoError(t, err)

	_, err = p.FitEvent(pep, nil)
	require.ErrorIs(t, err, signal.ErrEmpty)

	_, err = p.FitEvent(&peptide.Peptide{Residues: "AZ"}, wave(10, 0))
	require.Error(t, err)
}

func TestCompareConsecutive(t *testing.T) {
	p := newPipeline(t, 1)

	signals := [][]float64{wave(30, 0), wave(28, 0.2), wave(31, 0.4), wave(30, 0.6)}
	reports, err := p.CompareConsecutive(context.Background(), signals)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	seen := make(map[string]bool)
	for k, r := range reports {
		assert.Equal(t, k, r.Index)
		assert.False(t, seen[r.ID.String()])
		seen[r.ID.String()] = true

		want, err := p.Compare(signals[k], signals[k+1])
		require.NoError(t, err)
		assert.InDelta(t, want.Score, r.Score, 1e-9)
	}
}

func TestCompareConsecutiveErrors(t *testing.T) {
	p := newPipeline(t, 1)

	_, err := p.CompareConsecutive(context.Background(), [][]float64{wave(5, 0)})
	require.Error(t, err)

	_, err = p.CompareConsecutive(context.Background(), [][]float64{wave(5, 0), nil})
	require.ErrorIs(t, err, signal.ErrEmpty)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.CompareConsecutive(ctx, [][]float64{wave(5, 0), wave(5, 1)})
	require.ErrorIs(t, err, context.Canceled)
}

func TestFitEvents(t *testing.T) {
	p := newPipeline(t, 2)

	pep, err := peptide.New("ACDEFG")
	require.NoError(t, err)

	reports, err := p.FitEvents(context.Background(), pep, [][]float64{wave(30, 0), wave(24, 1)})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Len(t, reports[0].Event, 15)
	assert.Len(t, reports[1].Event, 12)
	assert.NotEqual(t, reports[0].ID, reports[1].ID)

	_, err = p.FitEvents(context.Background(), pep, nil)
	require.Error(t, err)
}

func BenchmarkCompare(b *testing.B) {
	opts := DefaultOptions()
	p, _ := New(opts, nil)
	s1 := wave(2500, 0)
	s2 := wave(2300, 0.3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = p.Compare(s1, s2)
	}
}
