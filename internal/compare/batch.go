package compare

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/nano-align/nanoalign-go/internal/peptide"
	"golang.org/x/sync/errgroup"
)

// Report is one comparison of a batch.
type Report struct {
	ID    uuid.UUID
	Index int
	*Comparison
}

// FitReport is one fitted event of a batch.
type FitReport struct {
	ID    uuid.UUID
	Index int
	*Fit
}

// CompareConsecutive compares every signal with the next one. Report k
// holds the comparison of signals k and k+1. Up to Options.Workers
// alignments run at once; the first error cancels the remaining work.
func (p *Pipeline) CompareConsecutive(ctx context.Context, signals [][]float64) ([]*Report, error) {
	if len(signals) < 2 {
		return nil, fmt.Errorf("need at least two signals, got %d", len(signals))
	}

	reports := make([]*Report, len(signals)-1)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for k := range reports {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := p.Compare(signals[k], signals[k+1])
			if err != nil {
				return fmt.Errorf("signals %d and %d: %w", k, k+1, err)
			}
			reports[k] = &Report{ID: uuid.New(), Index: k, Comparison: c}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// FitEvents fits every signal to the model of pep concurrently.
func (p *Pipeline) FitEvents(ctx context.Context, pep *peptide.Peptide, signals [][]float64) ([]*FitReport, error) {
	if len(signals) == 0 {
		return nil, fmt.Errorf("no signals to fit")
	}

	reports := make([]*FitReport, len(signals))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for k := range signals {
		k := k
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fit, err := p.FitEvent(pep, signals[k])
			if err != nil {
				return fmt.Errorf("signal %d: %w", k, err)
			}
			reports[k] = &FitReport{ID: uuid.New(), Index: k, Fit: fit}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}
