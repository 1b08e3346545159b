package handlers

import (
	"net/http"

	"github.com/nano-align/nanoalign-go/pkg/nanoalign"
)

// CompareRequest represents a comparison of two traces.
type CompareRequest struct {
	Signal1 []float64 `json:"signal1"`
	Signal2 []float64 `json:"signal2"`
}

// CompareResponse represents the response for a comparison. Aligned tracks
// are in downsampled units with gaps as null.
type CompareResponse struct {
	Score   float64    `json:"score"`
	Seq1    []*float64 `json:"seq1"`
	Seq2    []*float64 `json:"seq2"`
	Filled1 []float64  `json:"filled1"`
	Filled2 []float64  `json:"filled2"`
}

// CompareHandler handles trace comparison requests.
func (a *API) CompareHandler(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !decode(w, r, &req) {
		return
	}

	step := a.pipeline.Options().Step
	if !a.withinBudget(w, nanoalign.DownsampledLen(len(req.Signal1), step),
		nanoalign.DownsampledLen(len(req.Signal2), step)) {
		return
	}

	c, err := a.pipeline.Compare(req.Signal1, req.Signal2)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, CompareResponse{
		Score:   c.Score,
		Seq1:    encodeTrack(c.Alignment.Seq1),
		Seq2:    encodeTrack(c.Alignment.Seq2),
		Filled1: c.Filled1,
		Filled2: c.Filled2,
	})
}

// FitRequest represents a request to fit an event to a peptide's model.
// With Reverse set the peptide is read from the C-terminus, for events
// recorded in the opposite translocation direction.
type FitRequest struct {
	Peptide string    `json:"peptide"`
	Event   []float64 `json:"event"`
	Reverse bool      `json:"reverse,omitempty"`
}

// FitResponse represents a fitted event.
type FitResponse struct {
	Score float64   `json:"score"`
	Model []float64 `json:"model"`
	Event []float64 `json:"event"`
}

// FitHandler handles model fitting requests.
func (a *API) FitHandler(w http.ResponseWriter, r *http.Request) {
	var req FitRequest
	if !decode(w, r, &req) {
		return
	}

	pep, err := nanoalign.NewPeptide(req.Peptide)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if req.Reverse {
		pep = pep.Reverse()
	}

	// The model is stretched over the event, so both sides downsample to
	// the same length.
	n := nanoalign.DownsampledLen(len(req.Event), a.pipeline.Options().Step)
	if !a.withinBudget(w, n, n) {
		return
	}

	fit, err := a.pipeline.FitEvent(pep, req.Event)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, FitResponse{Score: fit.Score, Model: fit.Model, Event: fit.Event})
}
