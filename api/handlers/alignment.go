package handlers

import (
	"net/http"

	"github.com/nano-align/nanoalign-go/pkg/nanoalign"
)

// AlignmentRequest represents an alignment request. Unset penalties use
// the configured trace scoring.
type AlignmentRequest struct {
	Seq1      []float64 `json:"seq1"`
	Seq2      []float64 `json:"seq2"`
	GapOpen   *float64  `json:"gap_open,omitempty"`
	GapExtend *float64  `json:"gap_extend,omitempty"`
}

// AlignmentResponse represents the response for alignment. Gaps are null.
type AlignmentResponse struct {
	Score       float64    `json:"score"`
	Seq1        []*float64 `json:"seq1"`
	Seq2        []*float64 `json:"seq2"`
	GapsSeq1    int        `json:"gaps_seq1"`
	GapsSeq2    int        `json:"gaps_seq2"`
	GapOpenings int        `json:"gap_openings"`
}

func (a *API) scoring(req *AlignmentRequest) (*nanoalign.Scoring, error) {
	trace := a.cfg.Trace
	if req.GapOpen != nil {
		trace.GapOpen = *req.GapOpen
	}
	if req.GapExtend != nil {
		trace.GapExtend = *req.GapExtend
	}
	return trace.Scoring()
}

// AlignHandler handles global alignment requests.
func (a *API) AlignHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if !decode(w, r, &req) {
		return
	}

	scoring, err := a.scoring(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !a.withinBudget(w, len(req.Seq1), len(req.Seq2)) {
		return
	}

	result, err := nanoalign.AlignWithScoring(req.Seq1, req.Seq2, scoring)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, AlignmentResponse{
		Score:       result.Score,
		Seq1:        encodeTrack(result.Seq1),
		Seq2:        encodeTrack(result.Seq2),
		GapsSeq1:    result.GapsSeq1(),
		GapsSeq2:    result.GapsSeq2(),
		GapOpenings: result.GapOpenings(),
	})
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score float64 `json:"score"`
}

// AlignScoreHandler handles alignment score requests.
func (a *API) AlignScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if !decode(w, r, &req) {
		return
	}

	scoring, err := a.scoring(&req)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !a.withinBudget(w, len(req.Seq1), len(req.Seq2)) {
		return
	}

	score, err := nanoalign.AlignScore(req.Seq1, req.Seq2, scoring)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, ScoreResponse{Score: score})
}

// FillRequest represents a gapped track, with gaps as null.
type FillRequest struct {
	Track []*float64 `json:"track"`
}

// FillResponse represents a dense track.
type FillResponse struct {
	Filled []float64 `json:"filled"`
}

// FillHandler handles gap filling requests.
func FillHandler(w http.ResponseWriter, r *http.Request) {
	var req FillRequest
	if !decode(w, r, &req) {
		return
	}

	filled, err := nanoalign.Fill(decodeTrack(req.Track))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, FillResponse{Filled: filled})
}
