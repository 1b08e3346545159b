// Package handlers provides HTTP handlers for the nanoalign API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nano-align/nanoalign-go/pkg/nanoalign"
)

// maxBodyBytes caps request bodies; traces are at most a few hundred
// thousand samples.
const maxBodyBytes = 32 << 20

// API serves the alignment endpoints with the settings of a config.
type API struct {
	cfg      *nanoalign.Config
	volumes  *nanoalign.VolumeTable
	pipeline *nanoalign.Pipeline
}

// New creates the API. A nil config uses the defaults.
func New(cfg *nanoalign.Config) (*API, error) {
	if cfg == nil {
		var err error
		if cfg, err = nanoalign.LoadConfig(""); err != nil {
			return nil, err
		}
	}

	volumes, err := cfg.VolumeTable()
	if err != nil {
		return nil, err
	}
	pipeline, err := cfg.Pipeline()
	if err != nil {
		return nil, err
	}

	return &API{cfg: cfg, volumes: volumes, pipeline: pipeline}, nil
}

// Routes mounts every endpoint on r.
func (a *API) Routes(r chi.Router) {
	r.Post("/align", a.AlignHandler)
	r.Post("/align/score", a.AlignScoreHandler)
	r.Post("/fill", FillHandler)
	r.Post("/model", a.ModelHandler)
	r.Post("/compare", a.CompareHandler)
	r.Post("/fit", a.FitHandler)
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

// writeDomainError reports a failed operation. Input that parses but cannot
// be modelled or aligned is 422; everything else is 400.
func writeDomainError(w http.ResponseWriter, err error) {
	var (
		alignErr   nanoalign.AlignmentError
		modelErr   nanoalign.ModelError
		peptideErr nanoalign.PeptideError
	)
	status := http.StatusBadRequest
	if errors.As(err, &alignErr) || errors.As(err, &modelErr) || errors.As(err, &peptideErr) {
		status = http.StatusUnprocessableEntity
	}
	writeError(w, status, err.Error())
}

// withinBudget rejects alignments of n1 by n2 samples whose matrices would
// exceed the configured cell budget.
func (a *API) withinBudget(w http.ResponseWriter, n1, n2 int) bool {
	limit := a.cfg.Server.MaxCells
	if int64(n1)*int64(n2) > limit {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("alignment of %d x %d samples exceeds the limit of %d cells", n1, n2, limit))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// encodeTrack renders an aligned track with gaps as null.
func encodeTrack(t nanoalign.Track) []*float64 {
	out := make([]*float64, len(t))
	for k := range t {
		if !t[k].Gap {
			v := t[k].Value
			out[k] = &v
		}
	}
	return out
}

func decodeTrack(values []*float64) nanoalign.Track {
	t := make(nanoalign.Track, len(values))
	for k, v := range values {
		if v == nil {
			t[k] = nanoalign.Position{Gap: true}
		} else {
			t[k] = nanoalign.Position{Value: *v}
		}
	}
	return t
}
