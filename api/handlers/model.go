package handlers

import (
	"net/http"

	"github.com/nano-align/nanoalign-go/pkg/nanoalign"
)

// ModelRequest represents a theoretical signal request. A zero window uses
// the configured window.
type ModelRequest struct {
	Peptide string `json:"peptide"`
	Window  int    `json:"window,omitempty"`
}

// ModelResponse represents a theoretical signal.
type ModelResponse struct {
	Peptide string    `json:"peptide"`
	Window  int       `json:"window"`
	Signal  []float64 `json:"signal"`
}

// ModelHandler handles theoretical signal requests.
func (a *API) ModelHandler(w http.ResponseWriter, r *http.Request) {
	var req ModelRequest
	if !decode(w, r, &req) {
		return
	}

	window := req.Window
	if window == 0 {
		window = a.cfg.Window
	}

	pep, err := nanoalign.NewPeptide(req.Peptide)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	signal, err := nanoalign.ModelWithVolumes(pep.Residues, window, a.volumes)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, ModelResponse{
		Peptide: pep.Residues,
		Window:  window,
		Signal:  signal,
	})
}
