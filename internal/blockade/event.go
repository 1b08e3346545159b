// Package blockade holds nanopore blockade events and the averaging applied
// to them before comparison.
package blockade

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNoEvents is returned when an operation needs at least one event.
var ErrNoEvents = errors.New("no blockade events")

// Event is one translocation recorded by the instrument. Trace holds the
// normalized current deviation, typically in [0, 1].
type Event struct {
	OpenCurrent float64   `json:"open_current"`
	Dwell       float64   `json:"dwell"`
	PABlockade  float64   `json:"pa_blockade"`
	Trace       []float64 `json:"trace"`
}

// Len returns the number of samples of the event trace.
func (e *Event) Len() int {
	return len(e.Trace)
}

// Source produces blockade events. Instrument file readers implement it.
type Source interface {
	Events() ([]Event, error)
}

// Normalize converts a raw current trace into the relative blockade
// -(raw - open) / open.
func Normalize(raw []float64, openCurrent float64) ([]float64, error) {
	if openCurrent == 0 {
		return nil, fmt.Errorf("open current cannot be zero")
	}

	trace := make([]float64, len(raw))
	for i, v := range raw {
		trace[i] = -(v - openCurrent) / openCurrent
	}
	return trace, nil
}

// eventFile is the on-disk JSON layout. Raw traces are normalized on load
// unless Normalized is set.
type eventFile struct {
	Normalized bool    `json:"normalized"`
	Events     []Event `json:"events"`
}

// ReadJSON reads events from a JSON document.
func ReadJSON(r io.Reader) ([]Event, error) {
	var doc eventFile
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}

	if len(doc.Events) == 0 {
		return nil, ErrNoEvents
	}

	for i := range doc.Events {
		e := &doc.Events[i]
		if len(e.Trace) == 0 {
			return nil, fmt.Errorf("event %d: empty trace", i)
		}
		if doc.Normalized {
			continue
		}
		trace, err := Normalize(e.Trace, e.OpenCurrent)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		e.Trace = trace
	}

	return doc.Events, nil
}

// WriteJSON writes normalized events as a JSON document.
func WriteJSON(w io.Writer, events []Event) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(eventFile{Normalized: true, Events: events})
}

// FileSource reads events from a JSON file.
type FileSource struct {
	Path string
}

// Events implements Source.
func (s FileSource) Events() ([]Event, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ReadJSON(file)
}
