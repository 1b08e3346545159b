package model

import "fmt"

// ModelError is the base error type for model building.
type ModelError interface {
	error
	IsModelError()
}

// InvalidSymbolError is returned when a residue has no entry in the volume
// table.
type InvalidSymbolError struct {
	Symbol   rune
	Position int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("no volume for residue '%c' at position %d", e.Symbol, e.Position)
}

func (e *InvalidSymbolError) IsModelError() {}

// InvalidWindowError is returned for a non-positive window size.
type InvalidWindowError struct {
	Window int
}

func (e *InvalidWindowError) Error() string {
	return fmt.Sprintf("window size must be positive, got %d", e.Window)
}

func (e *InvalidWindowError) IsModelError() {}
