package midiscales

import (
	"errors"
	"fmt"
)

// ErrNotImplemented is returned for chord operations that are declared but
// not supported yet: chord kinds other than Basic, slash chords and
// inversions.
var ErrNotImplemented = errors.New("not implemented")

type (
	// InvalidModeError is returned when a mode is out of range for a kind
	// that does not fall back to mode 0.
	InvalidModeError struct {
		Kind  ScaleKind
		Mode  int
		Modes int
	}

	// UnknownKindError is returned for a ScaleKind that is not in the
	// catalog. The scale is still configured, but has no notes.
	UnknownKindError struct {
		Kind ScaleKind
	}

	// InsufficientDegreesError is returned when a chord needs more degrees
	// than the scale has.
	InsufficientDegreesError struct {
		Kind    ScaleKind
		Notes   int
		Minimum int
	}
)

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("mode %d is invalid for %v scale, expected 0..%d", e.Mode, e.Kind, e.Modes-1)
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown scale kind %d", int(e.Kind))
}

func (e *InsufficientDegreesError) Error() string {
	return fmt.Sprintf("%v scale has %d degrees, chord needs at least %d", e.Kind, e.Notes, e.Minimum)
}
