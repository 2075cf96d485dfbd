package midiscales

import (
	"fmt"
	"strings"
)

// Scale is a scale kind in one of its modes, with everything derived from
// those two resolved from the catalog. Use NewScale to construct one; the zero
// value is not a configured scale. SetMode and SetScale modify the scale in
// place, so a Scale should not be shared between goroutines without
// synchronization.
type Scale struct {
	Kind ScaleKind
	// Mode is the selected mode. For kinds without modes it is kept as given,
	// so that switching to a kind with modes later uses it.
	Mode int
	// Notes is the number of notes in one octave of the scale; Pattern always
	// has exactly this many steps.
	Notes int
	// Modes is the number of modes of the kind, 0 if it has just one fixed
	// pattern.
	Modes     int
	ScaleName string
	ModeName  string  `yaml:",omitempty" json:",omitempty"`
	Pattern   Pattern `yaml:",flow"`
}

// NewScale returns the scale of given kind in given mode. For Octatonic and
// Blues minor an out of range mode silently falls back to mode 0, for the
// other kinds with modes it is an *InvalidModeError. A kind not in the
// catalog results in a scale with no notes and an *UnknownKindError.
func NewScale(kind ScaleKind, mode int) (Scale, error) {
	var s Scale
	if err := s.configure(kind, mode); err != nil {
		return s, fmt.Errorf("midiscales.NewScale: %w", err)
	}
	return s, nil
}

// SetMode switches the scale to another mode of the current kind. If the mode
// is invalid, the scale is left unchanged.
func (s *Scale) SetMode(mode int) error {
	return s.configure(s.Kind, mode)
}

// SetScale switches the scale to another kind, keeping the current mode. If
// the mode is invalid for the new kind, the scale is left unchanged.
func (s *Scale) SetScale(kind ScaleKind) error {
	return s.configure(kind, s.Mode)
}

// configure resolves everything from the catalog into a fresh value and only
// then replaces s, so nothing from the previously selected kind survives
// except the raw mode.
func (s *Scale) configure(kind ScaleKind, mode int) error {
	if !kind.Valid() {
		*s = Scale{Kind: kind}
		return &UnknownKindError{Kind: kind}
	}
	def := &catalog[kind]
	next := Scale{
		Kind:      kind,
		Mode:      mode,
		Notes:     def.notes,
		Modes:     def.modes,
		ScaleName: def.name,
	}
	pattern := def.patterns[0]
	if def.modes > 0 {
		if mode < 0 || mode >= def.modes {
			if !def.clamp {
				return &InvalidModeError{Kind: kind, Mode: mode, Modes: def.modes}
			}
			next.Mode = 0
		}
		pattern = def.patterns[next.Mode]
		next.ModeName = ModeName(kind, next.Mode)
	}
	next.Pattern = pattern.clone()
	*s = next
	return nil
}

// NoteNumbers walks the pattern from root and returns the MIDI note number of
// each degree, starting with root itself. The numbers are not wrapped, so
// with a high root they can go past 127.
func (s Scale) NoteNumbers(root int) []int {
	n := min(s.Notes, len(s.Pattern))
	ret := make([]int, n)
	note := root
	for i := 0; i < n; i++ {
		ret[i] = note
		note += int(s.Pattern[i])
	}
	return ret
}

// Text spells the scale starting from root, e.g. "C D E F G A B ". Each note
// name is followed by a single space. A scale without notes returns "".
func (s Scale) Text(root int, flats bool) string {
	var b strings.Builder
	for _, note := range s.NoteNumbers(root) {
		b.WriteString(NoteToText(note, flats, false))
		b.WriteByte(' ')
	}
	return b.String()
}

// String returns the scale and mode name, e.g. "Major (Dorian)".
func (s Scale) String() string {
	if s.ModeName != "" {
		return fmt.Sprintf("%s (%s)", s.ScaleName, s.ModeName)
	}
	if s.Modes > 0 {
		return fmt.Sprintf("%s (mode %d)", s.ScaleName, s.Mode)
	}
	return s.ScaleName
}
