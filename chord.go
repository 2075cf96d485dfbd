package midiscales

import (
	"fmt"
	"strings"
)

// ChordKind tells which degrees of the scale a chord is built from. Only
// Basic is implemented; the others are reserved and constructing them returns
// ErrNotImplemented.
type ChordKind int

const (
	Power ChordKind = iota
	Basic
	Seventh
	Nine
	Eleven
	Thirteen
	Sus4
)

var chordKindNames = [...]string{
	Power:    "power",
	Basic:    "basic",
	Seventh:  "seventh",
	Nine:     "nine",
	Eleven:   "eleven",
	Thirteen: "thirteen",
	Sus4:     "sus4",
}

// triadDegrees are the positions in the scale the triad is sampled from: the
// root, the third degree and the fifth degree. The positions are counted in
// the scale, so for scales with other than 7 notes they are not necessarily
// a third and a fifth.
var triadDegrees = [3]int{0, 2, 4}

// Chord is a set of notes sampled from a scale. It copies what it needs from
// the scale when constructed and does not follow later changes to the scale.
type Chord struct {
	Kind ChordKind
	// Scale is the name of the scale the chord was built from, for display
	// only.
	Scale string
	Root  int
	// Bass equals Root, until slash chords are supported.
	Bass  int
	Notes [3]int `yaml:",flow"`
}

// NewChord builds a chord of given kind from the scale, rooted at root.
func NewChord(s Scale, kind ChordKind, root int) (Chord, error) {
	if kind != Basic {
		return Chord{}, fmt.Errorf("midiscales.NewChord: %v chord: %w", kind, ErrNotImplemented)
	}
	degrees := s.NoteNumbers(root)
	if len(degrees) <= triadDegrees[len(triadDegrees)-1] {
		return Chord{}, fmt.Errorf("midiscales.NewChord: %w", &InsufficientDegreesError{
			Kind:    s.Kind,
			Notes:   len(degrees),
			Minimum: triadDegrees[len(triadDegrees)-1] + 1,
		})
	}
	c := Chord{Kind: kind, Scale: s.String(), Root: root, Bass: root}
	for i, d := range triadDegrees {
		c.Notes[i] = degrees[d]
	}
	return c, nil
}

// NewSlashChord would build a chord with a bass note different from the root.
// Not supported yet.
func NewSlashChord(s Scale, kind ChordKind, root, bass int) (Chord, error) {
	return Chord{}, fmt.Errorf("midiscales.NewSlashChord: %w", ErrNotImplemented)
}

// Invert would invert the chord n times, leaving the bass note intact. Not
// supported yet; the chord is not modified.
func (c *Chord) Invert(n int) error {
	return fmt.Errorf("midiscales.Chord.Invert: %w", ErrNotImplemented)
}

// Text returns the note names of the chord, without octaves, e.g. "( C,E,G)".
func (c Chord) Text(flats bool) string {
	names := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		names[i] = NoteToText(n, flats, false)
	}
	return "( " + strings.Join(names, ",") + ")"
}

func (k ChordKind) Valid() bool {
	return k >= Power && k <= Sus4
}

func (k ChordKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ChordKind(%d)", int(k))
	}
	return chordKindNames[k]
}

func (k ChordKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid chord kind %d", int(k))
	}
	return []byte(chordKindNames[k]), nil
}

func (k *ChordKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range chordKindNames {
		if s == name {
			*k = ChordKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown chord kind %q", string(text))
}
