package midiscales

import (
	"fmt"
	"strings"
)

// ScaleKind identifies a family of scales in the catalog. Some families have
// several modes, i.e. rotations of the same pattern, others just one fixed
// pattern.
type ScaleKind int

const (
	Chromatic ScaleKind = iota
	Octatonic
	DominantDiminished
	Diminished
	Major
	Minor
	MelodicMinor
	HarmonicMinor
	Gypsy
	Symmetrical
	Enigmatic
	Arabian
	Hungarian
	WholeTone
	Augmented
	BluesMajor
	BluesMinor
	Pentatonic
	MinorPentatonic
)

// kindIDs are the stable identifiers used when a ScaleKind is marshaled as
// text, e.g. in YAML or JSON or on the command line.
var kindIDs = [...]string{
	Chromatic:          "chromatic",
	Octatonic:          "octatonic",
	DominantDiminished: "dominant-diminished",
	Diminished:         "diminished",
	Major:              "major",
	Minor:              "minor",
	MelodicMinor:       "melodic-minor",
	HarmonicMinor:      "harmonic-minor",
	Gypsy:              "gypsy",
	Symmetrical:        "symmetrical",
	Enigmatic:          "enigmatic",
	Arabian:            "arabian",
	Hungarian:          "hungarian",
	WholeTone:          "whole-tone",
	Augmented:          "augmented",
	BluesMajor:         "blues-major",
	BluesMinor:         "blues-minor",
	Pentatonic:         "pentatonic",
	MinorPentatonic:    "minor-pentatonic",
}

// ScaleKinds returns all the scale kinds in the catalog, in enumeration order.
func ScaleKinds() []ScaleKind {
	ret := make([]ScaleKind, 0, len(kindIDs))
	for k := Chromatic; k <= MinorPentatonic; k++ {
		ret = append(ret, k)
	}
	return ret
}

// Valid reports whether k is one of the kinds in the catalog.
func (k ScaleKind) Valid() bool {
	return k >= Chromatic && k <= MinorPentatonic
}

// ID returns the stable text identifier of the kind, e.g. "melodic-minor".
func (k ScaleKind) ID() string {
	if !k.Valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindIDs[k]
}

// String returns the display name of the kind, e.g. "Melodic minor".
func (k ScaleKind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("ScaleKind(%d)", int(k))
	}
	return catalog[k].name
}

func (k ScaleKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &UnknownKindError{Kind: k}
	}
	return []byte(kindIDs[k]), nil
}

func (k *ScaleKind) UnmarshalText(text []byte) error {
	parsed, err := ParseScaleKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseScaleKind finds the kind by its identifier ("harmonic-minor") or by
// its display name ("Harmonic minor"). The comparison is case-insensitive and
// spaces, dashes and underscores are treated alike.
func ParseScaleKind(s string) (ScaleKind, error) {
	key := normalizeKindName(s)
	for k := Chromatic; k <= MinorPentatonic; k++ {
		if key == normalizeKindName(kindIDs[k]) || key == normalizeKindName(catalog[k].name) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown scale kind %q", s)
}

func normalizeKindName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s)
}
