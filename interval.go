package midiscales

import (
	"fmt"
	"strings"
)

type (
	// Step is the distance between two adjacent degrees of a scale, in
	// semitones. Scales only ever use the four step sizes below.
	Step byte

	// Pattern is the list of steps that defines a scale, starting from the
	// root note. A scale with n notes has a pattern of n steps; the last step
	// leads back to the root, one octave up.
	Pattern []Step
)

const (
	H  Step = 1 // half step
	W  Step = 2 // whole step
	WH Step = 3 // whole + half, i.e. an augmented second / minor third
	WW Step = 4 // two whole steps
)

// Intervals in semitones. Nothing in this package depends on these, they are
// here so that calling code can name intervals instead of using bare numbers.
const (
	PerfectUnison     = 0
	AugmentedUnison   = 1
	MinorSecond       = 1
	MajorSecond       = 2
	AugmentedSecond   = 3
	MinorThird        = 3
	MajorThird        = 4
	PerfectFourth     = 5
	Tritone           = 6
	DiminishedFifth   = 6
	PerfectFifth      = 7
	AugmentedFifth    = 8
	MinorSixth        = 8
	MajorSixth        = 9
	AugmentedSixth    = 10
	MinorSeventh      = 10
	MajorSeventh      = 11
	PerfectOctave     = 12
	SemitonesInOctave = PerfectOctave
)

// The same intervals with their Dutch names.
const (
	Prime            = PerfectUnison
	KleineSecunde    = MinorSecond
	GroteSecunde     = MajorSecond
	KleineTerts      = MinorThird
	GroteTerts       = MajorThird
	ReineKwart       = PerfectFourth
	OvermatigeKwart  = Tritone
	VerminderdeKwint = DiminishedFifth
	Tritonus         = Tritone
	ReineKwint       = PerfectFifth
	KleineSext       = MinorSixth
	GroteSext        = MajorSixth
	KleineSeptiem    = MinorSeventh
	GroteSeptiem     = MajorSeventh
	Octaaf           = PerfectOctave
)

func (s Step) String() string {
	switch s {
	case H:
		return "H"
	case W:
		return "W"
	case WH:
		return "WH"
	case WW:
		return "WW"
	}
	return strings.Repeat("H", int(s))
}

// MarshalText encodes the step with its name, so that patterns read as
// [W, W, H, ...] in YAML and JSON instead of bare numbers.
func (s Step) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	str := strings.ToUpper(strings.TrimSpace(string(text)))
	switch str {
	case "H":
		*s = H
	case "W":
		*s = W
	case "WH":
		*s = WH
	case "WW":
		*s = WW
	default:
		if str == "" || strings.Trim(str, "H") != "" {
			return fmt.Errorf("invalid step %q", string(text))
		}
		*s = Step(len(str))
	}
	return nil
}

// Semitones returns the total span of the pattern. For the scales in the
// catalog this is always one octave.
func (p Pattern) Semitones() int {
	ret := 0
	for _, s := range p {
		ret += int(s)
	}
	return ret
}

// Offsets returns the distance of each degree from the root, in semitones.
// The first offset is always 0.
func (p Pattern) Offsets() []int {
	ret := make([]int, len(p))
	acc := 0
	for i, s := range p {
		ret[i] = acc
		acc += int(s)
	}
	return ret
}

// String returns the pattern as space separated step names, e.g. "W W H W W W H".
func (p Pattern) String() string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}

func (p Pattern) clone() Pattern {
	if p == nil {
		return nil
	}
	return append(Pattern(nil), p...)
}
