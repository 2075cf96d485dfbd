package midiscales

type (
	// scaleDef is one row of the catalog. Kinds without modes have exactly
	// one pattern and modes == 0; kinds with modes have one pattern per mode.
	scaleDef struct {
		name      string
		notes     int
		modes     int
		patterns  []Pattern
		modeNames []string // nil if the modes have no names
		// clamp makes an out of range mode fall back to mode 0 instead of
		// being rejected.
		clamp bool
	}
)

var (
	octatonicPatterns = []Pattern{
		{H, W, H, W, H, W, H, W},
		{W, H, W, H, W, H, W, H},
	}

	majorModeNames = []string{"Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian", "Aeolian", "Locrian"}
)

var catalog = [...]scaleDef{
	Chromatic: {
		name:     "Chromatic",
		notes:    12,
		patterns: []Pattern{{H, H, H, H, H, H, H, H, H, H, H, H}},
	},
	Octatonic: {
		name:     "Octatonic",
		notes:    8,
		modes:    2,
		patterns: octatonicPatterns,
		clamp:    true,
	},
	// Dom13, b9, #9, b5. Same as the first mode of the octatonic scale.
	DominantDiminished: {
		name:     "Dominant Diminished",
		notes:    8,
		patterns: octatonicPatterns[0:1],
	},
	// Dim7, Maj/b9. Same as the second mode of the octatonic scale.
	Diminished: {
		name:     "Diminished",
		notes:    8,
		patterns: octatonicPatterns[1:2],
	},
	Major: {
		name:  "Major",
		notes: 7,
		modes: 7,
		patterns: []Pattern{
			{W, W, H, W, W, W, H},
			{W, H, W, W, W, H, W},
			{H, W, W, W, H, W, W},
			{W, W, W, H, W, W, H},
			{W, W, H, W, W, H, W},
			{W, H, W, W, H, W, W},
			{H, W, W, H, W, W, W},
		},
		modeNames: majorModeNames,
	},
	// The major modes again, starting from the relative minor.
	Minor: {
		name:  "Minor",
		notes: 7,
		modes: 7,
		patterns: []Pattern{
			{W, H, W, W, H, W, W},
			{H, W, W, H, W, W, W},
			{W, W, H, W, W, W, H},
			{W, H, W, W, W, H, W},
			{H, W, W, W, H, W, W},
			{W, W, W, H, W, W, H},
			{W, W, H, W, W, H, W},
		},
		modeNames: []string{"Aeolian", "Locrian", "Ionian", "Dorian", "Phrygian", "Lydian", "Mixolydian"},
	},
	MelodicMinor: {
		name:  "Melodic minor",
		notes: 7,
		modes: 7,
		patterns: []Pattern{
			{W, H, W, W, W, W, H}, // minor major7
			{H, W, W, W, W, H, W}, // minor7 sus4 b9
			{W, W, W, W, H, W, H}, // major7 #4 #5
			{W, W, W, H, W, H, W}, // dominant7 b5
			{W, W, H, W, H, W, W}, // dominant7 b6
			{W, H, W, H, W, W, W}, // minor9 b6
			{H, W, H, W, W, W, W}, // dominant7 #9 b5 #5
		},
		modeNames: []string{"Melodic minor", "Dorian b2", "Lydian augmented", "Mixolydian #11", "Mixolydian b6", "Locrian natural9", "Altered Dominant"},
	},
	HarmonicMinor: {
		name:  "Harmonic minor",
		notes: 7,
		modes: 7,
		patterns: []Pattern{
			{W, H, W, W, H, WH, H}, // minor major7
			{H, W, W, H, WH, H, W}, // minor7 b5
			{W, W, H, WH, H, W, H}, // major7 sus4 #5
			{W, H, WH, H, W, H, W}, // minor7 #11
			{H, WH, H, W, H, W, W}, // dominant7 sus4 b9 #5
			{WH, H, W, H, W, W, H}, // major7 #9 #11
			{H, W, H, W, W, H, WH}, // dim7
		},
		modeNames: []string{"Harmonic minor", "Locrian natural6", "Ionian augmented", "Dorian #11", "Phrygian major", "Lydian #9", "Altered dominant bb7"},
	},
	Gypsy: {
		name:     "Gypsy",
		notes:    7,
		patterns: []Pattern{{W, H, WH, H, H, WH, H}},
	},
	Symmetrical: {
		name:     "Symmetrical",
		notes:    7,
		patterns: []Pattern{{H, W, W, WH, H, H, W}},
	},
	Enigmatic: {
		name:     "Enigmatic",
		notes:    7,
		patterns: []Pattern{{H, WH, W, W, W, H, H}},
	},
	Arabian: {
		name:     "Arabian",
		notes:    7,
		patterns: []Pattern{{W, W, H, H, W, W, W}},
	},
	Hungarian: {
		name:     "Hungarian",
		notes:    7,
		patterns: []Pattern{{WH, H, W, H, W, H, W}},
	},
	// Dom7 #5, b6
	WholeTone: {
		name:     "Whole tone",
		notes:    6,
		patterns: []Pattern{{W, W, W, W, W, W}},
	},
	Augmented: {
		name:  "Augmented",
		notes: 6,
		modes: 2,
		patterns: []Pattern{
			{WH, H, WH, H, WH, H},
			{H, WH, H, WH, H, WH},
		},
	},
	BluesMajor: {
		name:     "Blues major",
		notes:    6,
		patterns: []Pattern{{W, H, H, WH, W, WH}},
	},
	BluesMinor: {
		name:  "Blues minor",
		notes: 6,
		modes: 6,
		patterns: []Pattern{
			{WH, W, H, H, WH, W},
			{W, H, H, WH, W, WH}, // same as blues major
			{H, H, WH, W, WH, W},
			{H, WH, W, WH, W, H},
			{WH, W, WH, W, H, H},
			{W, WH, W, H, H, WH},
		},
		clamp: true,
	},
	Pentatonic: {
		name:     "Pentatonic",
		notes:    5,
		patterns: []Pattern{{W, W, WH, W, WH}},
	},
	MinorPentatonic: {
		name:     "Minor Pentatonic",
		notes:    5,
		patterns: []Pattern{{WH, W, W, WH, W}},
	},
}

// ModeName returns the display name of a mode of the kind. Kinds whose modes
// are unnamed, or that have no modes at all, return "". A mode out of range
// for a kind with named modes returns "?".
func ModeName(kind ScaleKind, mode int) string {
	if !kind.Valid() {
		return ""
	}
	names := catalog[kind].modeNames
	if names == nil {
		return ""
	}
	if mode < 0 || mode >= len(names) {
		return "?"
	}
	return names[mode]
}

// NumNotes returns the number of notes in one octave of the kind, or 0 for
// kinds not in the catalog.
func NumNotes(kind ScaleKind) int {
	if !kind.Valid() {
		return 0
	}
	return catalog[kind].notes
}

// NumModes returns the number of modes of the kind, or 0 if the kind has a
// single fixed pattern.
func NumModes(kind ScaleKind) int {
	if !kind.Valid() {
		return 0
	}
	return catalog[kind].modes
}
