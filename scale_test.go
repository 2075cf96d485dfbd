package midiscales_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/vsariola/midiscales"
)

func TestScaleNotesAndModes(t *testing.T) {
	tests := []struct {
		kind  midiscales.ScaleKind
		notes int
		modes int
	}{
		{midiscales.Chromatic, 12, 0},
		{midiscales.Octatonic, 8, 2},
		{midiscales.DominantDiminished, 8, 0},
		{midiscales.Diminished, 8, 0},
		{midiscales.Major, 7, 7},
		{midiscales.Minor, 7, 7},
		{midiscales.MelodicMinor, 7, 7},
		{midiscales.HarmonicMinor, 7, 7},
		{midiscales.Gypsy, 7, 0},
		{midiscales.Symmetrical, 7, 0},
		{midiscales.Enigmatic, 7, 0},
		{midiscales.Arabian, 7, 0},
		{midiscales.Hungarian, 7, 0},
		{midiscales.WholeTone, 6, 0},
		{midiscales.Augmented, 6, 2},
		{midiscales.BluesMajor, 6, 0},
		{midiscales.BluesMinor, 6, 6},
		{midiscales.Pentatonic, 5, 0},
		{midiscales.MinorPentatonic, 5, 0},
	}
	if len(tests) != len(midiscales.ScaleKinds()) {
		t.Fatalf("expected %v kinds, got %v", len(tests), len(midiscales.ScaleKinds()))
	}
	for _, tt := range tests {
		s, err := midiscales.NewScale(tt.kind, 0)
		if err != nil {
			t.Fatalf("NewScale(%v, 0) returned error: %v", tt.kind, err)
		}
		if s.Notes != tt.notes || s.Modes != tt.modes {
			t.Errorf("%v: got %v notes and %v modes, expected %v and %v", tt.kind, s.Notes, s.Modes, tt.notes, tt.modes)
		}
	}
}

func TestEveryPatternSpansAnOctave(t *testing.T) {
	for _, kind := range midiscales.ScaleKinds() {
		modes := max(midiscales.NumModes(kind), 1)
		for mode := 0; mode < modes; mode++ {
			s, err := midiscales.NewScale(kind, mode)
			if err != nil {
				t.Fatalf("NewScale(%v, %v) returned error: %v", kind, mode, err)
			}
			if len(s.Pattern) != s.Notes {
				t.Errorf("%v: pattern has %v steps, expected %v", s, len(s.Pattern), s.Notes)
			}
			if got := s.Pattern.Semitones(); got != midiscales.PerfectOctave {
				t.Errorf("%v: pattern spans %v semitones", s, got)
			}
		}
	}
}

func TestScaleText(t *testing.T) {
	tests := []struct {
		kind     midiscales.ScaleKind
		mode     int
		root     int
		flats    bool
		expected string
	}{
		{midiscales.Major, 0, 60, false, "C D E F G A B "},
		{midiscales.Major, 0, 60, true, "C D E F G A B "},
		{midiscales.Major, 1, 62, false, "D E F G A B C "},
		{midiscales.Minor, 0, 57, false, "A B C D E F G "},
		{midiscales.Major, 0, 61, false, "C# D# F F# G# A# C "},
		{midiscales.Major, 0, 61, true, "Db Eb F Gb Ab Bb C "},
		{midiscales.Pentatonic, 0, 60, false, "C D E G A "},
		{midiscales.WholeTone, 0, 60, false, "C D E F# G# A# "},
		{midiscales.Chromatic, 0, 0, true, "C Db D Eb E F Gb G Ab A Bb B "},
		{midiscales.Diminished, 0, 60, true, "C D Eb F Gb Ab A B "},
	}
	for _, tt := range tests {
		s, err := midiscales.NewScale(tt.kind, tt.mode)
		if err != nil {
			t.Fatalf("NewScale(%v, %v) returned error: %v", tt.kind, tt.mode, err)
		}
		if got := s.Text(tt.root, tt.flats); got != tt.expected {
			t.Errorf("%v from %v: got %q, expected %q", s, tt.root, got, tt.expected)
		}
	}
}

func TestNoteNumbersDoNotWrap(t *testing.T) {
	s, err := midiscales.NewScale(midiscales.Major, 0)
	if err != nil {
		t.Fatalf("NewScale returned error: %v", err)
	}
	expected := []int{250, 252, 254, 255, 257, 259, 261}
	if got := s.NoteNumbers(250); !reflect.DeepEqual(got, expected) {
		t.Fatalf("got %v, expected %v", got, expected)
	}
	if got := s.Text(250, false); got != "A# C D D# F G A " {
		t.Fatalf("got %q", got)
	}
}

func TestModeNames(t *testing.T) {
	tests := []struct {
		kind     midiscales.ScaleKind
		mode     int
		expected string
	}{
		{midiscales.Major, 0, "Ionian"},
		{midiscales.Major, 6, "Locrian"},
		{midiscales.Minor, 0, "Aeolian"},
		{midiscales.Minor, 2, "Ionian"},
		{midiscales.MelodicMinor, 6, "Altered Dominant"},
		{midiscales.HarmonicMinor, 4, "Phrygian major"},
		{midiscales.Major, 7, "?"},
		{midiscales.HarmonicMinor, -1, "?"},
		{midiscales.Octatonic, 1, ""},
		{midiscales.Gypsy, 0, ""},
	}
	for _, tt := range tests {
		if got := midiscales.ModeName(tt.kind, tt.mode); got != tt.expected {
			t.Errorf("ModeName(%v, %v): got %q, expected %q", tt.kind, tt.mode, got, tt.expected)
		}
	}
}

func TestClampedModes(t *testing.T) {
	tests := []struct {
		kind midiscales.ScaleKind
		mode int
	}{
		{midiscales.Octatonic, 5},
		{midiscales.Octatonic, 2},
		{midiscales.BluesMinor, 9},
		{midiscales.BluesMinor, 6},
	}
	for _, tt := range tests {
		got, err := midiscales.NewScale(tt.kind, tt.mode)
		if err != nil {
			t.Fatalf("NewScale(%v, %v) returned error: %v", tt.kind, tt.mode, err)
		}
		expected, err := midiscales.NewScale(tt.kind, 0)
		if err != nil {
			t.Fatalf("NewScale(%v, 0) returned error: %v", tt.kind, err)
		}
		if !reflect.DeepEqual(got, expected) {
			t.Errorf("%v mode %v: got %+v, expected %+v", tt.kind, tt.mode, got, expected)
		}
	}
}

func TestInvalidMode(t *testing.T) {
	for _, kind := range []midiscales.ScaleKind{midiscales.Major, midiscales.Minor, midiscales.MelodicMinor, midiscales.HarmonicMinor, midiscales.Augmented} {
		modes := midiscales.NumModes(kind)
		s, err := midiscales.NewScale(kind, modes)
		var modeErr *midiscales.InvalidModeError
		if !errors.As(err, &modeErr) {
			t.Fatalf("NewScale(%v, %v): expected InvalidModeError, got %v", kind, modes, err)
		}
		if modeErr.Kind != kind || modeErr.Mode != modes {
			t.Errorf("InvalidModeError has wrong values: %+v", modeErr)
		}
		if !reflect.DeepEqual(s, midiscales.Scale{}) {
			t.Errorf("NewScale(%v, %v) returned a non-zero scale on error: %+v", kind, modes, s)
		}
	}
}

func TestSetModeKeepsScaleOnError(t *testing.T) {
	s, err := midiscales.NewScale(midiscales.Major, 3)
	if err != nil {
		t.Fatalf("NewScale returned error: %v", err)
	}
	before := s
	if err := s.SetMode(9); err == nil {
		t.Fatalf("SetMode(9) on major scale should fail")
	}
	if !reflect.DeepEqual(s, before) {
		t.Fatalf("scale changed after failed SetMode: got %+v, expected %+v", s, before)
	}
	if err := s.SetMode(4); err != nil {
		t.Fatalf("SetMode(4) returned error: %v", err)
	}
	if s.ModeName != "Mixolydian" || s.Mode != 4 {
		t.Fatalf("SetMode(4) gave mode %v (%v)", s.Mode, s.ModeName)
	}
}

func TestSetScaleKeepsMode(t *testing.T) {
	s, err := midiscales.NewScale(midiscales.Gypsy, 3)
	if err != nil {
		t.Fatalf("NewScale returned error: %v", err)
	}
	if s.Mode != 3 || s.ModeName != "" {
		t.Fatalf("gypsy scale should keep the raw mode without a name, got %v %q", s.Mode, s.ModeName)
	}
	if err := s.SetScale(midiscales.Major); err != nil {
		t.Fatalf("SetScale(Major) returned error: %v", err)
	}
	if s.ModeName != "Lydian" || s.Notes != 7 || s.Modes != 7 {
		t.Fatalf("unexpected scale after SetScale(Major): %+v", s)
	}
	if err := s.SetScale(midiscales.Octatonic); err != nil {
		t.Fatalf("SetScale(Octatonic) returned error: %v", err)
	}
	if s.Mode != 0 || s.Notes != 8 || s.Modes != 2 || s.ModeName != "" {
		t.Fatalf("mode 3 should be clamped to 0 for octatonic: %+v", s)
	}
	if err := s.SetScale(midiscales.Pentatonic); err != nil {
		t.Fatalf("SetScale(Pentatonic) returned error: %v", err)
	}
	if s.Notes != 5 || s.Modes != 0 {
		t.Fatalf("notes and modes leaked from the previous kind: %+v", s)
	}
}

func TestSetScaleIdempotent(t *testing.T) {
	for _, kind := range midiscales.ScaleKinds() {
		s, err := midiscales.NewScale(kind, 1)
		if err != nil {
			continue // no mode 1 for this kind
		}
		if err := s.SetScale(kind); err != nil {
			t.Fatalf("SetScale(%v) returned error: %v", kind, err)
		}
		first := s
		if err := s.SetScale(kind); err != nil {
			t.Fatalf("SetScale(%v) returned error: %v", kind, err)
		}
		if !reflect.DeepEqual(first, s) {
			t.Errorf("SetScale(%v) is not idempotent: %+v vs %+v", kind, first, s)
		}
	}
}

func TestNewScaleDeterministic(t *testing.T) {
	for _, kind := range midiscales.ScaleKinds() {
		a, errA := midiscales.NewScale(kind, 0)
		b, errB := midiscales.NewScale(kind, 0)
		if errA != nil || errB != nil {
			t.Fatalf("NewScale(%v, 0) returned errors: %v, %v", kind, errA, errB)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("NewScale(%v, 0) is not deterministic", kind)
		}
		// the pattern is a copy; modifying it must not touch the catalog
		a.Pattern[0] = midiscales.WW
		c, _ := midiscales.NewScale(kind, 0)
		if !reflect.DeepEqual(b, c) {
			t.Errorf("modifying a scale pattern changed the catalog for %v", kind)
		}
	}
}

func TestUnknownKind(t *testing.T) {
	kind := midiscales.ScaleKind(42)
	s, err := midiscales.NewScale(kind, 3)
	var kindErr *midiscales.UnknownKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("expected UnknownKindError, got %v", err)
	}
	if s.Notes != 0 || s.Modes != 0 || s.Mode != 0 || s.Pattern != nil {
		t.Fatalf("unknown kind should give a scale without notes, got %+v", s)
	}
	if got := s.Text(60, false); got != "" {
		t.Fatalf("unknown kind should have empty text, got %q", got)
	}
}

func TestParseScaleKind(t *testing.T) {
	tests := []struct {
		input    string
		expected midiscales.ScaleKind
	}{
		{"major", midiscales.Major},
		{"Harmonic minor", midiscales.HarmonicMinor},
		{"melodic-minor", midiscales.MelodicMinor},
		{"BLUES_MINOR", midiscales.BluesMinor},
		{" Dominant Diminished ", midiscales.DominantDiminished},
		{"minor-pentatonic", midiscales.MinorPentatonic},
	}
	for _, tt := range tests {
		got, err := midiscales.ParseScaleKind(tt.input)
		if err != nil {
			t.Fatalf("ParseScaleKind(%q) returned error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseScaleKind(%q): got %v, expected %v", tt.input, got, tt.expected)
		}
	}
	if _, err := midiscales.ParseScaleKind("dorian"); err == nil {
		t.Errorf("ParseScaleKind(\"dorian\") should fail")
	}
}
