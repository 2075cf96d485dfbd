package midiscales

import "strconv"

var (
	sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	flatNames  = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}
)

// NoteToText converts a MIDI note number to its name, spelled with flats or
// sharps. If showOctave is set, the octave number is appended, with MIDI note
// 0 being "C-2" and note 60 "C3". A note that does not map to a pitch class,
// i.e. a negative one, is named "!!".
func NoteToText(note int, flats, showOctave bool) string {
	octave := note/12 - 2
	pitchClass := note - (octave+2)*12
	var name string
	switch {
	case pitchClass < 0 || pitchClass >= 12:
		name = "!!"
	case flats:
		name = flatNames[pitchClass]
	default:
		name = sharpNames[pitchClass]
	}
	if showOctave {
		name += strconv.Itoa(octave)
	}
	return name
}

// PitchClass returns the pitch class 0..11 of a MIDI note, C being 0.
func PitchClass(note int) int {
	return ((note % 12) + 12) % 12
}
