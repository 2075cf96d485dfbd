/*
Package midiscales is a catalog of musical scales, defined as patterns of
half and whole steps, with helpers to spell them out from a MIDI root note
and to sample basic triads from them.

	s, err := midiscales.NewScale(midiscales.Major, 0)
	...
	s.Text(60, false) // "C D E F G A B "
	c, err := midiscales.NewChord(s, midiscales.Basic, 60)
	...
	c.Text(false) // "( C,E,G)"

MIDI note 0 is named C-2, so middle C (60) is C3.
*/
package midiscales
