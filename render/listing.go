package render

import (
	"fmt"

	"github.com/vsariola/midiscales"
)

type (
	// Listing is every mode of a set of scale kinds spelled from one root
	// note, with a basic triad for each. It is what the templates render and
	// what gets exported as YAML or JSON.
	Listing struct {
		Root    int
		Entries []Entry
	}

	// Entry is one scale in one mode, spelled with sharps and flats.
	Entry struct {
		Scale       midiscales.Scale
		Sharps      string
		Flats       string
		Chord       midiscales.Chord
		ChordSharps string
		ChordFlats  string
	}
)

// NewListing builds a listing of the given kinds at root. With no kinds, all
// kinds of the catalog are listed in enumeration order. Kinds with modes get
// one entry per mode, kinds without get one entry.
func NewListing(root int, kinds ...midiscales.ScaleKind) (Listing, error) {
	if len(kinds) == 0 {
		kinds = midiscales.ScaleKinds()
	}
	l := Listing{Root: root}
	for _, kind := range kinds {
		scale, err := midiscales.NewScale(kind, 0)
		if err != nil {
			return Listing{}, fmt.Errorf("render.NewListing: %v", err)
		}
		for mode := 0; mode < max(scale.Modes, 1); mode++ {
			if scale.Modes > 0 {
				if err := scale.SetMode(mode); err != nil {
					return Listing{}, fmt.Errorf("render.NewListing: %v", err)
				}
			}
			entry, err := newEntry(scale, root)
			if err != nil {
				return Listing{}, fmt.Errorf("render.NewListing: %v", err)
			}
			l.Entries = append(l.Entries, entry)
		}
	}
	return l, nil
}

func newEntry(scale midiscales.Scale, root int) (Entry, error) {
	chord, err := midiscales.NewChord(scale, midiscales.Basic, root)
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		Scale:       scale,
		Sharps:      scale.Text(root, false),
		Flats:       scale.Text(root, true),
		Chord:       chord,
		ChordSharps: chord.Text(false),
		ChordFlats:  chord.Text(true),
	}, nil
}
