package chord

import (
	"github.com/jsphweid/chordflow/model"
)

// preference order when more than one (root, quality) fits a pitch-class set,
// e.g. dim7 and aug are rotationally symmetric
var namingOrder = []string{"maj", "m", "7", "maj7", "m7", "dim", "dim7", "aug", "sus2", "sus4"}

var qualitySuffix = map[string]string{
	"maj":  "",
	"m":    "m",
	"dim":  "dim",
	"aug":  "aug",
	"7":    "7",
	"maj7": "maj7",
	"m7":   "m7",
	"dim7": "dim7",
	"sus2": "sus2",
	"sus4": "sus4",
}

// Symbol renders root + quality as a conventional chord symbol ("C", "Am",
// "G7").
func Symbol(root, quality string) string {
	return root + qualitySuffix[quality]
}

// FromHeldNotes reduces the currently held MIDI note numbers to a chord
// event: sorted pitch classes, chroma bitmask and a best-effort name.
func FromHeldNotes(held map[uint8]bool) model.ChordEvent {
	chroma := make([]int, 12)
	for note := range held {
		chroma[int(note)%12] = 1
	}

	var notes []string
	for pc := 0; pc < 12; pc++ {
		if chroma[pc] == 1 {
			notes = append(notes, NoteNames[pc])
		}
	}

	return model.ChordEvent{
		Name:   NameFromNotes(notes),
		Notes:  notes,
		Chroma: chroma,
	}
}

// NameFromNotes guesses a chord symbol whose interval pattern exactly matches
// the given pitch classes, trying each note as a candidate root in order.
// Fewer than two distinct pitch classes, or no matching shape, yields "".
func NameFromNotes(notes []string) string {
	if len(notes) < 2 {
		return ""
	}

	var classes []int
	var seen [12]bool
	for _, name := range notes {
		canonical, ok := NormalizeNote(name)
		if !ok {
			return ""
		}
		pc := NoteIndex(canonical)
		if !seen[pc] {
			seen[pc] = true
			classes = append(classes, pc)
		}
	}

	for _, rootIdx := range classes {
		var offsets [12]bool
		for _, pc := range classes {
			offsets[(pc-rootIdx+12)%12] = true
		}
		for _, quality := range namingOrder {
			if matchesIntervals(offsets, len(classes), QualityIntervals[quality]) {
				return Symbol(NoteNames[rootIdx], quality)
			}
		}
	}
	return ""
}

func matchesIntervals(offsets [12]bool, size int, intervals []int) bool {
	if size != len(intervals) {
		return false
	}
	for _, offset := range intervals {
		if !offsets[offset] {
			return false
		}
	}
	return true
}
