package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/chordflow/util"
)

// NoteNames is the fixed chromatic sequence every spelling is canonicalized
// into before any interval arithmetic.
var NoteNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flats plus the two unusual sharps
var enharmonics = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"E#": "F",
	"B#": "C",
}

// QualityIntervals maps each known quality to its semitone offsets from the
// root. Offset order is emission order: root first, not pitch-ascending.
var QualityIntervals = map[string][]int{
	"maj":  {0, 4, 7},
	"m":    {0, 3, 7},
	"dim":  {0, 3, 6},
	"aug":  {0, 4, 8},
	"7":    {0, 4, 7, 10},
	"maj7": {0, 4, 7, 11},
	"m7":   {0, 3, 7, 10},
	"dim7": {0, 3, 6, 9},
	"sus2": {0, 2, 7},
	"sus4": {0, 5, 7},
}

// longest first so "maj7" never matches as "maj"
var qualitiesByLength = sortQualityKeys()

func sortQualityKeys() []string {
	keys := util.GetKeys(QualityIntervals)
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys
}

type Parsed struct {
	Root    string
	Quality string
}

// NormalizeNote canonicalizes an enharmonic spelling into NoteNames and
// reports whether the result is a member of the chromatic sequence.
func NormalizeNote(name string) (string, bool) {
	if canonical, ok := enharmonics[name]; ok {
		name = canonical
	}
	return name, NoteIndex(name) >= 0
}

// NoteIndex returns the chromatic index of a canonical note name, -1 if the
// name is not in NoteNames.
func NoteIndex(name string) int {
	for i, n := range NoteNames {
		if n == name {
			return i
		}
	}
	return -1
}

// Parse splits a chord symbol into a canonical root and quality. Anything
// after a slash (bass-note override) is discarded. Returns false when no root
// token can be matched.
func Parse(symbol string) (Parsed, bool) {
	base := symbol
	if i := strings.Index(base, "/"); i >= 0 {
		base = base[:i]
	}
	if len(base) == 0 || base[0] < 'A' || base[0] > 'G' {
		return Parsed{}, false
	}

	root := base[:1]
	rest := base[1:]
	if len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		root += rest[:1]
		rest = rest[1:]
	}

	quality := "maj"
	for _, q := range qualitiesByLength {
		if strings.HasPrefix(rest, q) {
			quality = q
			break
		}
	}

	root, ok := NormalizeNote(root)
	if !ok {
		return Parsed{}, false
	}
	return Parsed{Root: root, Quality: quality}, true
}

// Resolve maps a chord symbol to its pitch classes in interval-table order.
// Unparseable input degrades to a one-element slice holding the raw symbol so
// the renderer can still label the node.
func Resolve(symbol string) []string {
	parsed, ok := Parse(symbol)
	if !ok {
		return []string{symbol}
	}

	rootIdx := NoteIndex(parsed.Root)
	intervals := QualityIntervals[parsed.Quality]
	notes := make([]string, 0, len(intervals))
	for _, offset := range intervals {
		notes = append(notes, NoteNames[(rootIdx+offset)%12])
	}
	return notes
}
