package suggest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordflow/chord"
	"github.com/jsphweid/chordflow/model"
)

// Key is a parsed key signature like "C", "Am" or "F# minor".
type Key struct {
	Root string
	Mode string // "major" or "minor"
}

func (k Key) String() string {
	return k.Root + " " + k.Mode
}

// DefaultWeights favor smooth voice leading over staying near the tonic.
var DefaultWeights = map[string]float64{
	"voiceLeading":  1.0,
	"tonicDistance": 0.5,
}

// insertion/deletion semitone penalty when chord sizes differ
const additionPenalty = 4

type Options struct {
	Top     int
	Goal    string // "resolve" (low tension) or "build" (high tension)
	Weights map[string]float64
}

// ParseKey accepts "C", "Cm", "Am", "Bb", "F# minor", "c major" and the like.
func ParseKey(s string) (Key, error) {
	fields := strings.Fields(strings.TrimSpace(s))
	if len(fields) == 0 {
		return Key{}, errors.New("empty key")
	}

	tok := fields[0]
	root := strings.ToUpper(tok[:1])
	rest := tok[1:]
	if len(rest) > 0 && (rest[0] == '#' || rest[0] == 'b') {
		root += rest[:1]
		rest = rest[1:]
	}
	canonical, ok := chord.NormalizeNote(root)
	if !ok {
		return Key{}, fmt.Errorf("unknown key root in %q", s)
	}

	mode := ""
	switch strings.ToLower(rest) {
	case "":
	case "m", "min", "minor":
		mode = "minor"
	case "maj", "major":
		mode = "major"
	default:
		return Key{}, fmt.Errorf("unknown key mode in %q", s)
	}
	if len(fields) > 1 {
		switch strings.ToLower(fields[1]) {
		case "major", "maj":
			mode = "major"
		case "minor", "min":
			mode = "minor"
		default:
			return Key{}, fmt.Errorf("unknown key mode in %q", s)
		}
	}
	if mode == "" {
		mode = "major"
	}
	return Key{Root: canonical, Mode: mode}, nil
}

// scale degrees with a dominant seventh on V (harmonic V in minor)
var majorDegrees = []int{0, 2, 4, 5, 7, 9, 11}
var majorQualities = []string{"maj", "m", "m", "maj", "7", "m", "dim"}
var minorDegrees = []int{0, 2, 3, 5, 7, 8, 10}
var minorQualities = []string{"m", "dim", "maj", "m", "7", "maj", "maj"}

// Diatonic returns the seven chords of the key as symbols, tonic first.
func Diatonic(key Key) []string {
	rootIdx := chord.NoteIndex(key.Root)
	degrees, qualities := majorDegrees, majorQualities
	if key.Mode == "minor" {
		degrees, qualities = minorDegrees, minorQualities
	}

	res := make([]string, 0, len(degrees))
	for i, offset := range degrees {
		res = append(res, chord.Symbol(chord.NoteNames[(rootIdx+offset)%12], qualities[i]))
	}
	return res
}

// NextChords scores candidate next chords for the current one: the key's
// diatonic seven plus a secondary dominant on each degree. Tension is a
// weighted sum of voice-leading cost and circle-of-fifths distance from the
// tonic; "resolve" surfaces low tension first, "build" high. Deterministic
// for a given input.
func NextChords(current string, key Key, opts Options) []model.Candidate {
	weights := opts.Weights
	if weights == nil {
		weights = DefaultWeights
	}
	top := opts.Top
	if top <= 0 {
		top = 5
	}

	curClasses := pitchClasses(chord.Resolve(current))

	var pool []string
	seen := make(map[string]bool)
	add := func(symbol string) {
		if symbol != current && !seen[symbol] {
			seen[symbol] = true
			pool = append(pool, symbol)
		}
	}
	diatonic := Diatonic(key)
	for _, symbol := range diatonic {
		add(symbol)
	}
	for _, symbol := range diatonic {
		parsed, ok := chord.Parse(symbol)
		if !ok {
			continue
		}
		add(chord.Symbol(parsed.Root, "7"))
	}

	tonicIdx := chord.NoteIndex(key.Root)
	res := make([]model.Candidate, 0, len(pool))
	for _, symbol := range pool {
		notes := chord.Resolve(symbol)
		candClasses := pitchClasses(notes)
		parsed, _ := chord.Parse(symbol)

		tension := weights["voiceLeading"]*voiceLeadingCost(curClasses, candClasses) +
			weights["tonicDistance"]*float64(fifthsDistance(tonicIdx, chord.NoteIndex(parsed.Root)))
		res = append(res, model.Candidate{Chord: symbol, Notes: notes, Tension: tension})
	}

	build := opts.Goal == "build"
	sort.Slice(res, func(i, j int) bool {
		if res[i].Tension != res[j].Tension {
			if build {
				return res[i].Tension > res[j].Tension
			}
			return res[i].Tension < res[j].Tension
		}
		return res[i].Chord < res[j].Chord
	})

	if len(res) > top {
		res = res[:top]
	}
	return res
}

func pitchClasses(notes []string) []int {
	var res []int
	for _, name := range notes {
		if idx := chord.NoteIndex(name); idx >= 0 {
			res = append(res, idx)
		}
	}
	return res
}

// voiceLeadingCost is the total semitone movement mapping each sounding pitch
// class to the nearest one in the candidate, plus a penalty per added or
// dropped voice.
func voiceLeadingCost(from, to []int) float64 {
	if len(from) == 0 || len(to) == 0 {
		return float64(additionPenalty * (len(from) + len(to)))
	}

	var total int
	for _, pc := range from {
		nearest := 12
		for _, other := range to {
			d := circularDistance(pc, other)
			if d < nearest {
				nearest = d
			}
		}
		total += nearest
	}
	diff := len(from) - len(to)
	if diff < 0 {
		diff = -diff
	}
	return float64(total + additionPenalty*diff)
}

func circularDistance(a, b int) int {
	d := a - b
	if d < 0 {
		d = -d
	}
	if d > 6 {
		d = 12 - d
	}
	return d
}

// fifthsDistance counts steps between two pitch classes on the circle of
// fifths, whichever direction is shorter.
func fifthsDistance(a, b int) int {
	if a < 0 || b < 0 {
		return 6
	}
	// multiplying by 7 maps chromatic index to circle-of-fifths position
	pa := a * 7 % 12
	pb := b * 7 % 12
	d := pa - pb
	if d < 0 {
		d = -d
	}
	if d > 6 {
		d = 12 - d
	}
	return d
}
