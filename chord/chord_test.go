package chord

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveMajorSeventhDoesNotTruncateMatch(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C", "E", "G", "B"}, Resolve("Cmaj7"))
	assert.Equal([]string{"C", "E", "G"}, Resolve("Cmaj"))
}

func TestResolveEnharmonicSpellings(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"C#", "F", "G#"}, Resolve("Dbmaj"))
	assert.Equal(Resolve("C#maj"), Resolve("Dbmaj"))
	assert.Equal(Resolve("F"), Resolve("E#"))
	assert.Equal(Resolve("C"), Resolve("B#"))
}

func TestResolveStripsSlashBass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"A", "C", "E"}, Resolve("Am/C"))
	assert.Equal(Resolve("Am"), Resolve("Am/C"))
}

func TestResolveFallsBackOnGarbage(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"???"}, Resolve("???"))
	assert.Equal([]string{""}, Resolve(""))
	assert.Equal([]string{"c"}, Resolve("c"))
	assert.Equal([]string{"H7"}, Resolve("H7"))
}

func TestResolveQualities(t *testing.T) {
	cases := map[string][]string{
		"C":      {"C", "E", "G"},
		"Cm":     {"C", "D#", "G"},
		"Cdim":   {"C", "D#", "F#"},
		"Caug":   {"C", "E", "G#"},
		"C7":     {"C", "E", "G", "A#"},
		"Cm7":    {"C", "D#", "G", "A#"},
		"Cdim7":  {"C", "D#", "F#", "A"},
		"Csus2":  {"C", "D", "G"},
		"Csus4":  {"C", "F", "G"},
		"F#m":    {"F#", "A", "C#"},
		"Bb7":    {"A#", "D", "F", "G#"},
		"G#maj7": {"G#", "C", "D#", "G"},
	}

	for symbol, want := range cases {
		t.Run(fmt.Sprintf("resolve %v", symbol), func(t *testing.T) {
			assert.Equal(t, want, Resolve(symbol))
		})
	}
}

func TestResolveUnknownQualityDefaultsToMajor(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Resolve("C"), Resolve("Cxyz"))
	assert.Equal(Resolve("A"), Resolve("Aadd9"))
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	parsed, ok := Parse("Abm7/Eb")
	assert.True(ok)
	assert.Equal("G#", parsed.Root)
	assert.Equal("m7", parsed.Quality)

	parsed, ok = Parse("E")
	assert.True(ok)
	assert.Equal("maj", parsed.Quality)

	_, ok = Parse("???")
	assert.False(ok)
	_, ok = Parse("")
	assert.False(ok)
}
