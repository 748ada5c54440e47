package chord

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHeldNotesCMajor(t *testing.T) {
	held := map[uint8]bool{60: true, 64: true, 67: true} // C4 E4 G4

	evt := FromHeldNotes(held)

	assert := assert.New(t)
	assert.Equal("C", evt.Name)
	assert.Equal([]string{"C", "E", "G"}, evt.Notes)
	assert.Equal([]int{1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0}, evt.Chroma)
}

func TestFromHeldNotesFoldsOctaves(t *testing.T) {
	held := map[uint8]bool{48: true, 60: true, 64: true, 67: true, 72: true}

	evt := FromHeldNotes(held)

	assert := assert.New(t)
	assert.Equal("C", evt.Name)
	assert.Equal([]string{"C", "E", "G"}, evt.Notes)
}

func TestFromHeldNotesNoName(t *testing.T) {
	assert := assert.New(t)

	// a single note is not a chord
	evt := FromHeldNotes(map[uint8]bool{60: true})
	assert.Equal("", evt.Name)
	assert.Equal([]string{"C"}, evt.Notes)

	// nothing held at all
	evt = FromHeldNotes(map[uint8]bool{})
	assert.Equal("", evt.Name)
	assert.Empty(evt.Notes)
	assert.Equal(make([]int, 12), evt.Chroma)
}

func TestNameFromNotes(t *testing.T) {
	assert := assert.New(t)

	// inversions still name the chord from the matching root
	assert.Equal("Am", NameFromNotes([]string{"C", "E", "A"}))
	assert.Equal("G7", NameFromNotes([]string{"B", "D", "F", "G"}))
	assert.Equal("Dsus4", NameFromNotes([]string{"D", "G", "A"}))

	// flats normalize before matching
	assert.Equal("A#", NameFromNotes([]string{"Bb", "D", "F"}))

	// no known shape
	assert.Equal("", NameFromNotes([]string{"C", "C#", "D"}))
	assert.Equal("", NameFromNotes([]string{"C"}))
	assert.Equal("", NameFromNotes(nil))
}
