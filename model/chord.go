package model

// ChordEvent is one detected or published chord state: the symbol (may be
// empty when no known shape matches), the sounding pitch classes, and a
// 12-slot chroma bitmask.
type ChordEvent struct {
	Name   string   `json:"name"`
	Notes  []string `json:"notes"`
	Chroma []int    `json:"chroma"`
}

// Candidate is one suggested next chord with its tension score.
type Candidate struct {
	Chord   string   `json:"chord"`
	Notes   []string `json:"notes"`
	Tension float64  `json:"tension"`
}
