package model

// ChordRef identifies a chord in a transition history. ID is the stable
// identity key (normally the chord symbol itself); Name is an optional
// display override.
type ChordRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

func (r ChordRef) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}

// TransitionEvent is one realized progression step: the chord that was
// current, the candidates offered next, and which one was chosen.
type TransitionEvent struct {
	Current     ChordRef   `json:"current"`
	Candidates  []ChordRef `json:"candidates"`
	ChosenIndex int        `json:"chosenIndex"`
	Timestamp   int64      `json:"timestamp"`
}

type GraphNode struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PlayCount     int    `json:"playCount"`
	WasPlayed     bool   `json:"wasPlayed"`
	FirstSeenStep int    `json:"firstSeenStep"`
}

type GraphLink struct {
	Source    string `json:"source"`
	Target    string `json:"target"`
	Count     int    `json:"count"`
	WasChosen bool   `json:"wasChosen"`
}

// HistoryGraph is the node/link shape the force-graph renderer consumes.
// Nodes and links appear in first-registration order.
type HistoryGraph struct {
	Nodes []GraphNode `json:"nodes"`
	Links []GraphLink `json:"links"`
}
