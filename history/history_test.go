package history

import (
	"errors"
	"testing"

	"github.com/jsphweid/chordflow/model"
	"github.com/stretchr/testify/assert"
)

func ref(id string) model.ChordRef {
	return model.ChordRef{ID: id}
}

func refs(ids ...string) []model.ChordRef {
	var res []model.ChordRef
	for _, id := range ids {
		res = append(res, ref(id))
	}
	return res
}

func nodeByID(g model.HistoryGraph, id string) *model.GraphNode {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

func linkBetween(g model.HistoryGraph, source, target string) *model.GraphLink {
	for i := range g.Links {
		if g.Links[i].Source == source && g.Links[i].Target == target {
			return &g.Links[i]
		}
	}
	return nil
}

func TestBuildEmptyHistory(t *testing.T) {
	graph, err := Build(nil)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Empty(graph.Nodes)
	assert.Empty(graph.Links)
}

func TestBuildSingleEvent(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B", "C"), ChosenIndex: 0},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(graph.Nodes, 3)
	assert.Len(graph.Links, 2)

	assert.True(nodeByID(graph, "A").WasPlayed)
	assert.True(nodeByID(graph, "B").WasPlayed)
	assert.False(nodeByID(graph, "C").WasPlayed)

	assert.True(linkBetween(graph, "A", "B").WasChosen)
	assert.False(linkBetween(graph, "A", "C").WasChosen)
	assert.Nil(linkBetween(graph, "B", "A"))
}

func TestBuildAggregatesRepeatedTransitions(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B"), ChosenIndex: 0},
		{Current: ref("A"), Candidates: refs("B"), ChosenIndex: 0},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(graph.Nodes, 2)
	assert.Len(graph.Links, 1)
	assert.Equal(2, linkBetween(graph, "A", "B").Count)
	assert.Equal(2, nodeByID(graph, "A").PlayCount)
}

func TestBuildFirstSeenStepKeepsMinimum(t *testing.T) {
	// X first appears as a candidate of the step-2 event (firstSeen 3) and
	// later as current; the earlier value must stick
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B"), ChosenIndex: 0},
		{Current: ref("B"), Candidates: refs("A"), ChosenIndex: 0},
		{Current: ref("A"), Candidates: refs("X", "B"), ChosenIndex: 1},
		{Current: ref("B"), Candidates: refs("A"), ChosenIndex: 0},
		{Current: ref("A"), Candidates: refs("B"), ChosenIndex: 0},
		{Current: ref("X"), Candidates: refs("A"), ChosenIndex: 0},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(3, nodeByID(graph, "X").FirstSeenStep)
	assert.Equal(0, nodeByID(graph, "A").FirstSeenStep)
	assert.Equal(1, nodeByID(graph, "B").FirstSeenStep)
}

func TestBuildInvalidChosenIndex(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B", "C"), ChosenIndex: 5},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.Error(err)
	var invalid *InvalidIndexError
	assert.True(errors.As(err, &invalid))
	assert.Equal(0, invalid.Step)
	assert.Equal(5, invalid.ChosenIndex)
	assert.Equal(2, invalid.NumCandidates)

	// no partial graph on failure
	assert.Empty(graph.Nodes)
	assert.Empty(graph.Links)
}

func TestBuildNegativeChosenIndex(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B"), ChosenIndex: -1},
	}

	_, err := Build(events)
	assert.Error(t, err)
}

func TestBuildEmptyCandidateList(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: nil, ChosenIndex: 0},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Len(graph.Nodes, 1)
	assert.Empty(graph.Links)
	assert.True(nodeByID(graph, "A").WasPlayed)
}

func TestBuildTerminalChordCountsAsPlayed(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B", "C"), ChosenIndex: 1},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.NoError(err)
	// C was only ever a candidate but it was the realized destination
	assert.True(nodeByID(graph, "C").WasPlayed)
	assert.False(nodeByID(graph, "B").WasPlayed)
	// the extra registration must not move firstSeenStep
	assert.Equal(1, nodeByID(graph, "C").FirstSeenStep)
}

func TestBuildIsPureFold(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B", "C"), ChosenIndex: 0},
		{Current: ref("B"), Candidates: refs("A", "C"), ChosenIndex: 1},
	}

	first, err1 := Build(events)
	second, err2 := Build(events)

	assert := assert.New(t)
	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}

func TestBuildNodeOrderFollowsFirstAppearance(t *testing.T) {
	events := []model.TransitionEvent{
		{Current: ref("A"), Candidates: refs("B"), ChosenIndex: 0},
		{Current: ref("B"), Candidates: refs("C", "A"), ChosenIndex: 0},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.NoError(err)
	var ids []string
	for _, n := range graph.Nodes {
		ids = append(ids, n.ID)
	}
	assert.Equal([]string{"A", "B", "C"}, ids)
}

func TestBuildUsesDisplayName(t *testing.T) {
	events := []model.TransitionEvent{
		{
			Current:     model.ChordRef{ID: "Csharpm", Name: "C#m"},
			Candidates:  refs("B"),
			ChosenIndex: 0,
		},
	}

	graph, err := Build(events)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal("C#m", nodeByID(graph, "Csharpm").Name)
	assert.Equal("B", nodeByID(graph, "B").Name)
}
