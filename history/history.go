package history

import (
	"fmt"

	"github.com/jsphweid/chordflow/model"
)

// InvalidIndexError reports a transition event whose chosenIndex does not
// point into its candidate list. The whole build fails rather than clamping
// or skipping: bad upstream data must not silently corrupt the counts.
type InvalidIndexError struct {
	Step          int
	ChosenIndex   int
	NumCandidates int
}

func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("event %v: chosenIndex %v out of range for %v candidates",
		e.Step, e.ChosenIndex, e.NumCandidates)
}

type builder struct {
	nodes     map[string]*model.GraphNode
	nodeOrder []string
	links     map[string]*model.GraphLink
	linkOrder []string
}

func newBuilder() *builder {
	return &builder{
		nodes: make(map[string]*model.GraphNode),
		links: make(map[string]*model.GraphLink),
	}
}

// registerNode merges one appearance into the node map: firstSeenStep keeps
// its minimum, wasPlayed never regresses, playCount adds per played
// appearance.
func (b *builder) registerNode(ref model.ChordRef, played bool, step int) {
	n, ok := b.nodes[ref.ID]
	if !ok {
		n = &model.GraphNode{
			ID:            ref.ID,
			Name:          ref.DisplayName(),
			FirstSeenStep: step,
		}
		b.nodes[ref.ID] = n
		b.nodeOrder = append(b.nodeOrder, ref.ID)
	}
	if step < n.FirstSeenStep {
		n.FirstSeenStep = step
	}
	if played {
		n.PlayCount++
		n.WasPlayed = true
	}
}

// registerLink merges one observed source->target offering: count adds,
// wasChosen never regresses. The reverse direction is never implied.
func (b *builder) registerLink(source, target string, chosen bool) {
	key := source + "->" + target
	l, ok := b.links[key]
	if !ok {
		l = &model.GraphLink{Source: source, Target: target}
		b.links[key] = l
		b.linkOrder = append(b.linkOrder, key)
	}
	l.Count++
	if chosen {
		l.WasChosen = true
	}
}

func (b *builder) graph() model.HistoryGraph {
	g := model.HistoryGraph{
		Nodes: make([]model.GraphNode, 0, len(b.nodeOrder)),
		Links: make([]model.GraphLink, 0, len(b.linkOrder)),
	}
	for _, id := range b.nodeOrder {
		g.Nodes = append(g.Nodes, *b.nodes[id])
	}
	for _, key := range b.linkOrder {
		g.Links = append(g.Links, *b.links[key])
	}
	return g
}

// Build folds an ordered transition history into a deduplicated node/link
// graph. Every call is a full replay: the result is a pure function of the
// event list, never of prior builds.
func Build(events []model.TransitionEvent) (model.HistoryGraph, error) {
	b := newBuilder()

	for step, evt := range events {
		// an empty candidate list is legal and leaves nothing to index into
		if len(evt.Candidates) > 0 &&
			(evt.ChosenIndex < 0 || evt.ChosenIndex >= len(evt.Candidates)) {
			return model.HistoryGraph{}, &InvalidIndexError{
				Step:          step,
				ChosenIndex:   evt.ChosenIndex,
				NumCandidates: len(evt.Candidates),
			}
		}

		b.registerNode(evt.Current, true, step)
		for i, cand := range evt.Candidates {
			chosen := i == evt.ChosenIndex
			b.registerNode(cand, chosen, step+1)
			b.registerLink(evt.Current.ID, cand.ID, chosen)
		}
	}

	// the terminal realized chord may only ever have been seen as a
	// candidate; register it once more as played past the last step
	if len(events) > 0 {
		last := events[len(events)-1]
		if len(last.Candidates) > 0 {
			b.registerNode(last.Candidates[last.ChosenIndex], true, len(events))
		}
	}

	return b.graph(), nil
}
