package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/jsphweid/chordflow/chord"
	"github.com/jsphweid/chordflow/constants"
	"github.com/jsphweid/chordflow/db"
	"github.com/jsphweid/chordflow/history"
	"github.com/jsphweid/chordflow/model"
	"github.com/jsphweid/chordflow/session"
	"github.com/jsphweid/chordflow/suggest"
	"github.com/jsphweid/chordflow/util"
	"github.com/spf13/cobra"
)

var mockKey string
var mockSteps int
var mockSeed int64
var mockGoal string

func init() {
	mockCmd.Flags().StringVar(&mockKey, "key", "C", "key to generate in")
	mockCmd.Flags().IntVar(&mockSteps, "steps", 16, "number of transitions")
	mockCmd.Flags().Int64Var(&mockSeed, "seed", 0, "random seed (0 means current time)")
	mockCmd.Flags().StringVar(&mockGoal, "goal", "resolve", "suggestion goal: resolve or build")
	rootCmd.AddCommand(mockCmd)
}

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Generates and saves a mock session",
	Long:  `Generates and saves a mock session`,
	Run: func(cmd *cobra.Command, args []string) {
		mock()
	},
}

func mock() {
	key, err := suggest.ParseKey(mockKey)
	if err != nil {
		panic("Could not parse key because: " + err.Error())
	}

	seed := mockSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))

	sess := session.New()
	current := suggest.Diatonic(key)[0]
	now := time.Now().UnixMilli()

	for step := 0; step < mockSteps; step++ {
		candidates := suggest.NextChords(current, key, suggest.Options{Top: 4, Goal: mockGoal})
		if len(candidates) == 0 {
			break
		}

		refs := make([]model.ChordRef, 0, len(candidates))
		for _, c := range candidates {
			refs = append(refs, model.ChordRef{ID: c.Chord})
		}

		// bias toward the lower-tension end of the list
		chosen := util.Min(r.Intn(len(refs)), r.Intn(len(refs)))

		sess.Append(model.TransitionEvent{
			Current:     model.ChordRef{ID: current},
			Candidates:  refs,
			ChosenIndex: chosen,
			Timestamp:   now + int64(step)*1000,
		})
		current = refs[chosen].ID
	}

	util.EnsureSessionDir()
	rec := sess.Record()
	path := session.Save(rec, constants.GetSessionDir())

	graph, err := history.Build(rec.Events)
	if err != nil {
		panic("Could not build graph because: " + err.Error())
	}

	fmt.Printf("Saved session %v to %v\n", rec.ID, path)
	fmt.Printf("seed: %v\n", seed)
	fmt.Printf("events: %v nodes: %v links: %v\n", len(rec.Events), len(graph.Nodes), len(graph.Links))
	for _, node := range graph.Nodes {
		fmt.Printf("  %v played %v times (notes: %v)\n", node.Name, node.PlayCount, chord.Resolve(node.ID))
	}

	if constants.GetDynamoEndpoint() != "" {
		db.PutSessionSummary(db.Summarize(rec))
		fmt.Println("Archived session summary")
	}
}
