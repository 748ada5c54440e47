package cmd

import (
	"fmt"
	"sort"

	"github.com/jsphweid/chordflow/constants"
	"github.com/jsphweid/chordflow/history"
	"github.com/jsphweid/chordflow/session"
	"github.com/jsphweid/chordflow/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report over saved sessions",
	Long:  `Creates a report over saved sessions`,
	Run: func(cmd *cobra.Command, args []string) {
		report()
	},
}

type sessionsReport struct {
	numSessions int64
	numEvents   int64
	playCounts  map[string]int
}

func analyzeSessions() sessionsReport {
	res := sessionsReport{playCounts: make(map[string]int)}

	paths := util.GatherAllSessionPaths(constants.GetSessionDir())
	for _, path := range paths {
		rec := session.Load(path)
		graph, err := history.Build(rec.Events)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}

		res.numSessions += 1
		res.numEvents += int64(len(rec.Events))
		for _, node := range graph.Nodes {
			res.playCounts[node.ID] += node.PlayCount
		}
	}

	return res
}

func report() {
	res := analyzeSessions()

	fmt.Printf("sessions: %v\n", res.numSessions)
	fmt.Printf("events: %v\n", res.numEvents)
	fmt.Printf("distinct chords: %v\n", len(res.playCounts))

	chords := util.GetKeys(res.playCounts)
	sort.Slice(chords, func(i, j int) bool {
		if res.playCounts[chords[i]] != res.playCounts[chords[j]] {
			return res.playCounts[chords[i]] > res.playCounts[chords[j]]
		}
		return chords[i] < chords[j]
	})

	top := util.Min(len(chords), 5)
	fmt.Println("most played:")
	for _, c := range chords[:top] {
		fmt.Printf("  %v: %v\n", c, res.playCounts[c])
	}
}
