package cmd

import (
	"fmt"

	"github.com/jsphweid/chordflow/db"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Lists archived session summaries",
	Long:  `Lists archived session summaries`,
	Run: func(cmd *cobra.Command, args []string) {
		sessions()
	},
}

func sessions() {
	for _, s := range db.GetSessionSummaries() {
		fmt.Printf("%v started %v: %v events, %v chords, most played %v\n",
			s.ID, s.Started, s.NumEvents, s.NumChords, s.MostPlayed)
	}
}
