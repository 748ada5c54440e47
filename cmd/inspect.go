package cmd

import (
	"fmt"

	"github.com/jsphweid/chordflow/session"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspects a saved session",
	Long:  `Inspects a saved session`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	rec := session.Load(path)
	fmt.Printf("session: %v\n", rec.ID)
	fmt.Printf("started: %v\n", rec.Started)
	for step, evt := range rec.Events {
		var candidates []string
		for _, c := range evt.Candidates {
			candidates = append(candidates, c.ID)
		}
		fmt.Printf("step %v: %v -> %v chose %v\n", step, evt.Current.ID, candidates, evt.ChosenIndex)
	}
}
