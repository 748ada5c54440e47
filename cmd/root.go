package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "chordflow",
	Short: "Live chord stream backend",
	Long:  `Detects chords from MIDI input, broadcasts them over websockets and reconstructs transition graphs from recorded sessions.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
