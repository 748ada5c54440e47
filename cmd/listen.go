package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/jsphweid/chordflow/midi"
	"github.com/jsphweid/chordflow/model"
	"github.com/spf13/cobra"
)

var listenPort int

func init() {
	listenCmd.Flags().IntVar(&listenPort, "port", 0, "MIDI input port")
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints detected chords as JSON lines",
	Long:  `Prints detected chords as JSON lines`,
	Run: func(cmd *cobra.Command, args []string) {
		listen()
	},
}

func listen() {
	defer midi.CloseDriver()

	events := make(chan model.ChordEvent)
	stop, err := midi.Listen(listenPort, events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open MIDI port %v: %v\n", listenPort, err)
		fmt.Fprintf(os.Stderr, "Available ports: %v\n", midi.ListPorts())
		return
	}
	defer stop()

	fmt.Fprintln(os.Stderr, "Play some chords! Press Ctrl+C to quit.")

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	encoder := json.NewEncoder(os.Stdout)
	for {
		select {
		case evt := <-events:
			encoder.Encode(evt)
		case <-interrupt:
			fmt.Fprintln(os.Stderr, "\nBye!")
			return
		}
	}
}
