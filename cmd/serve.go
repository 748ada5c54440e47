package cmd

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"

	"github.com/jsphweid/chordflow/constants"
	"github.com/jsphweid/chordflow/db"
	"github.com/jsphweid/chordflow/midi"
	"github.com/jsphweid/chordflow/model"
	"github.com/jsphweid/chordflow/server"
	"github.com/jsphweid/chordflow/session"
	"github.com/jsphweid/chordflow/util"
	"github.com/spf13/cobra"
)

var serveAddr string
var serveMidiPort int

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetServeAddr(), "listen address")
	serveCmd.Flags().IntVar(&serveMidiPort, "midi-port", -1, "MIDI input port to listen on (-1 disables MIDI)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the chord websocket server",
	Long:  `Runs the chord websocket server`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func serve() {
	srv := server.New()

	if serveMidiPort >= 0 {
		defer midi.CloseDriver()
		events := make(chan model.ChordEvent)
		stop, err := midi.Listen(serveMidiPort, events)
		if err != nil {
			fmt.Printf("Could not open MIDI port %v: %v\n", serveMidiPort, err)
			fmt.Printf("Available ports: %v\n", midi.ListPorts())
			return
		}
		defer stop()
		srv.AttachMIDI(events)
		fmt.Printf("Listening on MIDI port %v\n", serveMidiPort)
	}

	go func() {
		log.Fatal(http.ListenAndServe(serveAddr, srv.Handler()))
	}()
	fmt.Printf("Serving on %v\n", serveAddr)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	<-interrupt

	if srv.Session().Len() == 0 {
		return
	}

	rec := srv.Session().Record()
	util.EnsureSessionDir()
	path := session.Save(rec, constants.GetSessionDir())
	fmt.Printf("Saved session %v to %v\n", rec.ID, path)

	if constants.GetDynamoEndpoint() != "" {
		db.PutSessionSummary(db.Summarize(rec))
		fmt.Println("Archived session summary")
	}
}
