package midi

import (
	"sync"

	"github.com/bep/debounce"
	"github.com/jsphweid/chordflow/chord"
	"github.com/jsphweid/chordflow/constants"
	"github.com/jsphweid/chordflow/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

func ListPorts() []string {
	var res []string
	for _, in := range gomidi.GetInPorts() {
		res = append(res, in.String())
	}
	return res
}

func CloseDriver() {
	gomidi.CloseDriver()
}

// Listen opens the given input port and emits one ChordEvent per settled
// held-note state. Near-simultaneous note-ons are grouped by a short debounce
// so a strummed chord arrives as a single event. The returned func stops
// listening.
func Listen(portNum int, events chan<- model.ChordEvent) (func(), error) {
	in, err := gomidi.InPort(portNum)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	held := make(map[uint8]bool)
	debounced := debounce.New(constants.DebounceInterval)

	emit := func() {
		mu.Lock()
		evt := chord.FromHeldNotes(held)
		mu.Unlock()
		events <- evt
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			mu.Lock()
			held[key] = true
			mu.Unlock()
			debounced(emit)
		case msg.GetNoteEnd(&ch, &key):
			mu.Lock()
			delete(held, key)
			mu.Unlock()
			debounced(emit)
		default:
			// ignore
		}
	})
	if err != nil {
		return nil, err
	}
	return stop, nil
}
