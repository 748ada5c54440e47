package session

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jsphweid/chordflow/constants"
	"github.com/jsphweid/chordflow/model"
	"github.com/jsphweid/chordflow/util"
)

// Session is the append-only transition log for one run. The graph is never
// kept here; it is rebuilt from a Snapshot on every read.
type Session struct {
	ID      string
	Started time.Time

	mu     sync.Mutex
	events []model.TransitionEvent
}

func New() *Session {
	return &Session{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
}

func (s *Session) Append(evt model.TransitionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, evt)
}

// Snapshot returns a copy so callers can replay without holding the lock.
func (s *Session) Snapshot() []model.TransitionEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]model.TransitionEvent, len(s.events))
	copy(res, s.events)
	return res
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// Record is the gob-serialized form of a finished session.
type Record struct {
	ID      string
	Started time.Time
	Events  []model.TransitionEvent
}

func (s *Session) Record() Record {
	return Record{ID: s.ID, Started: s.Started, Events: s.Snapshot()}
}

// Save writes the record under dir as <id>.session and returns the path.
func Save(r Record, dir string) string {
	path := filepath.Join(dir, r.ID+constants.SessionFileExt)
	util.CreateBinary(path, r)
	return path
}

func Load(path string) Record {
	return util.ReadBinaryOrPanic[Record](path)
}
