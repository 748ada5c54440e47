package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/jsphweid/chordflow/chord"
	"github.com/jsphweid/chordflow/history"
	"github.com/jsphweid/chordflow/model"
	"github.com/jsphweid/chordflow/session"
	"github.com/jsphweid/chordflow/suggest"
	"github.com/rs/cors"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Server broadcasts chord events to websocket clients and records the live
// session's transition history.
type Server struct {
	hub     *Hub
	session *session.Session

	// the last suggestion set, so a detected chord can realize a transition
	mu             sync.Mutex
	pendingCurrent model.ChordRef
	pendingCands   []model.ChordRef
}

func New() *Server {
	return &Server{
		hub:     NewHub(),
		session: session.New(),
	}
}

func (s *Server) Session() *session.Session {
	return s.session
}

// Handler builds the full route set: the websocket feed, the ws_server debug
// surface, and the session/graph API the renderer polls.
func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/ws", s.handleWS)
	router.HandleFunc("/debug/publish", s.handlePublish).Methods("POST")
	router.HandleFunc("/debug/publish-test", s.handlePublishTest).Methods("GET")
	router.HandleFunc("/debug/clients", s.handleClients).Methods("GET")
	router.HandleFunc("/api/log-chord", s.handlePublish).Methods("POST")
	router.HandleFunc("/api/session/transition", s.handleTransition).Methods("POST")
	router.HandleFunc("/api/session/graph", s.handleGraph).Methods("GET")
	router.HandleFunc("/api/session/history", s.handleHistory).Methods("GET")
	router.HandleFunc("/api/suggest", s.handleSuggest).Methods("POST")
	return cors.AllowAll().Handler(router)
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("could not upgrade websocket: %v", err)
		return
	}
	s.hub.Add(ws)
	defer func() {
		s.hub.Remove(ws)
		ws.Close()
	}()

	// keep the connection alive; client messages are ignored
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			return
		}
	}
}

// PublishChord broadcasts one chord state. A named chord with no notes gets
// them filled in from the symbol so every rendered node carries labels.
func (s *Server) PublishChord(evt model.ChordEvent) {
	if len(evt.Notes) == 0 && evt.Name != "" {
		evt.Notes = chord.Resolve(evt.Name)
	}
	s.hub.Broadcast(model.ChordMessage{Type: "chord", Chord: evt})
}

func (s *Server) handlePublish(w http.ResponseWriter, r *http.Request) {
	var evt model.ChordEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode chord: "+err.Error())
		return
	}
	s.PublishChord(evt)
	writeJSON(w, model.OkResponse{Ok: true})
}

func (s *Server) handlePublishTest(w http.ResponseWriter, r *http.Request) {
	sample := model.ChordEvent{
		Name:   "Cmaj",
		Notes:  []string{"C", "E", "G"},
		Chroma: []int{1, 0, 0, 0, 1, 0, 0, 1, 0, 0, 0, 0},
	}
	s.PublishChord(sample)
	writeJSON(w, model.ChordMessage{Type: "chord", Chord: sample})
}

func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, model.ClientsResponse{Clients: s.hub.Count()})
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
	var evt model.TransitionEvent
	if err := json.NewDecoder(r.Body).Decode(&evt); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode transition: "+err.Error())
		return
	}

	// replaying the appended history surfaces InvalidIndex before anything
	// is committed
	trial := append(s.session.Snapshot(), evt)
	if _, err := history.Build(trial); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.session.Append(evt)
	if len(evt.Candidates) > 0 {
		chosen := evt.Candidates[evt.ChosenIndex]
		s.PublishChord(model.ChordEvent{Name: chosen.ID})
	}
	writeJSON(w, model.OkResponse{Ok: true})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	graph, err := history.Build(s.session.Snapshot())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, graph)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	events := s.session.Snapshot()
	writeJSON(w, events)
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var body model.SuggestRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "could not decode request: "+err.Error())
		return
	}
	key, err := suggest.ParseKey(body.Key)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	candidates := suggest.NextChords(body.Chord, key, suggest.Options{
		Top:  body.Top,
		Goal: body.Goal,
	})

	refs := make([]model.ChordRef, 0, len(candidates))
	for _, c := range candidates {
		refs = append(refs, model.ChordRef{ID: c.Chord})
	}
	s.setPending(model.ChordRef{ID: body.Chord}, refs)

	writeJSON(w, model.SuggestResponse{
		Chord:      body.Chord,
		Key:        key.String(),
		Goal:       body.Goal,
		Candidates: candidates,
	})
}

func (s *Server) setPending(current model.ChordRef, candidates []model.ChordRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingCurrent = current
	s.pendingCands = candidates
}

// maybeRealize turns a detected chord into a transition when it matches one
// of the candidates from the last suggestion.
func (s *Server) maybeRealize(evt model.ChordEvent) {
	if evt.Name == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, cand := range s.pendingCands {
		if cand.ID == evt.Name {
			s.session.Append(model.TransitionEvent{
				Current:     s.pendingCurrent,
				Candidates:  s.pendingCands,
				ChosenIndex: i,
				Timestamp:   time.Now().UnixMilli(),
			})
			s.pendingCurrent = cand
			s.pendingCands = nil
			return
		}
	}
}

// AttachMIDI drains the listener channel into the hub and the live session.
func (s *Server) AttachMIDI(events <-chan model.ChordEvent) {
	go func() {
		for evt := range events {
			s.hub.Broadcast(model.ChordMessage{Type: "chord", Chord: evt})
			s.maybeRealize(evt)
		}
	}()
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: detail})
}
