package main

import (
	"github.com/google/uuid"

	"gridsnake/game"
)

// Session is one game from spawn until every snake is gone. The GameLoop
// replaces it with a fresh one (new id, next seed) after a short delay.
// Caller must hold GameLoop.mu for every method.
type Session struct {
	ID     string
	Engine *game.Engine
	Roster *Roster

	keys   []game.Key // pilot keys not yet applied
	paused bool
	fast   bool

	last   game.Snapshot
	scores map[int]int // final score per snake id, kept after removal

	over      bool
	overTicks int
}

// NewSession builds the engine for cfg
func NewSession(cfg game.Config) (*Session, error) {
	eng, err := game.NewEngine(cfg, nil)
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:     uuid.New().String(),
		Engine: eng,
		Roster: NewRoster(cfg),
		scores: make(map[int]int, cfg.NumSnakes),
	}
	s.last = eng.Snapshot()
	return s, nil
}

// QueueKey buffers a pilot key for the next steps. Returns false if dropped.
func (s *Session) QueueKey(k game.Key) bool {
	if k == game.KeyNone || len(s.keys) >= MaxQueuedKeys {
		return false
	}
	s.keys = append(s.keys, k)
	return true
}

// applyKeys feeds queued keys until one turns a snake. The rest wait for the
// next step since human controllers take one turn per step.
func (s *Session) applyKeys() {
	for len(s.keys) > 0 {
		k := s.keys[0]
		s.keys = s.keys[1:]
		if s.Engine.HandleKey(k) {
			break
		}
	}
}

// Step advances the engine once. Returns the step's events and false once
// the board is empty.
func (s *Session) Step() ([]game.Event, bool) {
	s.applyKeys()
	running := s.Engine.Update()
	s.last = s.Engine.Snapshot()
	for _, st := range s.last.Snakes {
		s.scores[st.ID] = st.Score
	}
	return s.Engine.Events(), running
}

// State returns the last snapshot in wire form
func (s *Session) State() StateMsg {
	speed := 1
	if s.fast {
		speed = FastFactor
	}
	return newStateMsg(s.last, s.Roster, s.paused, speed)
}

// Winner returns the best final score, lower id on ties. -1 with no snakes.
func (s *Session) Winner() (id, score int) {
	id, score = -1, -1
	for sid, sc := range s.scores {
		if sc > score || (sc == score && sid < id) {
			id, score = sid, sc
		}
	}
	if id < 0 {
		score = 0
	}
	return id, score
}
