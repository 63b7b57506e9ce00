package game

import "gridsnake/board"

// SnakeState is one snake as seen by renderers
type SnakeState struct {
	ID        int
	Kind      Kind
	Body      []board.Cell // head-first
	Direction board.Cell
	Alive     bool
	Score     int
}

// Snapshot is a detached copy of the board after a tick. Hosts render and
// serialize it without holding the engine.
type Snapshot struct {
	Step          uint64
	Width, Height int
	Mode          Mode
	Food          board.Cell
	HasFood       bool
	Snakes        []SnakeState // ascending id
}

// Snapshot copies the current state
func (e *Engine) Snapshot() Snapshot {
	food, hasFood := e.food.Position()
	snap := Snapshot{
		Step:    e.step,
		Width:   e.width,
		Height:  e.height,
		Mode:    e.cfg.Mode,
		Food:    food,
		HasFood: hasFood,
		Snakes:  make([]SnakeState, 0, len(e.list)),
	}
	for _, s := range e.list {
		ctrl := e.controllers[s.ID]
		snap.Snakes = append(snap.Snakes, SnakeState{
			ID:        s.ID,
			Kind:      ctrl.Kind(),
			Body:      s.Body(),
			Direction: ctrl.Direction(),
			Alive:     s.Alive(),
			Score:     s.Score,
		})
	}
	return snap
}

// Winner returns the id of the highest scoring snake still tracked, ties to
// the lower id. False when the board is empty.
func (s Snapshot) Winner() (int, bool) {
	best, bestScore := -1, -1
	for _, st := range s.Snakes {
		if st.Score > bestScore {
			best, bestScore = st.ID, st.Score
		}
	}
	return best, best >= 0
}
