package game

import (
	"github.com/pkg/errors"

	"gridsnake/board"
)

// View is the read-only state a controller decides from
type View struct {
	Self          *Snake
	Food          board.Cell
	HasFood       bool
	Width, Height int
	Snakes        []*Snake // every tracked snake, Self included
}

// Blocked reports whether stepping onto c is fatal: off the board or covered
// by any snake, dying snakes included
func (v *View) Blocked(c board.Cell) bool {
	if !c.InBounds(v.Width, v.Height) {
		return true
	}
	for _, s := range v.Snakes {
		if s.Occupies(c) {
			return true
		}
	}
	return false
}

// Controller chooses a snake's direction once per tick.
// Implementations never return the reverse of their current direction.
type Controller interface {
	Kind() Kind
	Direction() board.Cell
	Decide(v *View) board.Cell
}

// heading is the direction state every controller shares
type heading struct {
	dir      board.Cell
	opposite board.Cell
}

func newHeading(dir board.Cell) heading {
	return heading{dir: dir, opposite: dir.Opposite()}
}

// Direction returns the current direction
func (h *heading) Direction() board.Cell {
	return h.dir
}

// turn applies dir unless it reverses the current direction
func (h *heading) turn(dir board.Cell) bool {
	if dir == h.opposite || !dir.IsDirection() {
		return false
	}
	h.dir = dir
	h.opposite = dir.Opposite()
	return true
}

// NewController builds the controller variant for kind, facing dir
func NewController(kind Kind, dir board.Cell) (Controller, error) {
	switch kind {
	case KindHumanArrow, KindHumanWASD, KindHumanCombined:
		return NewHuman(kind, dir), nil
	case KindGreedy:
		return NewGreedy(dir), nil
	case KindAStar:
		return NewAStar(dir), nil
	}
	return nil, errors.Errorf("unknown controller kind %q", kind)
}
