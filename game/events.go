package game

import (
	"fmt"

	"gridsnake/board"
)

// EventType classifies what happened during a tick
type EventType int

const (
	EventAte       EventType = iota // snake ate the food
	EventDied                       // snake collided
	EventRemoved                    // dead snake fully shrunk and dropped
	EventFoodSpawn                  // food placed on a free cell
	EventBoardFull                  // food needed but no free cell left
	EventGrew                       // survival cadence growth
)

var eventNames = [...]string{"ate", "died", "removed", "food", "full", "grew"}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event is one notable change, for hosts that log or play sounds
type Event struct {
	Type    EventType
	SnakeID int // -1 for board-level events
	Cell    board.Cell
	Step    uint64
}

func (e Event) String() string {
	if e.SnakeID < 0 {
		return fmt.Sprintf("step %d: %s at (%d,%d)", e.Step, e.Type, e.Cell.X, e.Cell.Y)
	}
	return fmt.Sprintf("step %d: snake %d %s at (%d,%d)", e.Step, e.SnakeID, e.Type, e.Cell.X, e.Cell.Y)
}
