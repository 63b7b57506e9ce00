package game

import "gridsnake/board"

// Key is a backend-agnostic key identifier. Hosts translate their own key
// events (terminal, browser) into these.
type Key int

const (
	KeyNone Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
)

var keyNames = map[Key]string{
	KeyArrowUp:    "ArrowUp",
	KeyArrowDown:  "ArrowDown",
	KeyArrowLeft:  "ArrowLeft",
	KeyArrowRight: "ArrowRight",
	KeyW:          "w",
	KeyA:          "a",
	KeyS:          "s",
	KeyD:          "d",
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return "none"
}

// ParseKey maps a name as produced by String (browser KeyboardEvent.key
// values) back to a Key. Letter keys are case-insensitive.
func ParseKey(name string) Key {
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	switch name {
	case "W":
		return KeyW
	case "A":
		return KeyA
	case "S":
		return KeyS
	case "D":
		return KeyD
	}
	return KeyNone
}

// KeyTable maps keys to directions for one human control scheme
type KeyTable map[Key]board.Cell

var (
	arrowKeys = KeyTable{
		KeyArrowUp:    board.Up,
		KeyArrowDown:  board.Down,
		KeyArrowLeft:  board.Left,
		KeyArrowRight: board.Right,
	}
	wasdKeys = KeyTable{
		KeyW: board.Up,
		KeyS: board.Down,
		KeyA: board.Left,
		KeyD: board.Right,
	}
	combinedKeys = KeyTable{
		KeyArrowUp:    board.Up,
		KeyArrowDown:  board.Down,
		KeyArrowLeft:  board.Left,
		KeyArrowRight: board.Right,
		KeyW:          board.Up,
		KeyS:          board.Down,
		KeyA:          board.Left,
		KeyD:          board.Right,
	}
)

// KeyTableFor returns the bindings of a human kind, nil for AI kinds
func KeyTableFor(kind Kind) KeyTable {
	switch kind {
	case KindHumanArrow:
		return arrowKeys
	case KindHumanWASD:
		return wasdKeys
	case KindHumanCombined:
		return combinedKeys
	}
	return nil
}

// Human follows key events. Only the first direction change per tick is
// taken; later keys are dropped until Decide consumes the direction, so two
// quick presses cannot fold the snake back onto itself.
type Human struct {
	heading
	kind    Kind
	keys    KeyTable
	changed bool
}

// NewHuman creates a human controller for one of the human kinds
func NewHuman(kind Kind, dir board.Cell) *Human {
	return &Human{
		heading: newHeading(dir),
		kind:    kind,
		keys:    KeyTableFor(kind),
	}
}

// Kind returns the control scheme
func (h *Human) Kind() Kind {
	return h.kind
}

// HandleKey applies a key-down. Returns true if the direction changed.
func (h *Human) HandleKey(k Key) bool {
	if h.changed {
		return false
	}
	dir, ok := h.keys[k]
	if !ok || dir == h.dir {
		return false
	}
	if !h.turn(dir) {
		return false
	}
	h.changed = true
	return true
}

// Decide returns the latched direction and re-arms key handling
func (h *Human) Decide(_ *View) board.Cell {
	h.changed = false
	return h.dir
}
