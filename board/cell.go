package board

// Cell is a discrete grid coordinate. Also used as a unit direction vector.
type Cell struct {
	X, Y int
}

// Unit directions. Y grows downward.
var (
	Up    = Cell{X: 0, Y: -1}
	Down  = Cell{X: 0, Y: 1}
	Left  = Cell{X: -1, Y: 0}
	Right = Cell{X: 1, Y: 0}
)

// Directions is the fixed candidate order used by every AI controller
var Directions = [4]Cell{Up, Down, Left, Right}

// Add returns c translated by d
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Opposite returns the reversed vector
func (c Cell) Opposite() Cell {
	return Cell{X: -c.X, Y: -c.Y}
}

// IsDirection reports whether c is one of the four unit vectors
func (c Cell) IsDirection() bool {
	return c == Up || c == Down || c == Left || c == Right
}

// InBounds reports whether c lies inside a width x height grid
func (c Cell) InBounds(width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

// Manhattan returns |dx| + |dy|
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
