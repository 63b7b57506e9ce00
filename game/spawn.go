package game

import (
	"github.com/pkg/errors"

	"gridsnake/board"
)

// SpawnPoints lays out n snakes on the board edge, each facing inward.
// Slots sit at the thirds and middles of each edge; which slots are used
// depends on n so that small games stay symmetric.
func SpawnPoints(width, height, n int) ([]Spawn, error) {
	if n <= 0 || n > MaxSnakes {
		return nil, errors.Errorf("spawn count %d outside 1..%d", n, MaxSnakes)
	}

	// Bottom and right slots sit on the last row/column
	maxX, maxY := width-1, height-1
	topLeft := Spawn{board.Cell{X: width / 3, Y: 0}, board.Down}
	topMid := Spawn{board.Cell{X: width / 2, Y: 0}, board.Down}
	topRight := Spawn{board.Cell{X: 2 * width / 3, Y: 0}, board.Down}
	bottomLeft := Spawn{board.Cell{X: width / 3, Y: maxY}, board.Up}
	bottomMid := Spawn{board.Cell{X: width / 2, Y: maxY}, board.Up}
	bottomRight := Spawn{board.Cell{X: 2 * width / 3, Y: maxY}, board.Up}
	leftTop := Spawn{board.Cell{X: 0, Y: height / 3}, board.Right}
	leftMid := Spawn{board.Cell{X: 0, Y: height / 2}, board.Right}
	leftBottom := Spawn{board.Cell{X: 0, Y: 2 * height / 3}, board.Right}
	rightTop := Spawn{board.Cell{X: maxX, Y: height / 3}, board.Left}
	rightMid := Spawn{board.Cell{X: maxX, Y: height / 2}, board.Left}
	rightBottom := Spawn{board.Cell{X: maxX, Y: 2 * height / 3}, board.Left}

	var slots []Spawn
	switch {
	case n == 1:
		slots = []Spawn{topMid}
	case n >= 8:
		slots = []Spawn{
			topLeft, topRight, bottomLeft, bottomRight,
			leftTop, leftBottom, rightTop, rightBottom,
			bottomMid, leftMid, rightMid, topMid,
		}
	case n%2 == 0:
		slots = []Spawn{topLeft, topRight, bottomLeft, bottomRight, leftMid, rightMid}
	default:
		slots = []Spawn{topLeft, topRight, bottomMid, leftMid, rightMid, bottomLeft, bottomRight}
	}
	slots = slots[:n]

	seen := make(map[board.Cell]bool, n)
	for _, s := range slots {
		if seen[s.Cell] {
			return nil, errors.Errorf("board %dx%d too small to separate %d spawns", width, height, n)
		}
		seen[s.Cell] = true
	}
	return slots, nil
}
