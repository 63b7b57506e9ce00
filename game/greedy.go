package game

import "gridsnake/board"

// Greedy looks one step ahead: of the safe non-reversing moves it takes the
// one that lands closest to the food. With no safe move it keeps going.
type Greedy struct {
	heading
}

// NewGreedy creates a greedy controller facing dir
func NewGreedy(dir board.Cell) *Greedy {
	return &Greedy{heading: newHeading(dir)}
}

// Kind returns KindGreedy
func (g *Greedy) Kind() Kind {
	return KindGreedy
}

// Decide picks this tick's direction
func (g *Greedy) Decide(v *View) board.Cell {
	head, ok := v.Self.Head()
	if !ok {
		return g.dir
	}

	best := g.dir
	bestDist := -1
	for _, dir := range board.Directions {
		if dir == g.opposite {
			continue
		}
		next := head.Add(dir)
		if v.Blocked(next) {
			continue
		}
		if !v.HasFood {
			best = dir
			break
		}
		if d := board.Manhattan(next, v.Food); bestDist < 0 || d < bestDist {
			best = dir
			bestDist = d
		}
	}

	g.turn(best)
	return g.dir
}
