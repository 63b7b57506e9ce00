package game

import "gridsnake/board"

// --- Min-heap for A* ---

type openEntry struct {
	idx int // flat grid index (y*width + x)
	g   int // steps from the head
	f   int // g + Manhattan to goal
	seq int // push order, breaks f ties first-in first-out
}

type openHeap []openEntry

func (h openHeap) less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}

func (h *openHeap) push(e openEntry) {
	*h = append(*h, e)
	// Sift up
	i := len(*h) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		(*h)[parent], (*h)[i] = (*h)[i], (*h)[parent]
		i = parent
	}
}

func (h *openHeap) pop() openEntry {
	old := *h
	n := len(old)
	e := old[0]
	old[0] = old[n-1]
	*h = old[:n-1]

	// Sift down
	i := 0
	for {
		left := 2*i + 1
		if left >= len(*h) {
			break
		}
		smallest := left
		if right := left + 1; right < len(*h) && h.less(right, left) {
			smallest = right
		}
		if !h.less(smallest, i) {
			break
		}
		(*h)[i], (*h)[smallest] = (*h)[smallest], (*h)[i]
		i = smallest
	}
	return e
}

// AStar follows a shortest path to the food. When the food is unreachable or
// absent it heads for the largest open region instead, to buy time.
//
// Search buffers are sized to the board and reused across ticks; a
// generation stamp replaces clearing them.
type AStar struct {
	heading

	width, height int
	gen           uint32
	stamp         []uint32 // == gen when the cell was reached this search
	gScore        []int
	parent        []int
	open          openHeap
	queue         []int
}

// NewAStar creates an A* controller facing dir
func NewAStar(dir board.Cell) *AStar {
	return &AStar{heading: newHeading(dir)}
}

// Kind returns KindAStar
func (a *AStar) Kind() Kind {
	return KindAStar
}

// Decide picks this tick's direction
func (a *AStar) Decide(v *View) board.Cell {
	head, ok := v.Self.Head()
	if !ok || !head.InBounds(v.Width, v.Height) {
		return a.dir
	}
	a.resize(v.Width, v.Height)

	if v.HasFood {
		if dir, ok := a.pathStep(v, head, v.Food); ok {
			a.turn(dir)
			return a.dir
		}
	}
	if dir, ok := a.roomiestStep(v, head); ok {
		a.turn(dir)
	}
	return a.dir
}

// pathStep runs A* from head to goal and returns the first step's direction
func (a *AStar) pathStep(v *View, head, goal board.Cell) (board.Cell, bool) {
	if !goal.InBounds(v.Width, v.Height) || head == goal {
		return board.Cell{}, false
	}
	a.nextGen()
	start := a.index(head)
	target := a.index(goal)

	seq := 0
	a.open = a.open[:0]
	a.reach(start, 0, -1)
	a.open.push(openEntry{idx: start, g: 0, f: board.Manhattan(head, goal), seq: seq})

	for len(a.open) > 0 {
		e := a.open.pop()
		if e.g != a.gScore[e.idx] {
			continue // stale entry
		}
		if e.idx == target {
			return a.firstStep(head, start, target), true
		}

		cur := a.cell(e.idx)
		for _, dir := range board.Directions {
			if e.idx == start && dir == a.opposite {
				continue
			}
			next := cur.Add(dir)
			if v.Blocked(next) {
				continue
			}
			ni := a.index(next)
			ng := e.g + 1
			if a.stamp[ni] == a.gen && ng >= a.gScore[ni] {
				continue
			}
			a.reach(ni, ng, e.idx)
			seq++
			a.open.push(openEntry{idx: ni, g: ng, f: ng + board.Manhattan(next, goal), seq: seq})
		}
	}
	return board.Cell{}, false
}

// firstStep walks parents back from target to the cell adjacent to start
func (a *AStar) firstStep(head board.Cell, start, target int) board.Cell {
	idx := target
	for a.parent[idx] != start {
		idx = a.parent[idx]
	}
	next := a.cell(idx)
	return board.Cell{X: next.X - head.X, Y: next.Y - head.Y}
}

// roomiestStep returns the first legal move whose reachable free region is
// largest. False when no move is legal.
func (a *AStar) roomiestStep(v *View, head board.Cell) (board.Cell, bool) {
	var best board.Cell
	bestSize := -1
	for _, dir := range board.Directions {
		if dir == a.opposite {
			continue
		}
		next := head.Add(dir)
		if v.Blocked(next) {
			continue
		}
		if n := a.regionSize(v, next); n > bestSize {
			best = dir
			bestSize = n
		}
	}
	return best, bestSize >= 0
}

// regionSize counts free cells reachable from from, from included
func (a *AStar) regionSize(v *View, from board.Cell) int {
	a.nextGen()
	a.queue = a.queue[:0]
	start := a.index(from)
	a.stamp[start] = a.gen
	a.queue = append(a.queue, start)

	for i := 0; i < len(a.queue); i++ {
		cur := a.cell(a.queue[i])
		for _, dir := range board.Directions {
			next := cur.Add(dir)
			if v.Blocked(next) {
				continue
			}
			ni := a.index(next)
			if a.stamp[ni] == a.gen {
				continue
			}
			a.stamp[ni] = a.gen
			a.queue = append(a.queue, ni)
		}
	}
	return len(a.queue)
}

func (a *AStar) reach(idx, g, parent int) {
	a.stamp[idx] = a.gen
	a.gScore[idx] = g
	a.parent[idx] = parent
}

func (a *AStar) resize(width, height int) {
	if a.width == width && a.height == height && a.stamp != nil {
		return
	}
	size := width * height
	a.width, a.height = width, height
	a.stamp = make([]uint32, size)
	a.gScore = make([]int, size)
	a.parent = make([]int, size)
	a.open = make(openHeap, 0, size/4)
	a.queue = make([]int, 0, size)
	a.gen = 0
}

func (a *AStar) nextGen() {
	a.gen++
	if a.gen == 0 {
		// Wrapped: stale stamps could alias the new generation
		for i := range a.stamp {
			a.stamp[i] = 0
		}
		a.gen = 1
	}
}

func (a *AStar) index(c board.Cell) int {
	return c.Y*a.width + c.X
}

func (a *AStar) cell(idx int) board.Cell {
	return board.Cell{X: idx % a.width, Y: idx / a.width}
}
