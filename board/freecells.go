package board

// Source is the subset of a seeded RNG that sampling needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

// FreeCells indexes every unoccupied grid cell for O(1) insert, remove and
// uniform sampling. Removal swaps the target with the last element, so an
// index into the list is only meaningful until the next mutation.
type FreeCells struct {
	list []Cell
	pos  map[Cell]int
}

// NewFreeCells fills the index with every cell of a width x height grid
// except the excluded ones
func NewFreeCells(width, height int, excluded ...Cell) *FreeCells {
	size := width * height
	if size < 0 {
		size = 0
	}
	f := &FreeCells{
		list: make([]Cell, 0, size),
		pos:  make(map[Cell]int, size),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := Cell{X: x, Y: y}
			f.pos[c] = len(f.list)
			f.list = append(f.list, c)
		}
	}
	for _, c := range excluded {
		f.Remove(c)
	}
	return f
}

// Insert marks c free. Returns false if it already was.
func (f *FreeCells) Insert(c Cell) bool {
	if _, ok := f.pos[c]; ok {
		return false
	}
	f.pos[c] = len(f.list)
	f.list = append(f.list, c)
	return true
}

// Remove marks c occupied. Returns false if it was not free.
func (f *FreeCells) Remove(c Cell) bool {
	idx, ok := f.pos[c]
	if !ok {
		return false
	}
	last := len(f.list) - 1
	moved := f.list[last]
	f.list[idx] = moved
	f.pos[moved] = idx
	f.list = f.list[:last]
	delete(f.pos, c)
	return true
}

// Contains reports whether c is free
func (f *FreeCells) Contains(c Cell) bool {
	_, ok := f.pos[c]
	return ok
}

// Len returns the number of free cells
func (f *FreeCells) Len() int {
	return len(f.list)
}

// Sample returns a uniformly chosen free cell, false when none remain
func (f *FreeCells) Sample(r Source) (Cell, bool) {
	if len(f.list) == 0 {
		return Cell{}, false
	}
	return f.list[r.Intn(len(f.list))], true
}

// Cells returns a copy of the free list in index order
func (f *FreeCells) Cells() []Cell {
	out := make([]Cell, len(f.list))
	copy(out, f.list)
	return out
}
